package persistence

import (
	"context"

	"github.com/executiva/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listPage counts every row of M and loads one page of it ordered by id
func listPage[M any, E any](ctx context.Context, db *gorm.DB, page shared.Page, toDomain func(*M) E) (shared.Listing[E], error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		return shared.Listing[E]{}, err
	}

	var rows []*M
	if err := db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return shared.Listing[E]{}, err
	}

	items := make([]E, len(rows))
	for i, row := range rows {
		items[i] = toDomain(row)
	}
	return shared.Listing[E]{Items: items, Total: total}, nil
}

// updateRow writes every column of model except id and created_at, and reports
// NotFound when no row has the model's id.
func updateRow(ctx context.Context, db *gorm.DB, model any, kind string, id int64) error {
	result := db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model)
	if result.Error != nil {
		return translateError("update "+kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(kind, id)
	}
	return nil
}

// deleteRow hard-deletes the row of M with the given id
func deleteRow[M any](ctx context.Context, db *gorm.DB, kind string, id int64) error {
	result := db.WithContext(ctx).Delete(new(M), id)
	if result.Error != nil {
		return translateError("delete "+kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(kind, id)
	}
	return nil
}

// countWhere counts rows of M matching a single column
func countWhere[M any](ctx context.Context, db *gorm.DB, column string, value any) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(M)).Where(column+" = ?", value).Count(&n).Error
	return n, err
}
