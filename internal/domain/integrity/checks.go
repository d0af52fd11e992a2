package integrity

import (
	"context"
	"fmt"

	"github.com/executiva/backend/internal/domain/shared"
)

// Identified is anything with a stored id
type Identified interface {
	GetID() int64
}

// lookup calls find and folds a NotFound result into found == false
func lookup[T Identified](ctx context.Context, find func(context.Context) (T, error)) (T, bool, error) {
	v, err := find(ctx)
	if err != nil {
		var zero T
		if shared.IsNotFound(err) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return v, true, nil
}

// exists rejects when find reports that the referenced row is absent
func exists[T Identified](field, kind string, id int64, find func(context.Context, int64) (T, error)) Check {
	return Check{
		Stage: StageParent,
		Field: field,
		Run: func(ctx context.Context) error {
			_, found, err := lookup(ctx, func(ctx context.Context) (T, error) { return find(ctx, id) })
			if err != nil {
				return err
			}
			if !found {
				return shared.NewRejected(field, fmt.Sprintf("%s %d does not exist", kind, id)).WithConflict(id)
			}
			return nil
		},
	}
}

// unique rejects when find returns a row other than self. self is 0 on create.
func unique[T Identified](field, message string, self int64, find func(context.Context) (T, error)) Check {
	return Check{
		Stage: StageUniqueness,
		Field: field,
		Run: func(ctx context.Context) error {
			holder, found, err := lookup(ctx, find)
			if err != nil {
				return err
			}
			if found && holder.GetID() != self {
				return shared.NewRejected(field, message).WithConflict(holder.GetID())
			}
			return nil
		},
	}
}

// noChildren rejects a delete while count reports dependent rows
func noChildren(field, message string, count func(context.Context) (int64, error)) Check {
	return Check{
		Stage: StageCascade,
		Field: field,
		Run: func(ctx context.Context) error {
			n, err := count(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				return shared.NewRejected(field, message)
			}
			return nil
		},
	}
}
