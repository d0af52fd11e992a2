package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/executiva/backend/internal/application/fieldmap"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// entityService is the create/read/update/delete surface shared by every
// entity service. I is the typed input decoded from a request body.
type entityService[E, I any] interface {
	Create(ctx context.Context, in I) (*E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	List(ctx context.Context, offset, limit int) ([]*E, int64, error)
	Update(ctx context.Context, id int64, in I) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// entityHandler serves the generic routes of one entity kind. Bodies and
// responses use the external field names of table.
type entityHandler[E, I any] struct {
	BaseHandler
	name    string
	table   *fieldmap.Table
	record  func(*E) fieldmap.Record
	service entityService[E, I]
}

// Create handles POST /<kind>
func (h *entityHandler[E, I]) Create(c *gin.Context) {
	var in I
	if !h.bind(c, &in) {
		return
	}
	entity, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Created(c, h.external(entity))
}

// GetByID handles GET /<kind>/:id
func (h *entityHandler[E, I]) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Success(c, h.external(entity))
}

// List handles GET /<kind>?skip=&limit=
func (h *entityHandler[E, I]) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "skip and limit must be non-negative integers")
		return
	}
	items, total, err := h.service.List(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.SuccessWithList(c, h.externalList(items), total, query.Skip, len(items))
}

// Update handles PUT and PATCH /<kind>/:id. Both are partial: absent fields
// keep their stored value.
func (h *entityHandler[E, I]) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var in I
	if !h.bind(c, &in) {
		return
	}
	entity, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Success(c, h.external(entity))
}

// Delete handles DELETE /<kind>/:id
func (h *entityHandler[E, I]) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.name + " deleted successfully"})
}

// found answers a lookup result
func (h *entityHandler[E, I]) found(c *gin.Context, entity *E, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Success(c, h.external(entity))
}

func (h *entityHandler[E, I]) bind(c *gin.Context, dst *I) bool {
	payload, err := readPayload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body too large")
			return false
		}
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body must be a JSON object")
		return false
	}
	if err := h.table.Bind(payload, dst); err != nil {
		h.HandleError(c, err)
		return false
	}
	return true
}

// fail reports a service error with the offending field under its external name
func (h *entityHandler[E, I]) fail(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Field != "" {
		err = domainErr.WithField(h.table.ExternalName(domainErr.Field))
	}
	h.HandleError(c, err)
}

func (h *entityHandler[E, I]) pathID(c *gin.Context, name string) (int64, bool) {
	id, ok := parseID(c, name)
	if !ok {
		h.BadRequest(c, name+" must be a positive integer")
	}
	return id, ok
}

func (h *entityHandler[E, I]) external(entity *E) fieldmap.Record {
	return h.table.ToExternal(h.record(entity))
}

func (h *entityHandler[E, I]) externalList(items []*E) []fieldmap.Record {
	out := make([]fieldmap.Record, len(items))
	for i, item := range items {
		out[i] = h.external(item)
	}
	return out
}
