// Package handler holds the gin handlers of the HTTP API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/executiva/backend/internal/application/fieldmap"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/logger"
	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/executiva/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request ID
const RequestIDKey = middleware.RequestIDHeader

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.GinRequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDKey)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithList sends a success response with list meta
func (h *BaseHandler) SuccessWithList(c *gin.Context, data any, total int64, skip, count int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, skip, count))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// BindJSON binds a fixed-shape request body. Malformed JSON and failed
// binding rules are answered here; the caller just returns on false.
func (h *BaseHandler) BindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		middleware.HandleValidationError(c, err)
		return false
	}
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
	return false
}

// HandleError converts service errors to HTTP responses: payload errors from
// the field mapper become validation errors, domain errors are mapped by code,
// anything else is a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var fieldErrs fieldmap.Errors
	if errors.As(err, &fieldErrs) {
		details := make([]dto.ValidationDetail, len(fieldErrs))
		for i, fe := range fieldErrs {
			details[i] = dto.ValidationDetail{Field: fe.Field, Message: fe.Message}
		}
		h.ValidationError(c, details)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		if code == dto.ErrCodeInternal {
			logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
			h.InternalError(c, "An unexpected error occurred")
			return
		}
		resp := dto.NewErrorResponseWithRequestID(code, domainErr.Message, getRequestID(c))
		resp.Error.Field = domainErr.Field
		resp.Error.ConflictID = domainErr.ConflictID
		c.JSON(dto.GetHTTPStatus(code), resp)
		return
	}

	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	h.InternalError(c, "An unexpected error occurred")
}

// requiredQuery reads a non-empty query parameter or answers 400
func (h *BaseHandler) requiredQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		h.BadRequest(c, name+" query parameter is required")
		return "", false
	}
	return value, true
}

// queryAlias returns the first non-empty query parameter among names
func queryAlias(c *gin.Context, names ...string) string {
	for _, name := range names {
		if value := c.Query(name); value != "" {
			return value
		}
	}
	return ""
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// readPayload reads the request body as an undecoded JSON object. An empty
// body is an empty payload.
func readPayload(c *gin.Context) (fieldmap.Payload, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	payload := fieldmap.Payload{}
	if len(body) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = fieldmap.Payload{}
	}
	return payload, nil
}
