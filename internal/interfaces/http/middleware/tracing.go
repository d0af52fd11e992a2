package middleware

import (
	"net/http"

	"github.com/executiva/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// TracingWithConfig returns the otelgin middleware, or a pass-through when
// tracing is disabled. Span names follow "METHOD route", e.g.
// "GET /api/v1/executives/:id".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(cfg.ServiceName)
}

// SpanEnricher annotates the request span. It must run inside the tracing
// middleware: the request id is attached before the handlers run, the user id
// and error status after they return, once authentication has happened.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}

		if id := requestID(c); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}

		c.Next()

		if userID := c.GetInt64(logger.GinUserIDKey); userID != 0 {
			span.SetAttributes(attribute.Int64("user_id", userID))
		}
		markSpanStatus(span, c.Writer.Status())
	}
}

func markSpanStatus(span trace.Span, status int) {
	if status < http.StatusBadRequest {
		return
	}
	description := "Client Error"
	switch {
	case status >= http.StatusInternalServerError:
		description = "Internal Server Error"
	case status == http.StatusUnauthorized:
		description = "Unauthorized"
	case status == http.StatusNotFound:
		description = "Not Found"
	}
	span.SetStatus(codes.Error, description)
	span.SetAttributes(attribute.Int("http.status_code", status))
}
