package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(64))
	r.POST("/test", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name          string
		body          string
		contentLength int64
		wantStatus    int
	}{
		{"within limit", "small body", 10, http.StatusOK},
		{"declared length over limit", strings.Repeat("x", 100), 100, http.StatusRequestEntityTooLarge},
		{"streamed body over limit", strings.Repeat("x", 100), -1, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/test", strings.NewReader(tt.body))
			req.ContentLength = tt.contentLength
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusRequestEntityTooLarge {
				assert.Contains(t, w.Body.String(), "ERR_REQUEST_TOO_LARGE")
			}
		})
	}
}
