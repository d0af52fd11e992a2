package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoEngine() *gin.Engine {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidJSON, err.Error()))
			return
		}
		body["trace"] = c.GetHeader("X-Trace")
		c.JSON(http.StatusOK, dto.NewSuccessResponse(body))
	})
	return engine
}

func TestServe(t *testing.T) {
	engine := newEchoEngine()

	w := Serve(t, engine, http.MethodPost, "/echo", map[string]any{"id": 7}, "X-Trace", "abc")

	require.Equal(t, http.StatusOK, w.Code)
	data := Data(t, w)
	assert.Equal(t, "abc", data["trace"])
	assert.Equal(t, int64(7), ID(t, w))
}

func TestErrorInfo(t *testing.T) {
	engine := newEchoEngine()

	w := Serve(t, engine, http.MethodPost, "/echo", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidJSON, ErrorInfo(t, w).Code)
}

func TestNewTestStore(t *testing.T) {
	store := NewTestStore(t)

	require.NotNil(t, store.Scope)
	assert.NoError(t, store.Database.Ping(context.Background()))
	assert.NotNil(t, store.Scope.Repositories().Users())
}
