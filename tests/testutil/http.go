package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Serve sends one request through handler. A non-nil body is encoded as JSON;
// headers are name/value pairs.
func Serve(t *testing.T, handler http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// Envelope decodes the standard response envelope
func Envelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "invalid envelope: %s", w.Body.String())
	return resp
}

// Data decodes a successful envelope and returns its object payload
func Data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	resp := Envelope(t, w)
	require.True(t, resp.Success, w.Body.String())
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %s", w.Body.String())
	return data
}

// ErrorInfo decodes a failed envelope and returns its error
func ErrorInfo(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	resp := Envelope(t, w)
	require.False(t, resp.Success, w.Body.String())
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error
}

// ID reads the numeric "id" of a successful envelope
func ID(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()
	id, ok := Data(t, w)["id"].(float64)
	require.True(t, ok, "response has no numeric id: %s", w.Body.String())
	return int64(id)
}
