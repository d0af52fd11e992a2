package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/executiva/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics_LabelsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	r := gin.New()
	r.Use(HTTPMetrics(provider.Meter("http.server")))
	r.GET("/api/v1/executives/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for _, path := range []string{"/api/v1/executives/1", "/api/v1/executives/2", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	statuses := map[string]int64{}
	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_server_request_total" {
				continue
			}
			found = true
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				status, _ := dp.Attributes.Value(telemetry.AttrHTTPStatusCode)
				counts[route.AsString()] += dp.Value
				statuses[route.AsString()] = status.AsInt64()
			}
		}
	}

	require.True(t, found)
	assert.Equal(t, map[string]int64{"/api/v1/executives/:id": 2, "unknown": 1}, counts)
	assert.Equal(t, int64(http.StatusOK), statuses["/api/v1/executives/:id"])
	assert.Equal(t, int64(http.StatusNotFound), statuses["unknown"])
}

func TestHTTPMetrics_NilMeterPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMetrics(nil))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
