package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel/mocks"
	"shareit/shared/cache"
	"shareit/shared/constant"
	"shareit/transport/http/middleware"
	"shareit/transport/http/router"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.App.Metrics.Enable = true
	cfg.App.Metrics.Path = "/metrics"

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()), m)

	return New(cfg, router.New(router.DomainHandlers{}), mw, m)
}

func TestHealth(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ContentTypeProblemJSON, rec.Header().Get(constant.RequestHeaderContentType))
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newServer(t).Handler()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, healthPath, nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestMalformedSharerHeader(t *testing.T) {
	handler := newServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set(constant.RequestHeaderSharerUserID, "1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
