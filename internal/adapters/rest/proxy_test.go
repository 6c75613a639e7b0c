package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger_adapter "catalog-gateway/internal/adapters/logger"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() port.LoggerPort {
	return logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
}

func TestProxyRewritesPath(t *testing.T) {
	var gotPath, gotQuery, gotTrace string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotTrace = r.Header.Get("X-Trace-ID")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer backend.Close()

	proxy := NewBackendProxy(backend.URL, testLogger())

	req := httptest.NewRequest("GET", "/api/v1/news/articles/?page=2", nil)
	req = req.WithContext(contextkeys.ContextWithTraceID(req.Context(), "trace-123"))
	rec := httptest.NewRecorder()

	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Префикс /api срезан, остальное ушло как есть
	assert.Equal(t, "/v1/news/articles/", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "trace-123", gotTrace)
}

func TestProxyKeepsTargetBasePath(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	// Сам backend живет под /api
	proxy := NewBackendProxy(backend.URL+"/api", testLogger())

	req := httptest.NewRequest("GET", "/api/v1/contacts", nil)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, "/api/v1/contacts", gotPath)
}

func TestProxyWithoutBackendURL(t *testing.T) {
	proxy := NewBackendProxy("", testLogger())

	req := httptest.NewRequest("GET", "/api/v1/contacts", nil)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestProxyBackendUnreachable(t *testing.T) {
	proxy := NewBackendProxy("http://127.0.0.1:1", testLogger())

	req := httptest.NewRequest("GET", "/api/v1/contacts", nil)
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}
