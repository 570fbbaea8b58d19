package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bank-backoffice.backend/pkg/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen interface{}
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), seen)
	})
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.SetLogger(zap.New(core)))

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware("/health"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/health", "/ok?x=1", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "/ok?x=1", entries[0].ContextMap()["path"])
		assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequests.WithLabelValues(http.MethodGet, "/items/:id", "200")
	unmatched := httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	before, beforeUnmatched := testutil.ToFloat64(counter), testutil.ToFloat64(unmatched)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/2", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
