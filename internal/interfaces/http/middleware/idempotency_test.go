package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-backoffice.backend/pkg/redis"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	orig := redis.GetClient()
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		_ = redis.Close()
		redis.SetClient(orig)
	})
	return mr
}

// idempotentRouter counts handler executions; status decides the handler outcome
func idempotentRouter(status *int, calls *int) *gin.Engine {
	r := gin.New()
	r.POST("/items", IdempotencyMiddleware(), func(c *gin.Context) {
		*calls++
		c.JSON(*status, gin.H{"call": *calls})
	})
	return r
}

func post(r http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	useMiniredis(t)
	status, calls := http.StatusCreated, 0
	r := idempotentRouter(&status, &calls)

	first := post(r, "key-1")
	second := post(r, "key-1")

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayHeader))
	assert.Empty(t, first.Header().Get(IdempotencyReplayHeader))

	post(r, "key-2")
	assert.Equal(t, 2, calls)
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	mr := useMiniredis(t)
	status, calls := http.StatusBadRequest, 0
	r := idempotentRouter(&status, &calls)

	assert.Equal(t, http.StatusBadRequest, post(r, "retry").Code)
	assert.Empty(t, mr.Keys())

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, post(r, "retry").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_InProgress(t *testing.T) {
	mr := useMiniredis(t)
	status, calls := http.StatusCreated, 0
	r := idempotentRouter(&status, &calls)

	// the caller is anonymous here, so the user segment is the nil uuid
	require.NoError(t, mr.Set("idempotency:00000000-0000-0000-0000-000000000000:POST:/items:busy", processingMarker))

	w := post(r, "busy")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotency_PassThrough(t *testing.T) {
	status, calls := http.StatusCreated, 0
	r := idempotentRouter(&status, &calls)

	t.Run("redis disabled", func(t *testing.T) {
		orig := redis.GetClient()
		redis.SetClient(nil)
		t.Cleanup(func() { redis.SetClient(orig) })

		post(r, "k")
		post(r, "k")
		assert.Equal(t, 2, calls)
	})

	t.Run("no header", func(t *testing.T) {
		useMiniredis(t)
		calls = 0
		post(r, "")
		post(r, "")
		assert.Equal(t, 2, calls)
	})
}

func TestIdempotency_LookupErrorFallsThrough(t *testing.T) {
	useMiniredis(t)
	origGet := redisGet
	t.Cleanup(func() { redisGet = origGet })
	redisGet = func(context.Context, string) (string, error) { return "", errors.New("timeout") }

	status, calls := http.StatusCreated, 0
	r := idempotentRouter(&status, &calls)

	assert.Equal(t, http.StatusCreated, post(r, "k").Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_StoreErrorReleasesLock(t *testing.T) {
	mr := useMiniredis(t)
	origSet := redisSet
	t.Cleanup(func() { redisSet = origSet })
	redisSet = func(context.Context, string, interface{}, time.Duration) error { return errors.New("oom") }

	status, calls := http.StatusCreated, 0
	r := idempotentRouter(&status, &calls)

	assert.Equal(t, http.StatusCreated, post(r, "k").Code)
	assert.Empty(t, mr.Keys())
}
