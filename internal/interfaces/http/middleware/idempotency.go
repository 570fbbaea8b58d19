package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/interfaces/http/response"
	"bank-backoffice.backend/pkg/logger"
	"bank-backoffice.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a replayed response
	IdempotencyReplayHeader = "X-Idempotency-Replayed"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisEnabled = redis.Enabled
	redisGet     = redis.Get
	redisSet     = redis.Set
	redisSetNX   = redis.SetNX
	redisDel     = redis.Del
)

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a request repeats an
// Idempotency-Key already served for the same caller and route. Requests pass
// straight through when the header is absent or redis is disabled.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || !redisEnabled() {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s:%s:%s", userID, c.Request.Method, c.Request.URL.Path, key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == processingMarker:
			response.Abort(c, domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "Request already in progress", nil))
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				c.Header(IdempotencyReplayHeader, "true")
				c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
				c.Abort()
				return
			}
			logger.Warn(ctx, "Discarding unreadable idempotency record", zap.String("key", storageKey))
		case !redis.IsNil(err):
			logger.Error(ctx, "Idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		locked, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !locked {
			response.Abort(c, domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "Request already in progress", err))
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			// release so the client may retry
			_ = redisDel(ctx, storageKey)
			return
		}

		record, err := json.Marshal(storedResponse{Status: status, Body: w.body.String()})
		if err == nil {
			err = redisSet(ctx, storageKey, string(record), RetentionDuration)
		}
		if err != nil {
			logger.Error(ctx, "Failed to store idempotent response", zap.Error(err))
			_ = redisDel(ctx, storageKey)
		}
	}
}
