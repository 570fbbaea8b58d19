package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bank-backoffice.backend/pkg/jwt"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(testSecret, 15*time.Minute, time.Hour)
}

func issue(t *testing.T, svc *jwt.JWTService, roles string) *jwt.TokenPair {
	t.Helper()
	pair, err := svc.GenerateTokenPair(uuid.New(), "caller@bank.com", roles)
	require.NoError(t, err)
	return pair
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}
