package usecases_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bank-backoffice.backend/internal/domain/entities"
	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/usecases"
	"bank-backoffice.backend/pkg/crypto"
	"bank-backoffice.backend/pkg/jwt"
	"bank-backoffice.backend/pkg/redis"
)

const refreshTTL = time.Hour

func newAuthFixture(t *testing.T, withStore bool) (*usecases.AuthUsecase, *MockUserRepository, *MockRefreshTokenStore, *jwt.JWTService) {
	t.Helper()
	userRepo := new(MockUserRepository)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, refreshTTL)

	var store *MockRefreshTokenStore
	var tokens usecases.RefreshTokenStore
	if withStore {
		store = new(MockRefreshTokenStore)
		tokens = store
	}
	return usecases.NewAuthUsecase(userRepo, jwtService, tokens, refreshTTL), userRepo, store, jwtService
}

func activeUser(t *testing.T) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword("secret")
	require.NoError(t, err)
	return &entities.User{ID: uuid.New(), Email: "admin@bank.com", Password: hash, Roles: "ADMIN", Active: true}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	uc, userRepo, store, jwtService := newAuthFixture(t, true)
	ctx := context.Background()
	user := activeUser(t)

	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	store.On("Save", ctx, user.ID.String(), mock.AnythingOfType("string"), refreshTTL).Return(nil).Once()

	resp, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, user.Email, resp.User.Email)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := jwtService.ValidateTokenOfType(resp.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Roles)
	assert.Equal(t, user.Email, claims.Email)
	store.AssertExpectations(t)
}

func TestAuthUsecase_Login_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		uc, userRepo, _, _ := newAuthFixture(t, false)
		userRepo.On("GetByEmail", ctx, "ghost@bank.com").Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.Login(ctx, &entities.LoginInput{Email: "ghost@bank.com", Password: "x"})
		requireAppError(t, err, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, userRepo, _, _ := newAuthFixture(t, false)
		user := activeUser(t)
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "wrong"})
		requireAppError(t, err, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("inactive", func(t *testing.T) {
		uc, userRepo, _, _ := newAuthFixture(t, false)
		user := activeUser(t)
		user.Active = false
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "secret"})
		requireAppError(t, err, http.StatusUnauthorized, "User is inactive")
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, userRepo, _, _ := newAuthFixture(t, false)
		userRepo.On("GetByEmail", ctx, "a@bank.com").Return(nil, errors.New("db down")).Once()

		_, err := uc.Login(ctx, &entities.LoginInput{Email: "a@bank.com", Password: "x"})
		requireAppError(t, err, http.StatusInternalServerError, "Error to login")
	})

	t.Run("store failure", func(t *testing.T) {
		uc, userRepo, store, _ := newAuthFixture(t, true)
		user := activeUser(t)
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		store.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		_, err := uc.Login(ctx, &entities.LoginInput{Email: user.Email, Password: "secret"})
		requireAppError(t, err, http.StatusInternalServerError, "Error to issue token")
	})
}

func TestAuthUsecase_RefreshToken_SingleUse(t *testing.T) {
	uc, userRepo, store, jwtService := newAuthFixture(t, true)
	ctx := context.Background()
	user := activeUser(t)

	pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
	require.NoError(t, err)

	store.On("Consume", ctx, pair.RefreshToken).Return(user.ID.String(), nil).Once()
	store.On("Consume", ctx, pair.RefreshToken).Return("", redis.ErrTokenNotFound).Once()
	store.On("Save", ctx, user.ID.String(), mock.AnythingOfType("string"), refreshTTL).Return(nil).Once()
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

	resp, err := uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, resp.RefreshToken)

	_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
	requireAppError(t, err, http.StatusUnauthorized, "Invalid refresh token")
	userRepo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestAuthUsecase_RefreshToken_WithoutStore(t *testing.T) {
	uc, userRepo, _, jwtService := newAuthFixture(t, false)
	ctx := context.Background()
	user := activeUser(t)

	pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
	require.NoError(t, err)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

	resp, err := uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthUsecase_RefreshToken_Rejections(t *testing.T) {
	ctx := context.Background()
	user := activeUser(t)

	t.Run("access token", func(t *testing.T) {
		uc, _, _, jwtService := newAuthFixture(t, false)
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
		require.NoError(t, err)

		_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.AccessToken})
		requireAppError(t, err, http.StatusUnauthorized, "Invalid refresh token")
	})

	t.Run("expired", func(t *testing.T) {
		uc, _, _, _ := newAuthFixture(t, false)
		expired := jwt.NewJWTService("test-secret", time.Minute, -time.Minute)
		pair, err := expired.GenerateTokenPair(user.ID, user.Email, user.Roles)
		require.NoError(t, err)

		_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
		requireAppError(t, err, http.StatusUnauthorized, "Refresh token has expired")
	})

	t.Run("deleted user", func(t *testing.T) {
		uc, userRepo, _, jwtService := newAuthFixture(t, false)
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
		require.NoError(t, err)
		userRepo.On("GetByID", ctx, user.ID).Return(nil, domainerrors.ErrNotFound).Once()

		_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
		requireAppError(t, err, http.StatusUnauthorized, "Invalid refresh token")
	})

	t.Run("inactive user", func(t *testing.T) {
		uc, userRepo, _, jwtService := newAuthFixture(t, false)
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
		require.NoError(t, err)
		inactive := *user
		inactive.Active = false
		userRepo.On("GetByID", ctx, user.ID).Return(&inactive, nil).Once()

		_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
		requireAppError(t, err, http.StatusUnauthorized, "User is inactive")
	})

	t.Run("store failure", func(t *testing.T) {
		uc, _, store, jwtService := newAuthFixture(t, true)
		pair, err := jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
		require.NoError(t, err)
		store.On("Consume", ctx, pair.RefreshToken).Return("", errors.New("redis down")).Once()

		_, err = uc.RefreshToken(ctx, &entities.RefreshInput{RefreshToken: pair.RefreshToken})
		requireAppError(t, err, http.StatusInternalServerError, "Error to refresh token")
	})
}
