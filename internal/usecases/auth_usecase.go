package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"bank-backoffice.backend/internal/domain/entities"
	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/domain/repositories"
	"bank-backoffice.backend/pkg/jwt"
	"bank-backoffice.backend/pkg/logger"
	"bank-backoffice.backend/pkg/redis"
)

// RefreshTokenStore remembers issued refresh tokens so each can be redeemed once
type RefreshTokenStore interface {
	Save(ctx context.Context, userID, token string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	tokens     RefreshTokenStore
	refreshTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase. tokens may be nil, in which case
// refresh tokens stay valid until they expire.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	tokens RefreshTokenStore,
	refreshTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "Login with unknown email", zap.String("email", input.Email))
			return nil, domainerrors.Unauthorized("Invalid credentials")
		}
		logger.Error(ctx, "Failed to load user for login", zap.Error(err))
		return nil, domainerrors.Internal("Error to login", err)
	}

	if !checkPassword(input.Password, user.Password) {
		logger.Warn(ctx, "Login with wrong password", zap.String("email", input.Email))
		return nil, domainerrors.Unauthorized("Invalid credentials")
	}
	if !user.Active {
		logger.Warn(ctx, "Login by inactive user", zap.String("email", input.Email))
		return nil, domainerrors.Unauthorized("User is inactive")
	}

	resp, err := u.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "User logged in", zap.String("email", user.Email))
	return resp, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, input *entities.RefreshInput) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateTokenOfType(input.RefreshToken, jwt.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.Unauthorized("Refresh token has expired")
		}
		return nil, domainerrors.Unauthorized("Invalid refresh token")
	}

	if u.tokens != nil {
		if _, err := u.tokens.Consume(ctx, input.RefreshToken); err != nil {
			if errors.Is(err, redis.ErrTokenNotFound) {
				logger.Warn(ctx, "Refresh token reused or revoked", zap.String("user_id", claims.UserID.String()))
				return nil, domainerrors.Unauthorized("Invalid refresh token")
			}
			logger.Error(ctx, "Failed to consume refresh token", zap.Error(err))
			return nil, domainerrors.Internal("Error to refresh token", err)
		}
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid refresh token")
		}
		logger.Error(ctx, "Failed to load user for refresh", zap.Error(err))
		return nil, domainerrors.Internal("Error to refresh token", err)
	}
	if !user.Active {
		return nil, domainerrors.Unauthorized("User is inactive")
	}

	return u.issue(ctx, user)
}

func (u *AuthUsecase) issue(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.Roles)
	if err != nil {
		logger.Error(ctx, "Failed to sign tokens", zap.Error(err))
		return nil, domainerrors.Internal("Error to issue token", err)
	}

	if u.tokens != nil {
		if err := u.tokens.Save(ctx, user.ID.String(), pair.RefreshToken, u.refreshTTL); err != nil {
			logger.Error(ctx, "Failed to store refresh token", zap.Error(err))
			return nil, domainerrors.Internal("Error to issue token", err)
		}
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User: &entities.SessionUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Roles:  user.Roles,
			Active: user.Active,
		},
	}, nil
}
