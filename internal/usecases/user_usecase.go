package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bank-backoffice.backend/internal/domain/entities"
	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/domain/repositories"
	"bank-backoffice.backend/pkg/crypto"
)

// UserUsecase manages back-office users
type UserUsecase = ResourceService[entities.User, entities.CreateUserInput, entities.UpdateUserInput, entities.UserResponse]

// NewUserUsecase creates a new user usecase. Passwords are hashed on create
// and re-hashed on update only when a new password is supplied.
func NewUserUsecase(userRepo repositories.UserRepository, addressRepo repositories.AddressRepository) *UserUsecase {
	return NewResourceService[entities.User](userRepo, ResourceDefinition[entities.User, entities.CreateUserInput, entities.UpdateUserInput, entities.UserResponse]{
		Name:   "user",
		Plural: "users",
		Title:  "User",
		Build: func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
			roles, err := entities.NormalizeRoles(input.Roles)
			if err != nil {
				return nil, domainerrors.BadRequest("invalid roles")
			}

			var addressID *uuid.UUID
			if input.AddressID != nil {
				id, err := parseID(*input.AddressID, "addressId")
				if err != nil {
					return nil, err
				}
				if _, err := resolveReference[entities.Address](ctx, addressRepo, id, "Address"); err != nil {
					return nil, err
				}
				linked, err := userRepo.AddressLinked(ctx, id)
				if err != nil {
					return nil, err
				}
				if linked {
					return nil, domainerrors.Conflict(fmt.Sprintf("User address '%s' already exists", id))
				}
				addressID = &id
			}

			return &entities.User{
				ID:        newID(),
				Name:      input.Name,
				Email:     input.Email,
				Active:    boolOr(input.Active, true),
				Roles:     roles,
				AddressID: addressID,
			}, nil
		},
		Merge: func(user *entities.User, input *entities.UpdateUserInput) {
			setString(&user.Name, input.Name)
			setBool(&user.Active, input.Active)
			if input.Roles != nil {
				if roles, err := entities.NormalizeRoles(*input.Roles); err == nil {
					user.Roles = roles
				}
			}
		},
		BeforeCreate: func(_ context.Context, user *entities.User, input *entities.CreateUserInput) error {
			return setPassword(user, input.Password)
		},
		BeforeUpdate: func(_ context.Context, user *entities.User, input *entities.UpdateUserInput) error {
			if input.Password == nil {
				return nil
			}
			return setPassword(user, *input.Password)
		},
		Project:    projectUser,
		Label:      func(u *entities.User) string { return u.Email },
		InputLabel: func(in *entities.CreateUserInput) string { return in.Email },
		ConflictMessage: func(in *entities.CreateUserInput) string {
			return fmt.Sprintf("User email '%s' already exists", in.Email)
		},
	})
}

// setPassword stores the bcrypt hash of plain. A value that is already a
// bcrypt hash is refused so a hash echoed back by a client is never hashed again.
func setPassword(user *entities.User, plain string) error {
	if crypto.IsHash(plain) {
		return domainerrors.BadRequest("password must not be a bcrypt hash")
	}
	hash, err := hashPassword(plain)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return domainerrors.BadRequest(fmt.Sprintf("password must have at most %d bytes", crypto.MaxPasswordBytes))
		}
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hash
	return nil
}

func projectUser(u *entities.User) *entities.UserResponse {
	return &entities.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Roles:     u.Roles,
		Active:    u.Active,
		AddressID: u.AddressID,
	}
}
