package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/domain/repositories"
	"bank-backoffice.backend/pkg/logger"
	"bank-backoffice.backend/pkg/utils"
)

// ResourceDefinition carries the per-entity behaviour plugged into ResourceService.
// E is the stored entity, C the create input, U the partial update input and
// R the response projection.
type ResourceDefinition[E, C, U, R any] struct {
	// Name and Plural are lower-case nouns used in internal error messages.
	Name   string
	Plural string
	// Title prefixes not-found and conflict messages ("Account not found").
	Title string

	// Build constructs a new entity, resolving referenced records. A missing
	// reference is reported with a not-found AppError.
	Build func(ctx context.Context, input *C) (*E, error)
	// Merge copies the fields present in input onto entity.
	Merge func(entity *E, input *U)
	// BeforeCreate and BeforeUpdate run right before the write. Optional.
	BeforeCreate func(ctx context.Context, entity *E, input *C) error
	BeforeUpdate func(ctx context.Context, entity *E, input *U) error

	Project func(entity *E) *R
	// Label and InputLabel return the human-identifying field used in logs.
	Label      func(entity *E) string
	InputLabel func(input *C) string
	// ConflictMessage describes a duplicate on create. Optional.
	ConflictMessage func(input *C) string
}

// ResourceService implements create, list, get, update and soft delete for one resource
type ResourceService[E, C, U, R any] struct {
	repo repositories.CRUDRepository[E]
	def  ResourceDefinition[E, C, U, R]
}

// NewResourceService creates a resource service over repo
func NewResourceService[E, C, U, R any](repo repositories.CRUDRepository[E], def ResourceDefinition[E, C, U, R]) *ResourceService[E, C, U, R] {
	return &ResourceService[E, C, U, R]{repo: repo, def: def}
}

// Create validates references, persists a new record and returns its projection
func (s *ResourceService[E, C, U, R]) Create(ctx context.Context, input *C) (*R, error) {
	label := s.def.InputLabel(input)
	logger.Debug(ctx, "Creating "+s.def.Name, zap.String("label", label))

	entity, err := s.def.Build(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, "create", err, zap.String("label", label))
	}

	if s.def.BeforeCreate != nil {
		if err := s.def.BeforeCreate(ctx, entity, input); err != nil {
			return nil, s.fail(ctx, "create", err, zap.String("label", label))
		}
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			err = domainerrors.Conflict(s.conflictMessage(input, label))
		}
		return nil, s.fail(ctx, "create", err, zap.String("label", label))
	}

	logger.Info(ctx, s.def.Title+" created", zap.String("label", s.def.Label(entity)))
	return s.def.Project(entity), nil
}

// FindAll lists live records. A zero pagination returns every record.
func (s *ResourceService[E, C, U, R]) FindAll(ctx context.Context, pagination utils.PaginationParams) ([]*R, utils.PaginationMeta, error) {
	logger.Debug(ctx, "Listing "+s.def.Plural)

	items, total, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, s.fail(ctx, "find all", err)
	}

	out := make([]*R, 0, len(items))
	for _, item := range items {
		out = append(out, s.def.Project(item))
	}

	logger.Debug(ctx, fmt.Sprintf("%d %s found", len(out), s.def.Plural))
	return out, utils.CalculateMeta(total, pagination), nil
}

// FindOne returns the live record with the given id
func (s *ResourceService[E, C, U, R]) FindOne(ctx context.Context, id uuid.UUID) (*R, error) {
	logger.Debug(ctx, "Finding "+s.def.Name, zap.String("id", id.String()))

	entity, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "find one", err, zap.String("id", id.String()))
	}

	logger.Debug(ctx, s.def.Title+" found", zap.String("id", id.String()), zap.String("label", s.def.Label(entity)))
	return s.def.Project(entity), nil
}

// Update merges input onto the stored record and writes the whole record back
func (s *ResourceService[E, C, U, R]) Update(ctx context.Context, id uuid.UUID, input *U) (*R, error) {
	logger.Debug(ctx, "Updating "+s.def.Name, zap.String("id", id.String()))

	entity, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "update", err, zap.String("id", id.String()))
	}

	s.def.Merge(entity, input)

	if s.def.BeforeUpdate != nil {
		if err := s.def.BeforeUpdate(ctx, entity, input); err != nil {
			return nil, s.fail(ctx, "update", err, zap.String("id", id.String()))
		}
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			err = s.notFound()
		}
		return nil, s.fail(ctx, "update", err, zap.String("id", id.String()))
	}

	logger.Info(ctx, s.def.Title+" updated", zap.String("id", id.String()), zap.String("label", s.def.Label(entity)))
	return s.def.Project(entity), nil
}

// Remove soft-deletes the live record with the given id
func (s *ResourceService[E, C, U, R]) Remove(ctx context.Context, id uuid.UUID) error {
	logger.Debug(ctx, "Removing "+s.def.Name, zap.String("id", id.String()))

	entity, err := s.get(ctx, id)
	if err != nil {
		return s.fail(ctx, "remove", err, zap.String("id", id.String()))
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			err = s.notFound()
		}
		return s.fail(ctx, "remove", err, zap.String("id", id.String()))
	}

	logger.Info(ctx, s.def.Title+" removed", zap.String("id", id.String()), zap.String("label", s.def.Label(entity)))
	return nil
}

func (s *ResourceService[E, C, U, R]) get(ctx context.Context, id uuid.UUID) (*E, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, s.notFound()
		}
		return nil, err
	}
	return entity, nil
}

func (s *ResourceService[E, C, U, R]) notFound() *domainerrors.AppError {
	return domainerrors.NotFound(s.def.Title + " not found")
}

func (s *ResourceService[E, C, U, R]) conflictMessage(input *C, label string) string {
	if s.def.ConflictMessage != nil {
		return s.def.ConflictMessage(input)
	}
	return fmt.Sprintf("%s '%s' already exists", s.def.Title, label)
}

// fail logs err and returns what the caller should see. Recognised AppErrors
// pass through unchanged; anything else becomes an internal error for op.
func (s *ResourceService[E, C, U, R]) fail(ctx context.Context, op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("resource", s.def.Name), zap.Error(err))

	if appErr, ok := domainerrors.As(err); ok {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error(ctx, "Failed to "+op+" "+s.def.Name, fields...)
		} else {
			logger.Warn(ctx, "Could not "+op+" "+s.def.Name+": "+appErr.Message, fields...)
		}
		return appErr
	}

	target := s.def.Name
	if op == "find all" {
		target = s.def.Plural
	}
	logger.Error(ctx, "Failed to "+op+" "+target, fields...)
	return domainerrors.Internal(fmt.Sprintf("Error to %s %s", op, target), err)
}
