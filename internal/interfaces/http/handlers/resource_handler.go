package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/interfaces/http/response"
	"bank-backoffice.backend/pkg/utils"
	"bank-backoffice.backend/pkg/validation"
)

// Pagination headers set on list responses
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderPage       = "X-Page"
	HeaderLimit      = "X-Limit"
	HeaderTotalPages = "X-Total-Pages"
)

// ResourceService is the usecase surface a ResourceHandler drives
type ResourceService[C, U, R any] interface {
	Create(ctx context.Context, input *C) (*R, error)
	FindAll(ctx context.Context, pagination utils.PaginationParams) ([]*R, utils.PaginationMeta, error)
	FindOne(ctx context.Context, id uuid.UUID) (*R, error)
	Update(ctx context.Context, id uuid.UUID, input *U) (*R, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// ResourceHandler exposes create, list, get, update and delete for one resource
type ResourceHandler[C, U, R any] struct {
	name      string
	service   ResourceService[C, U, R]
	validator *validation.Validator
}

// NewResourceHandler creates a handler; name is used in "invalid <name> ID"
func NewResourceHandler[C, U, R any](name string, service ResourceService[C, U, R], validator *validation.Validator) *ResourceHandler[C, U, R] {
	return &ResourceHandler[C, U, R]{name: name, service: service, validator: validator}
}

// Create handles POST /api/v1/<resource>
func (h *ResourceHandler[C, U, R]) Create(c *gin.Context) {
	var input C
	if !h.bind(c, &input) {
		return
	}

	out, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, out)
}

// List handles GET /api/v1/<resource>?page=&limit=
func (h *ResourceHandler[C, U, R]) List(c *gin.Context) {
	pagination := utils.ParsePaginationParams(c.Query("page"), c.Query("limit"))

	items, meta, err := h.service.FindAll(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header(HeaderTotalCount, strconv.FormatInt(meta.TotalCount, 10))
	c.Header(HeaderPage, strconv.Itoa(meta.Page))
	c.Header(HeaderLimit, strconv.Itoa(meta.Limit))
	c.Header(HeaderTotalPages, strconv.Itoa(meta.TotalPages))
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/v1/<resource>/:id
func (h *ResourceHandler[C, U, R]) Get(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	out, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, out)
}

// Update handles PATCH /api/v1/<resource>/:id
func (h *ResourceHandler[C, U, R]) Update(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	var input U
	if !h.bind(c, &input) {
		return
	}

	out, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/<resource>/:id
func (h *ResourceHandler[C, U, R]) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c, http.StatusNoContent)
}

func (h *ResourceHandler[C, U, R]) id(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+h.name+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ResourceHandler[C, U, R]) bind(c *gin.Context, input interface{}) bool {
	return bindAndValidate(c, h.validator, input)
}

// bindAndValidate decodes the JSON body into input and runs the schema rules
func bindAndValidate(c *gin.Context, v *validation.Validator, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return false
	}

	if err := v.Struct(input); err != nil {
		var violations validation.Errors
		if errors.As(err, &violations) {
			response.Error(c, domainerrors.Validation(violations))
			return false
		}
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return false
	}
	return true
}
