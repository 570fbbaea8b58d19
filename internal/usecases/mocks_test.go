package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/pkg/utils"
)

// mockCRUD mocks the shared CRUD gateway for entity E
type mockCRUD[E any] struct {
	mock.Mock
}

func (m *mockCRUD[E]) Create(ctx context.Context, entity *E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockCRUD[E]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *mockCRUD[E]) List(ctx context.Context, pagination utils.PaginationParams) ([]*E, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*E), args.Get(1).(int64), args.Error(2)
}

func (m *mockCRUD[E]) Update(ctx context.Context, entity *E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockCRUD[E]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mockCRUD[entities.User]
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) AddressLinked(ctx context.Context, addressID uuid.UUID) (bool, error) {
	args := m.Called(ctx, addressID)
	return args.Bool(0), args.Error(1)
}

type MockAddressRepository struct {
	mockCRUD[entities.Address]
}

type MockAccountRepository struct {
	mockCRUD[entities.Account]
}

type MockCardRepository struct {
	mockCRUD[entities.Card]
}

type MockInvoiceRepository struct {
	mockCRUD[entities.Invoice]
}

type MockLoanRepository struct {
	mockCRUD[entities.Loan]
}

type MockRefreshTokenStore struct {
	mock.Mock
}

func (m *MockRefreshTokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	args := m.Called(ctx, userID, token, ttl)
	return args.Error(0)
}

func (m *MockRefreshTokenStore) Consume(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}
