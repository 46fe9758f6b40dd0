package mocks

import (
	"context"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
	"github.com/cleanwave/cleanwave/internal/usecase"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// MockIdentityUsecase is a mock implementation of the IIdentityUseCase
// interface
type MockIdentityUsecase struct {
	// Control mock behavior
	ShouldFailLogin    bool
	ShouldFailRegister bool
	ShouldFailLogout   bool
	LoggedOut          bool

	// Return values
	MockUser entity.User
}

// Ensure MockIdentityUsecase implements the correct interface for
// handler.NewAuthHandler
var _ usecasecontract.IIdentityUseCase = (*MockIdentityUsecase)(nil)

func NewMockIdentityUsecase() *MockIdentityUsecase {
	return &MockIdentityUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRoleParticipant,
		},
	}
}

func (m *MockIdentityUsecase) RestoreSession(ctx context.Context) error {
	return nil
}

func (m *MockIdentityUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailLogin {
		return nil, usecase.ErrInvalidCredentials
	}
	return &m.MockUser, nil
}

func (m *MockIdentityUsecase) Register(ctx context.Context, name, email, password string, role entity.UserRole, bio, location string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, usecase.ErrDuplicateEmail
	}
	return &m.MockUser, nil
}

func (m *MockIdentityUsecase) Logout(ctx context.Context) error {
	m.LoggedOut = true
	return nil
}

func (m *MockIdentityUsecase) CurrentUser() *entity.User {
	if m.LoggedOut {
		return nil
	}
	user := m.MockUser
	return &user
}
