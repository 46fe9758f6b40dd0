package usecasecontract

import (
	"context"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
)

// IIdentityUseCase defines the operations for session and account management.
type IIdentityUseCase interface {
	// RestoreSession loads the persisted session and registered-user list.
	// Malformed stored data is treated as absent; only substrate I/O fails
	// the call.
	RestoreSession(ctx context.Context) error
	// Login authenticates against seed and registered users and persists the
	// session. It simulates a network round trip before resolving.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Register creates a new account, persists it and makes it the current
	// session. It simulates the same round trip as Login.
	Register(ctx context.Context, name, email, password string, role entity.UserRole, bio, location string) (*entity.User, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// CurrentUser returns a copy of the session user, or nil when logged out.
	CurrentUser() *entity.User
}
