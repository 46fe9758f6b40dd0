package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cleanwave/cleanwave/internal/domain/contract"
	"github.com/cleanwave/cleanwave/internal/domain/entity"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// Domain errors surfaced to callers. All other identity failures are
// substrate I/O errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
)

// acceptedPassword is the single literal credential the system accepts.
// Password hashing is out of scope; registered accounts store no password at
// all and authenticate with the same literal.
const acceptedPassword = "password"

// IdentityUsecase owns the current session and the registry of known users.
// The seed user list is immutable and always present; registered users are
// appended to a separate durable collection and never deleted.
type IdentityUsecase struct {
	kv      contract.IKVStore
	idGen   contract.IIDGenerator
	latency usecasecontract.ILatency
	logger  usecasecontract.IAppLogger
	seed    []entity.User

	mu          sync.Mutex
	currentUser *entity.User
	registered  []entity.User
}

// NewIdentityUsecase creates a new IdentityUsecase instance. Call
// RestoreSession once at startup before serving requests.
func NewIdentityUsecase(
	kv contract.IKVStore,
	seedUsers []entity.User,
	idGen contract.IIDGenerator,
	latency usecasecontract.ILatency,
	logger usecasecontract.IAppLogger,
) *IdentityUsecase {
	return &IdentityUsecase{
		kv:      kv,
		idGen:   idGen,
		latency: latency,
		logger:  logger,
		seed:    seedUsers,
	}
}

var _ usecasecontract.IIdentityUseCase = (*IdentityUsecase)(nil)

// RestoreSession reads the session and registered-user keys from durable
// storage. Malformed values are treated as absent and logged; the caller
// only sees substrate I/O errors.
func (uc *IdentityUsecase) RestoreSession(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, ok, err := uc.kv.Get(ctx, contract.SessionKey)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if ok {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			uc.logger.Warningf("stored session is malformed, treating as logged out: %v", err)
		} else {
			uc.currentUser = &user
		}
	}

	raw, ok, err = uc.kv.Get(ctx, contract.RegisteredUsersKey)
	if err != nil {
		return fmt.Errorf("read registered users: %w", err)
	}
	if ok {
		var users []entity.User
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			uc.logger.Warningf("stored registered users are malformed, treating as empty: %v", err)
		} else {
			uc.registered = users
		}
	}
	return nil
}

// Login authenticates by email against seed and registered users. Only the
// fixed literal password is accepted. The artificial latency elapses before
// any state is touched; on failure nothing changes.
func (uc *IdentityUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	uc.latency.Wait()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	found := uc.findByEmailLocked(email)
	if found == nil || password != acceptedPassword {
		return nil, ErrInvalidCredentials
	}

	data, err := json.Marshal(found)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := uc.kv.Set(ctx, contract.SessionKey, string(data)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.currentUser = found
	out := found.Clone()
	return &out, nil
}

// Register creates a new account. The email must not exist among seed or
// registered users. The new user is appended to the registered collection,
// persisted and becomes the current session. The password argument is
// accepted for interface compatibility but never stored.
func (uc *IdentityUsecase) Register(ctx context.Context, name, email, _ string, role entity.UserRole, bio, location string) (*entity.User, error) {
	uc.latency.Wait()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findByEmailLocked(email) != nil {
		return nil, ErrDuplicateEmail
	}
	if role == "" {
		role = entity.DefaultRole()
	}

	user := entity.User{
		ID:       uc.idGen.NewID(),
		Name:     name,
		Email:    email,
		Role:     role,
		Bio:      bio,
		Location: location,
	}

	updated := make([]entity.User, 0, len(uc.registered)+1)
	updated = append(updated, uc.registered...)
	updated = append(updated, user)

	listData, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("encode registered users: %w", err)
	}
	if err := uc.kv.Set(ctx, contract.RegisteredUsersKey, string(listData)); err != nil {
		return nil, fmt.Errorf("persist registered users: %w", err)
	}
	uc.registered = updated

	userData, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := uc.kv.Set(ctx, contract.SessionKey, string(userData)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.currentUser = &user

	out := user.Clone()
	return &out, nil
}

// Logout clears the current session and removes the session key.
func (uc *IdentityUsecase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.currentUser = nil
	if err := uc.kv.Remove(ctx, contract.SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (uc *IdentityUsecase) CurrentUser() *entity.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.currentUser == nil {
		return nil
	}
	out := uc.currentUser.Clone()
	return &out
}

// findByEmailLocked searches seed then registered users, returning a copy.
func (uc *IdentityUsecase) findByEmailLocked(email string) *entity.User {
	for _, u := range uc.seed {
		if u.Email == email {
			out := u.Clone()
			return &out
		}
	}
	for _, u := range uc.registered {
		if u.Email == email {
			out := u.Clone()
			return &out
		}
	}
	return nil
}
