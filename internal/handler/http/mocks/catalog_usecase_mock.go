package mocks

import (
	"context"
	"errors"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// MockCatalogUsecase is a mock implementation of the ICatalogUseCase
// interface
type MockCatalogUsecase struct {
	// Control mock behavior
	ShouldFailAdd bool
	UpdateResult  bool
	DeleteResult  bool
	JoinResult    bool
	LeaveResult   bool

	// Return values
	MockEvents []entity.Event
	MockEvent  entity.Event
}

// Ensure MockCatalogUsecase implements the correct interface for
// handler.NewEventHandler
var _ usecasecontract.ICatalogUseCase = (*MockCatalogUsecase)(nil)

func NewMockCatalogUsecase() *MockCatalogUsecase {
	ev := entity.Event{
		ID:              "mock-event-id",
		Title:           "Mock Beach Cleanup",
		MaxParticipants: 10,
		Status:          entity.EventStatusUpcoming,
		Participants:    []entity.User{},
	}
	return &MockCatalogUsecase{
		UpdateResult: true,
		DeleteResult: true,
		JoinResult:   true,
		LeaveResult:  true,
		MockEvents:   []entity.Event{ev},
		MockEvent:    ev,
	}
}

func (m *MockCatalogUsecase) Init(ctx context.Context) error {
	return nil
}

func (m *MockCatalogUsecase) Events() []entity.Event {
	return m.MockEvents
}

func (m *MockCatalogUsecase) AddEvent(ctx context.Context, draft entity.Event) (*entity.Event, error) {
	if m.ShouldFailAdd {
		return nil, errors.New("event creation failed")
	}
	return &m.MockEvent, nil
}

func (m *MockCatalogUsecase) UpdateEvent(ctx context.Context, id string, patch usecasecontract.EventPatch) (bool, error) {
	return m.UpdateResult, nil
}

func (m *MockCatalogUsecase) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return m.DeleteResult, nil
}

func (m *MockCatalogUsecase) JoinEvent(ctx context.Context, eventID, userID string) (bool, error) {
	return m.JoinResult, nil
}

func (m *MockCatalogUsecase) LeaveEvent(ctx context.Context, eventID, userID string) (bool, error) {
	return m.LeaveResult, nil
}
