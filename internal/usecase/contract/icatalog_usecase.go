package usecasecontract

import (
	"context"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
)

// EventPatch is a shallow-merge update for an event. Nil fields are left
// unchanged. Id, creation timestamp and organizer are not patchable.
type EventPatch struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	Location        *string
	Coordinates     *entity.Coordinates
	Participants    *[]entity.User
	MaxParticipants *int
	Status          *entity.EventStatus
	ImageURL        *string
	RequiredItems   *[]string
	EstimatedWaste  *float64
	ActualWaste     *float64
}

// ICatalogUseCase defines the operations on the event collection. Mutations
// whose preconditions are not met are silent no-ops: the bool result reports
// whether the collection changed, and no error is surfaced for them.
type ICatalogUseCase interface {
	// Init loads the persisted collection, seeding and persisting the
	// built-in events on first run.
	Init(ctx context.Context) error
	// Events returns a snapshot copy of the full collection.
	Events() []entity.Event
	// AddEvent allocates id and creation timestamp, forces an empty
	// participant list and appends the event.
	AddEvent(ctx context.Context, draft entity.Event) (*entity.Event, error)
	// UpdateEvent shallow-merges patch over the event with the given id.
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (bool, error)
	// DeleteEvent removes the event with the given id.
	DeleteEvent(ctx context.Context, id string) (bool, error)
	// JoinEvent appends a participant snapshot for userID when the event
	// exists, has capacity and the user has not already joined.
	JoinEvent(ctx context.Context, eventID, userID string) (bool, error)
	// LeaveEvent removes the participant with userID from the event.
	LeaveEvent(ctx context.Context, eventID, userID string) (bool, error)
}
