package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cleanwave/cleanwave/internal/domain/contract"
	"github.com/cleanwave/cleanwave/internal/domain/entity"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// CatalogUsecase owns the event collection and all membership transitions.
// Every mutation rebuilds the collection and re-persists it in full; there
// are no delta writes. Mutations with unmet preconditions (unknown event,
// already joined, event full, not a member) are silent no-ops reported
// through the bool result, never through an error.
type CatalogUsecase struct {
	kv     contract.IKVStore
	idGen  contract.IIDGenerator
	clock  usecasecontract.IClock
	logger usecasecontract.IAppLogger
	seed   []entity.Event

	mu     sync.Mutex
	events []entity.Event
}

// NewCatalogUsecase creates a new CatalogUsecase instance. Call Init once at
// startup before serving requests.
func NewCatalogUsecase(
	kv contract.IKVStore,
	seedEvents []entity.Event,
	idGen contract.IIDGenerator,
	clock usecasecontract.IClock,
	logger usecasecontract.IAppLogger,
) *CatalogUsecase {
	return &CatalogUsecase{
		kv:     kv,
		idGen:  idGen,
		clock:  clock,
		logger: logger,
		seed:   seedEvents,
	}
}

var _ usecasecontract.ICatalogUseCase = (*CatalogUsecase)(nil)

// Init loads the persisted collection. When the key is absent or its value
// does not decode, the built-in seed list is installed and persisted
// immediately; this first-run bootstrap is the only implicit write-on-read.
func (uc *CatalogUsecase) Init(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, ok, err := uc.kv.Get(ctx, contract.EventsKey)
	if err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	if ok {
		var events []entity.Event
		if err := json.Unmarshal([]byte(raw), &events); err != nil {
			uc.logger.Warningf("stored events are malformed, reseeding: %v", err)
		} else {
			uc.events = events
			return nil
		}
	}

	seeded := make([]entity.Event, len(uc.seed))
	for i, ev := range uc.seed {
		seeded[i] = ev.Clone()
	}
	if err := uc.persist(ctx, seeded); err != nil {
		return err
	}
	uc.events = seeded
	return nil
}

// Events returns a snapshot copy of the collection. Mutating the result
// never affects store state.
func (uc *CatalogUsecase) Events() []entity.Event {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]entity.Event, len(uc.events))
	for i, ev := range uc.events {
		out[i] = ev.Clone()
	}
	return out
}

// AddEvent appends a new event. Id and creation timestamp are allocated
// here and the participant list is forced empty regardless of the draft.
func (uc *CatalogUsecase) AddEvent(ctx context.Context, draft entity.Event) (*entity.Event, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ev := draft.Clone()
	ev.ID = uc.idGen.NewID()
	ev.CreatedAt = uc.clock.Now().UTC()
	ev.Participants = []entity.User{}
	if ev.Status == "" {
		ev.Status = entity.EventStatusUpcoming
	}

	next := make([]entity.Event, 0, len(uc.events)+1)
	next = append(next, uc.events...)
	next = append(next, ev)

	if err := uc.persist(ctx, next); err != nil {
		return nil, err
	}
	uc.events = next

	out := ev.Clone()
	return &out, nil
}

// UpdateEvent shallow-merges patch over the event with the given id. Id,
// creation timestamp and organizer are never touched. Unknown ids are a
// no-op.
func (uc *CatalogUsecase) UpdateEvent(ctx context.Context, id string, patch usecasecontract.EventPatch) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]entity.Event, len(uc.events))
	copy(next, uc.events)

	updated := false
	for i, ev := range next {
		if ev.ID != id {
			continue
		}
		merged := ev.Clone()
		applyPatch(&merged, patch)
		next[i] = merged
		updated = true
		break
	}

	if err := uc.persist(ctx, next); err != nil {
		return false, err
	}
	uc.events = next
	return updated, nil
}

// DeleteEvent removes the event with the given id; absent ids are a no-op.
func (uc *CatalogUsecase) DeleteEvent(ctx context.Context, id string) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]entity.Event, 0, len(uc.events))
	deleted := false
	for _, ev := range uc.events {
		if ev.ID == id {
			deleted = true
			continue
		}
		next = append(next, ev)
	}

	if err := uc.persist(ctx, next); err != nil {
		return false, err
	}
	uc.events = next
	return deleted, nil
}

// JoinEvent appends a participant snapshot for userID. The join is refused
// silently when the event does not exist, the user already joined or the
// event is full; the collection is re-persisted either way. Repeated joins
// by the same user are idempotent.
func (uc *CatalogUsecase) JoinEvent(ctx context.Context, eventID, userID string) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]entity.Event, len(uc.events))
	copy(next, uc.events)

	joined := false
	for i, ev := range next {
		if ev.ID != eventID {
			continue
		}
		if ev.HasParticipant(userID) || len(ev.Participants) >= ev.MaxParticipants {
			break
		}
		merged := ev.Clone()
		merged.Participants = append(merged.Participants, participantSnapshot(userID))
		next[i] = merged
		joined = true
		break
	}

	if err := uc.persist(ctx, next); err != nil {
		return false, err
	}
	uc.events = next
	return joined, nil
}

// LeaveEvent removes the participant with userID from the named event.
// Removing an absent participant is a no-op; the collection is re-persisted
// either way.
func (uc *CatalogUsecase) LeaveEvent(ctx context.Context, eventID, userID string) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]entity.Event, len(uc.events))
	copy(next, uc.events)

	left := false
	for i, ev := range next {
		if ev.ID != eventID || !ev.HasParticipant(userID) {
			continue
		}
		merged := ev.Clone()
		kept := make([]entity.User, 0, len(merged.Participants))
		for _, p := range merged.Participants {
			if p.ID == userID {
				continue
			}
			kept = append(kept, p)
		}
		merged.Participants = kept
		next[i] = merged
		left = true
		break
	}

	if err := uc.persist(ctx, next); err != nil {
		return false, err
	}
	uc.events = next
	return left, nil
}

func (uc *CatalogUsecase) persist(ctx context.Context, events []entity.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := uc.kv.Set(ctx, contract.EventsKey, string(data)); err != nil {
		return fmt.Errorf("persist events: %w", err)
	}
	return nil
}

// participantSnapshot rebuilds a participant from only an id, with
// placeholder profile fields. The original client did the same instead of
// resolving the full user record; kept for compatibility.
func participantSnapshot(userID string) entity.User {
	return entity.User{
		ID:    userID,
		Name:  "Current User",
		Email: "user@example.com",
		Role:  entity.UserRoleParticipant,
	}
}

func applyPatch(ev *entity.Event, patch usecasecontract.EventPatch) {
	if patch.Title != nil {
		ev.Title = *patch.Title
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Date != nil {
		ev.Date = *patch.Date
	}
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Coordinates != nil {
		c := *patch.Coordinates
		ev.Coordinates = &c
	}
	if patch.Participants != nil {
		replaced := make([]entity.User, len(*patch.Participants))
		for i, p := range *patch.Participants {
			replaced[i] = p.Clone()
		}
		ev.Participants = replaced
	}
	if patch.MaxParticipants != nil {
		ev.MaxParticipants = *patch.MaxParticipants
	}
	if patch.Status != nil {
		ev.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		ev.ImageURL = *patch.ImageURL
	}
	if patch.RequiredItems != nil {
		items := make([]string, len(*patch.RequiredItems))
		copy(items, *patch.RequiredItems)
		ev.RequiredItems = items
	}
	if patch.EstimatedWaste != nil {
		v := *patch.EstimatedWaste
		ev.EstimatedWaste = &v
	}
	if patch.ActualWaste != nil {
		v := *patch.ActualWaste
		ev.ActualWaste = &v
	}
}
