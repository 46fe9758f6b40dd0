package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanwave/cleanwave/internal/domain/contract"
	"github.com/cleanwave/cleanwave/internal/domain/entity"
	"github.com/cleanwave/cleanwave/internal/infrastructure/idgen"
	"github.com/cleanwave/cleanwave/internal/infrastructure/kvstore"
	"github.com/cleanwave/cleanwave/internal/infrastructure/logger"
	"github.com/cleanwave/cleanwave/internal/infrastructure/seed"
	"github.com/cleanwave/cleanwave/internal/usecase"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

func newCatalogUsecase(t *testing.T, kv contract.IKVStore) *usecase.CatalogUsecase {
	t.Helper()
	uc := usecase.NewCatalogUsecase(kv, seed.Events(), idgen.NewGenerator(),
		fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}, logger.NewNopLogger())
	require.NoError(t, uc.Init(context.Background()))
	return uc
}

func TestInitSeedsEmptyStore(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	uc := newCatalogUsecase(t, kv)

	events := uc.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "Golden Gate Beach Cleanup", events[0].Title)

	// First-run bootstrap persists the seed collection
	raw, ok, err := kv.Get(context.Background(), contract.EventsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored []entity.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 3)
}

func TestInitPrefersStoredCollection(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	stored := []entity.Event{{ID: "42", Title: "Survivor", MaxParticipants: 5, Status: entity.EventStatusUpcoming}}
	data, _ := json.Marshal(stored)
	require.NoError(t, kv.Set(context.Background(), contract.EventsKey, string(data)))

	uc := newCatalogUsecase(t, kv)
	events := uc.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Survivor", events[0].Title)
}

func TestInitReseedsMalformedCollection(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), contract.EventsKey, "[oops"))

	uc := newCatalogUsecase(t, kv)
	assert.Len(t, uc.Events(), 3)
}

func TestAddEvent(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	draft := entity.Event{
		Title:           "Night Cleanup",
		Date:            "2026-04-01",
		Time:            "20:00",
		MaxParticipants: 15,
		// A pre-filled roster must be discarded
		Participants: []entity.User{{ID: "999"}},
	}
	created, err := uc.AddEvent(context.Background(), draft)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.EventStatusUpcoming, created.Status)
	assert.Empty(t, created.Participants)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)
	assert.Len(t, uc.Events(), 4)
}

func TestUpdateEvent(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	title := "Renamed"
	max := 60
	updated, err := uc.UpdateEvent(context.Background(), "1", usecasecontract.EventPatch{Title: &title, MaxParticipants: &max})
	require.NoError(t, err)
	assert.True(t, updated)

	ev := uc.Events()[0]
	assert.Equal(t, "Renamed", ev.Title)
	assert.Equal(t, 60, ev.MaxParticipants)
	// Untouched fields survive the merge
	assert.Equal(t, "2024-12-15", ev.Date)
	assert.Equal(t, "Ocean Guardians NGO", ev.Organizer.Name)
}

func TestUpdateEventUnknownID(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	title := "Renamed"
	updated, err := uc.UpdateEvent(context.Background(), "no-such-id", usecasecontract.EventPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Len(t, uc.Events(), 3)
}

func TestDeleteEvent(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	deleted, err := uc.DeleteEvent(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, deleted)

	events := uc.Events()
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.NotEqual(t, "2", ev.ID)
	}

	deleted, err = uc.DeleteEvent(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestJoinEvent(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	joined, err := uc.JoinEvent(context.Background(), "1", "99")
	require.NoError(t, err)
	assert.True(t, joined)

	ev := uc.Events()[0]
	require.Len(t, ev.Participants, 3)
	added := ev.Participants[2]
	assert.Equal(t, "99", added.ID)
	assert.Equal(t, "Current User", added.Name)

	// Joining again is a silent no-op
	joined, err = uc.JoinEvent(context.Background(), "1", "99")
	require.NoError(t, err)
	assert.False(t, joined)
	assert.Len(t, uc.Events()[0].Participants, 3)
}

func TestJoinEventFull(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	max := 2
	updated, err := uc.UpdateEvent(context.Background(), "1", usecasecontract.EventPatch{MaxParticipants: &max})
	require.NoError(t, err)
	require.True(t, updated)

	// Event "1" already carries two seed participants
	joined, err := uc.JoinEvent(context.Background(), "1", "99")
	require.NoError(t, err)
	assert.False(t, joined)
	assert.Len(t, uc.Events()[0].Participants, 2)
}

func TestJoinEventUnknownID(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	joined, err := uc.JoinEvent(context.Background(), "no-such-id", "99")
	require.NoError(t, err)
	assert.False(t, joined)
}

func TestLeaveEvent(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	// Seed user "2" participates in event "1"
	left, err := uc.LeaveEvent(context.Background(), "1", "2")
	require.NoError(t, err)
	assert.True(t, left)

	ev := uc.Events()[0]
	require.Len(t, ev.Participants, 1)
	assert.Equal(t, "3", ev.Participants[0].ID)

	// Leaving twice is a silent no-op
	left, err = uc.LeaveEvent(context.Background(), "1", "2")
	require.NoError(t, err)
	assert.False(t, left)
}

func TestEventsSnapshotIsolation(t *testing.T) {
	uc := newCatalogUsecase(t, kvstore.NewMemoryStore())

	snapshot := uc.Events()
	snapshot[0].Title = "Mutated"
	snapshot[0].Participants[0].Name = "Mutated"

	fresh := uc.Events()
	assert.Equal(t, "Golden Gate Beach Cleanup", fresh[0].Title)
	assert.Equal(t, "Alex Chen", fresh[0].Participants[0].Name)
}

func TestCatalogSurvivesRestart(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	first := newCatalogUsecase(t, kv)

	joined, err := first.JoinEvent(context.Background(), "2", "99")
	require.NoError(t, err)
	require.True(t, joined)
	_, err = first.DeleteEvent(context.Background(), "3")
	require.NoError(t, err)

	// A fresh instance over the same store sees the mutated collection, not
	// the seed
	second := newCatalogUsecase(t, kv)
	events := second.Events()
	require.Len(t, events, 2)
	assert.Len(t, events[1].Participants, 2)
}
