package entity

import "time"

// Event is a beach-cleanup event. Organizer and participants are embedded
// User snapshots taken at organizing/join time, not live references; a later
// profile change does not propagate into events that already hold a copy.
type Event struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	Location        string       `json:"location"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Organizer       User         `json:"organizer"`
	Participants    []User       `json:"participants"`
	MaxParticipants int          `json:"maxParticipants"`
	Status          EventStatus  `json:"status"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	RequiredItems   []string     `json:"requiredItems"`
	EstimatedWaste  *float64     `json:"estimatedWaste,omitempty"`
	ActualWaste     *float64     `json:"actualWaste,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Coordinates is an optional lat/lng pair for the event location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EventStatus is set explicitly by organizers; the store never transitions
// it automatically based on dates.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// HasParticipant reports whether a participant with the given id is present.
func (e Event) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy whose nested slices and pointers do not alias the
// receiver's.
func (e Event) Clone() Event {
	out := e
	if e.Coordinates != nil {
		c := *e.Coordinates
		out.Coordinates = &c
	}
	out.Organizer = e.Organizer.Clone()
	if e.Participants != nil {
		out.Participants = make([]User, len(e.Participants))
		for i, p := range e.Participants {
			out.Participants[i] = p.Clone()
		}
	}
	if e.RequiredItems != nil {
		out.RequiredItems = make([]string, len(e.RequiredItems))
		copy(out.RequiredItems, e.RequiredItems)
	}
	if e.EstimatedWaste != nil {
		v := *e.EstimatedWaste
		out.EstimatedWaste = &v
	}
	if e.ActualWaste != nil {
		v := *e.ActualWaste
		out.ActualWaste = &v
	}
	return out
}
