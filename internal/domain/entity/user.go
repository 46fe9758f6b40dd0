package entity

// User represents a known account: a built-in seed user or a locally
// registered one. The JSON field names mirror the payloads the original
// client wrote under the beachCleanup* keys, so previously persisted data
// decodes unchanged.
type User struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	Role                UserRole      `json:"role"`
	Avatar              string        `json:"avatar,omitempty"`
	Bio                 string        `json:"bio,omitempty"`
	Location            string        `json:"location,omitempty"`
	EventsJoined        int           `json:"eventsJoined"`
	EventsOrganized     int           `json:"eventsOrganized"`
	TotalWasteCollected float64       `json:"totalWasteCollected"`
	EcoScore            int           `json:"ecoScore"`
	Certificates        []Certificate `json:"certificates,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleParticipant UserRole = "participant"
	UserRoleNGO         UserRole = "ngo"
)

func DefaultRole() UserRole {
	return UserRoleParticipant
}

// Clone returns a copy whose slices do not alias the receiver's.
func (u User) Clone() User {
	out := u
	if u.Certificates != nil {
		out.Certificates = make([]Certificate, len(u.Certificates))
		copy(out.Certificates, u.Certificates)
	}
	return out
}
