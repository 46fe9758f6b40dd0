package entity

// Certificate is a read-only recognition record. Unlike event membership it
// references users and events by id rather than embedding snapshots; no
// store creates certificates, they are supplied as fixed data.
type Certificate struct {
	ID               string          `json:"id"`
	EventID          string          `json:"eventId"`
	EventTitle       string          `json:"eventTitle"`
	ParticipantID    string          `json:"participantId"`
	ParticipantName  string          `json:"participantName"`
	OrganizerID      string          `json:"organizerId"`
	OrganizerName    string          `json:"organizerName"`
	DateIssued       string          `json:"dateIssued"`
	WasteCollected   *float64        `json:"wasteCollected,omitempty"`
	CertificateType  CertificateType `json:"certificateType"`
	VerificationCode string          `json:"verificationCode"`
}

type CertificateType string

const (
	CertificateParticipation CertificateType = "participation"
	CertificateAchievement   CertificateType = "achievement"
	CertificateLeadership    CertificateType = "leadership"
)
