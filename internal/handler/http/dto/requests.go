package dto

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=participant ngo"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CoordinatesRequest is an optional lat/lng pair.
type CoordinatesRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

// CreateEventRequest is the payload for creating an event. The organizer is
// taken from the current session, not from the payload.
type CreateEventRequest struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description" binding:"required"`
	Date            string              `json:"date" binding:"required,eventdate"`
	Time            string              `json:"time" binding:"required,eventtime"`
	Location        string              `json:"location" binding:"required"`
	Coordinates     *CoordinatesRequest `json:"coordinates"`
	MaxParticipants int                 `json:"maxParticipants" binding:"required,gt=0"`
	Status          string              `json:"status" binding:"omitempty,eventstatus"`
	ImageURL        string              `json:"imageUrl"`
	RequiredItems   []string            `json:"requiredItems"`
	EstimatedWaste  *float64            `json:"estimatedWaste" binding:"omitempty,gte=0"`
}

// UpdateEventRequest is a partial update; absent fields are left unchanged.
type UpdateEventRequest struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	Date            *string             `json:"date" binding:"omitempty,eventdate"`
	Time            *string             `json:"time" binding:"omitempty,eventtime"`
	Location        *string             `json:"location"`
	Coordinates     *CoordinatesRequest `json:"coordinates"`
	MaxParticipants *int                `json:"maxParticipants" binding:"omitempty,gt=0"`
	Status          *string             `json:"status" binding:"omitempty,eventstatus"`
	ImageURL        *string             `json:"imageUrl"`
	RequiredItems   *[]string           `json:"requiredItems"`
	EstimatedWaste  *float64            `json:"estimatedWaste" binding:"omitempty,gte=0"`
	ActualWaste     *float64            `json:"actualWaste" binding:"omitempty,gte=0"`
}

// QuizSubmissionRequest maps question index to the chosen option index.
// Unanswered questions are simply absent.
type QuizSubmissionRequest struct {
	Answers map[int]int `json:"answers" binding:"required"`
}
