package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
	"github.com/cleanwave/cleanwave/internal/handler/http/dto"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// EventHandlerInterface defines the methods for the event handler to allow
// interface-based dependency injection (for testing/mocking)
type EventHandlerInterface interface {
	List(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
	Join(*gin.Context)
	Leave(*gin.Context)
}

// Ensure EventHandler implements EventHandlerInterface
var _ EventHandlerInterface = (*EventHandler)(nil)

type EventHandler struct {
	catalog  usecasecontract.ICatalogUseCase
	identity usecasecontract.IIdentityUseCase
}

func NewEventHandler(catalog usecasecontract.ICatalogUseCase, identity usecasecontract.IIdentityUseCase) *EventHandler {
	return &EventHandler{catalog: catalog, identity: identity}
}

// List returns the full event collection
func (h *EventHandler) List(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.catalog.Events())
}

// Create adds a new event organized by the current session user
func (h *EventHandler) Create(c *gin.Context) {
	organizer := h.identity.CurrentUser()
	if organizer == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req dto.CreateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	draft := entity.Event{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Organizer:       *organizer,
		MaxParticipants: req.MaxParticipants,
		Status:          entity.EventStatus(req.Status),
		ImageURL:        req.ImageURL,
		RequiredItems:   req.RequiredItems,
		EstimatedWaste:  req.EstimatedWaste,
	}
	if req.Coordinates != nil {
		draft.Coordinates = &entity.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}

	event, err := h.catalog.AddEvent(c.Request.Context(), draft)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to create event")
		return
	}
	SuccessHandler(c, http.StatusCreated, event)
}

// Update shallow-merges the request over the named event. An unknown id is
// not an error; the response reports updated=false.
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.catalog.UpdateEvent(c.Request.Context(), c.Param("id"), toEventPatch(req))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to update event")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MutationResponse{Updated: updated})
}

// Delete removes the named event; absent ids report updated=false.
func (h *EventHandler) Delete(c *gin.Context) {
	deleted, err := h.catalog.DeleteEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to delete event")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MutationResponse{Updated: deleted})
}

// Join adds the current session user to the named event. A full event, a
// repeated join or an unknown id all report updated=false with status 200.
func (h *EventHandler) Join(c *gin.Context) {
	user := h.identity.CurrentUser()
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	joined, err := h.catalog.JoinEvent(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to join event")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MutationResponse{Updated: joined})
}

// Leave removes the current session user from the named event.
func (h *EventHandler) Leave(c *gin.Context) {
	user := h.identity.CurrentUser()
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	left, err := h.catalog.LeaveEvent(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to leave event")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MutationResponse{Updated: left})
}

func toEventPatch(req dto.UpdateEventRequest) usecasecontract.EventPatch {
	patch := usecasecontract.EventPatch{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		ImageURL:        req.ImageURL,
		RequiredItems:   req.RequiredItems,
		EstimatedWaste:  req.EstimatedWaste,
		ActualWaste:     req.ActualWaste,
	}
	if req.Coordinates != nil {
		patch.Coordinates = &entity.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	if req.Status != nil {
		status := entity.EventStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}
