package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cleanwave/cleanwave/internal/domain/entity"
	"github.com/cleanwave/cleanwave/internal/handler/http/dto"
	"github.com/cleanwave/cleanwave/internal/usecase"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	Session(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	identity usecasecontract.IIdentityUseCase
}

func NewAuthHandler(identity usecasecontract.IIdentityUseCase) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register handles account registration (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req.Name, req.Email, req.Password,
		entity.UserRole(req.Role), req.Bio, req.Location)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateEmail) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to register user")
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.SessionResponse{User: *user})
}

// Login handles authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to log in")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.SessionResponse{User: *user})
}

// Logout clears the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.identity.Logout(c.Request.Context()); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to log out")
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out")
}

// Session returns the current session user
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.identity.CurrentUser()
	if user == nil {
		ErrorHandler(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SessionResponse{User: *user})
}
