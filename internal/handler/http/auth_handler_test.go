package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/cleanwave/cleanwave/internal/handler/http"
	dto "github.com/cleanwave/cleanwave/internal/handler/http/dto"
	mocks "github.com/cleanwave/cleanwave/internal/handler/http/mocks"
	"github.com/cleanwave/cleanwave/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupAuthRouter(h handler.AuthHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/session", h.Session)
	return r
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	payload := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password",
		Role:     "participant",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	mockUsecase.ShouldFailRegister = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	payload := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	// Name and password omitted to trigger validation errors
	payload := dto.RegisterRequest{
		Email: "test@example.com",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Name' failed on the 'required' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	payload := dto.LoginRequest{
		Email:    "test@example.com",
		Password: "password",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-user-id")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	payload := dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogout(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/logout", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUsecase.LoggedOut)
}

func TestSession(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/session", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test User")
}

func TestSession_NotLoggedIn(t *testing.T) {
	mockUsecase := mocks.NewMockIdentityUsecase()
	mockUsecase.LoggedOut = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/session", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not logged in")
}
