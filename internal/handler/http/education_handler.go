package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cleanwave/cleanwave/internal/handler/http/dto"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// EducationHandlerInterface defines the methods for the education handler to
// allow interface-based dependency injection (for testing/mocking)
type EducationHandlerInterface interface {
	Tips(*gin.Context)
	DailyTip(*gin.Context)
	FAQs(*gin.Context)
	Quiz(*gin.Context)
	ScoreQuiz(*gin.Context)
	Certificates(*gin.Context)
	VerifyCertificate(*gin.Context)
}

// Ensure EducationHandler implements EducationHandlerInterface
var _ EducationHandlerInterface = (*EducationHandler)(nil)

type EducationHandler struct {
	education usecasecontract.IEducationUseCase
}

func NewEducationHandler(education usecasecontract.IEducationUseCase) *EducationHandler {
	return &EducationHandler{education: education}
}

// Tips returns the full eco tip list
func (h *EducationHandler) Tips(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.education.Tips())
}

// DailyTip returns today's tip
func (h *EducationHandler) DailyTip(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.education.DailyTip())
}

// FAQs returns the FAQ list
func (h *EducationHandler) FAQs(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.education.FAQs())
}

// Quiz returns the quiz question list
func (h *EducationHandler) Quiz(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.education.Questions())
}

// ScoreQuiz scores a quiz submission
func (h *EducationHandler) ScoreQuiz(c *gin.Context) {
	var req dto.QuizSubmissionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	score, maxScore := h.education.ScoreQuiz(req.Answers)
	SuccessHandler(c, http.StatusOK, dto.QuizScoreResponse{Score: score, MaxScore: maxScore})
}

// Certificates returns the certificate set
func (h *EducationHandler) Certificates(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.education.Certificates())
}

// VerifyCertificate looks a certificate up by verification code
func (h *EducationHandler) VerifyCertificate(c *gin.Context) {
	cert, ok := h.education.VerifyCertificate(c.Param("code"))
	if !ok {
		ErrorHandler(c, http.StatusNotFound, "Certificate not found")
		return
	}
	SuccessHandler(c, http.StatusOK, cert)
}
