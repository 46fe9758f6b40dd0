package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cleanwave/cleanwave/internal/handler/http/middleware"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

type Router struct {
	authHandler      *AuthHandler
	eventHandler     *EventHandler
	educationHandler *EducationHandler
}

func NewRouter(
	identity usecasecontract.IIdentityUseCase,
	catalog usecasecontract.ICatalogUseCase,
	education usecasecontract.IEducationUseCase,
) *Router {
	return &Router{
		authHandler:      NewAuthHandler(identity),
		eventHandler:     NewEventHandler(catalog, identity),
		educationHandler: NewEducationHandler(education),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/session", r.authHandler.Session)
	}

	events := v1.Group("/events")
	{
		events.GET("", r.eventHandler.List)
		events.POST("", r.eventHandler.Create)
		events.PUT("/:id", r.eventHandler.Update)
		events.DELETE("/:id", r.eventHandler.Delete)
		events.POST("/:id/join", r.eventHandler.Join)
		events.POST("/:id/leave", r.eventHandler.Leave)
	}

	education := v1.Group("/education")
	{
		education.GET("/tips", r.educationHandler.Tips)
		education.GET("/tips/daily", r.educationHandler.DailyTip)
		education.GET("/faqs", r.educationHandler.FAQs)
		education.GET("/quiz", r.educationHandler.Quiz)
		education.POST("/quiz/score", r.educationHandler.ScoreQuiz)
	}

	certificates := v1.Group("/certificates")
	{
		certificates.GET("", r.educationHandler.Certificates)
		certificates.GET("/verify/:code", r.educationHandler.VerifyCertificate)
	}
}
