package routes

import (
	"net/http"
	"time"

	"ttravels/handlers"
	"ttravels/middleware"
	"ttravels/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the Gin engine with all middleware and endpoints.
func SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterChatRoutes(router)
	RegisterVoiceRoutes(router)
	RegisterTranslateRoutes(router)
	RegisterPlanRoutes(router)

	return router
}

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/chat", handlers.ChatHandler)
		api.POST("/modify-plan", handlers.ModifyPlanHandler)
	}
}

// RegisterVoiceRoutes registers the speech endpoints.
func RegisterVoiceRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/voice-chat", handlers.VoiceChatHandler)
		api.POST("/speech-to-text", handlers.SpeechToTextHandler)
		api.POST("/text-to-speech", handlers.TextToSpeechHandler)
	}
}

// RegisterTranslateRoutes registers the translation endpoints.
func RegisterTranslateRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/translate", handlers.TranslateHandler)
		api.GET("/languages", handlers.LanguagesHandler)
	}
}

// RegisterPlanRoutes registers saved plan, booking and reminder endpoints.
func RegisterPlanRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/plans", handlers.SavePlanHandler)
		api.GET("/plans/user/:userId", handlers.ListPlansHandler)
		api.GET("/plans/:id", handlers.GetPlanHandler)
		api.PUT("/plans/:id", handlers.UpdatePlanHandler)
		api.DELETE("/plans/:id", handlers.DeletePlanHandler)

		api.POST("/bookings", handlers.CreateBookingHandler)
		api.GET("/bookings/user/:userId", handlers.ListBookingsHandler)

		api.POST("/reminders", handlers.ScheduleReminderHandler)
	}
}
