// File: ttravels/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ttravels/config"
	"ttravels/cron"
	"ttravels/database"
	bookingsRepo "ttravels/database/repository/bookings"
	plansRepo "ttravels/database/repository/plans"
	"ttravels/handlers"
	"ttravels/routes"
	"ttravels/services/assistant"
	"ttravels/services/gemini"
	"ttravels/services/notification"
	"ttravels/services/search"
	"ttravels/services/speech"
	"ttravels/services/tasks"
	"ttravels/services/translate"
	"ttravels/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitTripContextCache()
	if config.AppConfig.FirebaseServiceAccountFile != "" {
		utils.FirebaseInit()
	}

	// external clients.
	geminiClient, err := gemini.NewClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	serpClient := search.NewSerpClient(config.AppConfig.SerpAPIKey)
	ttsService := speech.NewElevenLabsService(config.AppConfig.ElevenLabsAPIKey)

	// repositories.
	planRepo := plansRepo.NewMongoPlanRepo()
	bookingRepo := bookingsRepo.NewMongoBookingRepo()

	// services.
	assistantSvc := &assistant.DefaultAssistantService{
		LLM:           geminiClient,
		Flights:       serpClient,
		Hotels:        serpClient,
		Attractions:   serpClient,
		CtxStore:      assistant.NewRedisTripContextStore(utils.GetTripContextClient()),
		Conversations: assistant.NewMemoryConversationStore(),
	}
	translateSvc := translate.NewGeminiTranslator(geminiClient)
	notificationSvc := notification.NewDefaultNotificationService()

	// reminder queue.
	tasks.InitReminderClient()
	cron.InitReminderWorker(notificationSvc)

	handlers.InitHandlers(assistantSvc, translateSvc, ttsService, geminiClient, notificationSvc, planRepo, bookingRepo)

	router := routes.SetupRouter()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: ttravels listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server stopped")
}
