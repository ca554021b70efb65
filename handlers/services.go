// File: handlers/services.go
package handlers

import (
	"context"

	bookingsRepo "ttravels/database/repository/bookings"
	plansRepo "ttravels/database/repository/plans"
	"ttravels/services/assistant"
	"ttravels/services/notification"
	"ttravels/services/speech"
	"ttravels/services/translate"
)

// AudioTranscriber turns compressed browser audio (webm, ogg) into text.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error)
}

// Handler-level service singletons, wired once at startup.
var (
	assistantSvc   assistant.AssistantService
	translateSvc   translate.Service
	ttsSvc         speech.TTSService
	transcriberSvc AudioTranscriber
	notifSvc       notification.NotificationService
	planRepo       plansRepo.SavedPlanRepository
	bookingRepo    bookingsRepo.BookingRepository
)

// InitHandlers wires the shared services into the HTTP layer.
func InitHandlers(
	a assistant.AssistantService,
	t translate.Service,
	tts speech.TTSService,
	transcriber AudioTranscriber,
	notif notification.NotificationService,
	plans plansRepo.SavedPlanRepository,
	bookings bookingsRepo.BookingRepository,
) {
	assistantSvc = a
	translateSvc = t
	ttsSvc = tts
	transcriberSvc = transcriber
	notifSvc = notif
	planRepo = plans
	bookingRepo = bookings
}
