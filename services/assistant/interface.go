// File: services/assistant/interface.go
package assistant

import (
	"context"
	"time"

	"ttravels/models"
)

// TextGenerator is the LLM text-completion collaborator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// FlightSearcher looks up flight options for a route and date.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, origin, destination, departureDate, returnDate string) ([]models.FlightOption, error)
}

// HotelSearcher looks up hotel options for a normalized query.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, q models.HotelQuery) ([]models.HotelOption, error)
}

// AttractionSearcher looks up tourist attractions for a destination.
type AttractionSearcher interface {
	SearchAttractions(ctx context.Context, destination string) ([]models.Attraction, error)
}

// TripContextStore persists the per-conversation slot context between turns.
type TripContextStore interface {
	Get(ctx context.Context, conversationID string) (models.TripContext, error)
	Set(ctx context.Context, conversationID string, tc models.TripContext) error
	Clear(ctx context.Context, conversationID string) error
}

// ConversationStore keeps bounded per-conversation history.
type ConversationStore interface {
	History(ctx context.Context, conversationID string) ([]models.ConversationTurn, error)
	Append(ctx context.Context, conversationID string, turns ...models.ConversationTurn) error
}

// AssistantService is the conversational trip-planning engine.
type AssistantService interface {
	Respond(ctx context.Context, message, conversationID string) *models.ChatResult
	ModifyPlan(ctx context.Context, message string, plan *models.TripPlan) (*models.TripPlan, string)
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	LLM           TextGenerator
	Flights       FlightSearcher
	Hotels        HotelSearcher
	Attractions   AttractionSearcher
	CtxStore      TripContextStore
	Conversations ConversationStore

	// Now returns the anchor time for date resolution; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAssistantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// today returns the anchor calendar date.
func (s *DefaultAssistantService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
