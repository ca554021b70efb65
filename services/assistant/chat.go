// File: services/assistant/chat.go
package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

const errorReply = "I'm sorry, I encountered an error. Please try again."

const chatSystemInstructions = `You are a friendly travel assistant for Indian travelers. Answer travel questions helpfully and concisely. If the user seems to want a trip planned, invite them to share a destination. Keep replies short and conversational.`

// Respond handles one user turn. It never returns an error to the caller:
// any internal failure degrades to a generic apology reply so the
// conversation stays alive.
func (s *DefaultAssistantService) Respond(ctx context.Context, message, conversationID string) (result *models.ChatResult) {
	log := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic while handling chat turn",
				zap.Any("panic", r), zap.String("conversationID", conversationID))
			result = &models.ChatResult{Reply: errorReply}
		}
		if result != nil {
			result.Timestamp = s.now().UTC().Format(time.RFC3339)
			s.appendTurns(ctx, conversationID, message, result.Reply)
		}
	}()

	message = strings.TrimSpace(message)
	if message == "" {
		return &models.ChatResult{Reply: "Tell me about the trip you have in mind!"}
	}

	history, err := s.Conversations.History(ctx, conversationID)
	if err != nil {
		log.Warn("Failed to load conversation history", zap.Error(err))
	}
	stored, err := s.CtxStore.Get(ctx, conversationID)
	if err != nil {
		log.Warn("Failed to load trip context", zap.Error(err))
		stored = models.TripContext{}
	}

	switch {
	case isGreeting(message):
		return &models.ChatResult{Reply: s.chatReply(ctx, message, history)}

	case isFlightSearch(message) && !isPlanRequest(message):
		return s.handleFlightSearch(ctx, conversationID, message, history, stored)

	case isHotelSearch(message) && !isPlanRequest(message):
		return s.handleHotelSearch(ctx, conversationID, message, history, stored)

	case isPlanRequest(message):
		ex := s.extractTripDetails(ctx, message, history)
		merged := stored
		merged.Merge(ex.Details)
		return s.advancePlanning(ctx, conversationID, message, ex.Tasks, merged)

	case !stored.IsEmpty():
		// A slot-filling dialogue is in flight; this message answers the
		// last question.
		ex := s.extractTripDetails(ctx, message, history)
		merged := stored
		merged.Merge(ex.Details)
		applyShortAnswer(&merged, stored, message)
		tasks := merged.PendingTasks
		if len(tasks) == 0 {
			tasks = ex.Tasks
		}
		return s.advancePlanning(ctx, conversationID, message, tasks, merged)

	default:
		return &models.ChatResult{Reply: s.chatReply(ctx, message, history)}
	}
}

// chatReply produces a free-form conversational answer.
func (s *DefaultAssistantService) chatReply(ctx context.Context, message string, history []models.ConversationTurn) string {
	if s.LLM == nil {
		return "Hi! I can plan trips, find flights and hotels, and suggest attractions. Where would you like to go?"
	}
	prompt := fmt.Sprintf("%s\n\nConversation so far:\n%s\n\nUser: %s\nAssistant:",
		chatSystemInstructions, renderRecentHistory(history, 6), message)
	reply, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("Chat completion failed", zap.Error(err))
		return "Hi! I can plan trips, find flights and hotels, and suggest attractions. Where would you like to go?"
	}
	return strings.TrimSpace(reply)
}

// handleFlightSearch serves a standalone flight query without entering the
// planning dialogue.
func (s *DefaultAssistantService) handleFlightSearch(ctx context.Context, conversationID, message string, history []models.ConversationTurn, stored models.TripContext) *models.ChatResult {
	ex := s.extractTripDetails(ctx, message, history)
	d := ex.Details

	origin := d.Origin
	if origin == "" {
		origin = stored.Origin
	}
	if origin == "" {
		origin = s.recallOrigin(ctx, conversationID)
	}
	destination := d.Destination
	if destination == "" {
		destination = stored.Destination
	}

	var missing []string
	if origin == "" {
		missing = append(missing, "which city you're flying from")
	}
	if destination == "" {
		missing = append(missing, "where you're flying to")
	}
	if d.DepartureDate == "" {
		missing = append(missing, "your travel date")
	}
	if len(missing) > 0 {
		return &models.ChatResult{
			Reply: fmt.Sprintf("To search flights, I still need %s.", strings.Join(missing, ", ")),
		}
	}

	if s.Flights == nil {
		return &models.ChatResult{Reply: "Flight search isn't available right now."}
	}
	flights, err := s.Flights.SearchFlights(ctx, origin, destination, d.DepartureDate, d.ReturnDate)
	if err != nil {
		utils.GetLogger().Warn("Flight search failed",
			zap.String("origin", origin), zap.String("destination", destination), zap.Error(err))
		return &models.ChatResult{Reply: "I couldn't fetch flights right now. Please try again in a bit."}
	}
	return &models.ChatResult{
		Reply:    formatFlights(flights),
		TripPlan: &models.TripPlan{Details: ex.Details, Flights: flights},
	}
}

// handleHotelSearch serves a standalone hotel query. The destination resolves
// from the current message, then from recent user turns, then from the
// stored context.
func (s *DefaultAssistantService) handleHotelSearch(ctx context.Context, conversationID, message string, history []models.ConversationTurn, stored models.TripContext) *models.ChatResult {
	ex := s.extractTripDetails(ctx, message, history)
	d := ex.Details

	destination := d.Destination
	if destination == "" {
		destination = s.recallDestination(history)
	}
	if destination == "" {
		destination = stored.Destination
	}
	if destination == "" {
		return &models.ChatResult{Reply: "Which city should I look for hotels in?"}
	}

	checkIn := d.DepartureDate
	if checkIn == "" {
		checkIn = stored.DepartureDate
	}
	if checkIn == "" {
		checkIn = s.today().AddDate(0, 0, 7).Format("2006-01-02")
	}
	checkOut := d.ReturnDate
	if checkOut == "" {
		nights := d.Days
		if nights <= 0 {
			nights = stored.Days
		}
		if nights <= 0 {
			nights = 2
		}
		checkOut, _ = addDaysISO(checkIn, nights)
	}

	if s.Hotels == nil {
		return &models.ChatResult{Reply: "Hotel search isn't available right now."}
	}
	budget := d.Budget
	if budget == "" {
		budget = stored.Budget
	}
	hotels, err := s.Hotels.SearchHotels(ctx, models.HotelQuery{
		Destination: destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      d.Travelers(stored.Travelers(1)),
		Budget:      budget,
	})
	if err != nil {
		utils.GetLogger().Warn("Hotel search failed",
			zap.String("destination", destination), zap.Error(err))
		return &models.ChatResult{Reply: "I couldn't fetch hotels right now. Please try again in a bit."}
	}
	return &models.ChatResult{
		Reply:        formatHotels(hotels),
		HotelResults: hotels,
	}
}

// applyShortAnswer interprets a terse reply against the question the last
// turn asked. "Goa", "5" or "luxury" alone carry no extractable structure,
// but in context they fill the slot just asked about.
func applyShortAnswer(merged *models.TripContext, stored models.TripContext, message string) {
	switch classifyDialogueState(stored, stored.PendingTasks.Normalize()) {
	case stateNeedDestination:
		if merged.Destination == "" {
			candidate := cleanPlaceName(message)
			if isPlausiblePlace(candidate) && len(strings.Fields(candidate)) <= 3 {
				merged.Destination = candidate
			}
		}
	case stateNeedDays:
		if merged.Days == 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(message)); err == nil && n > 0 && n <= 60 {
				merged.Days = n
			}
		}
	case stateNeedBudget:
		if merged.Budget == "" {
			if b := canonicalBudget(message); b != "" && (isBudgetCategory(b) || isAllDigits(b)) {
				merged.Budget = b
			}
		}
	}
}

func isBudgetCategory(b string) bool {
	return b == "budget" || b == "mid-range" || b == "luxury"
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// recallDestination scans the last user turns for a place mention.
func (s *DefaultAssistantService) recallDestination(history []models.ConversationTurn) string {
	scanned := 0
	for i := len(history) - 1; i >= 0 && scanned < 10; i-- {
		if history[i].Role != models.RoleUser {
			continue
		}
		scanned++
		if m := reFromTo.FindStringSubmatch(history[i].Content); m != nil {
			if dest := cleanPlaceName(m[2]); isPlausiblePlace(dest) {
				return dest
			}
		}
		if m := reToPlace.FindStringSubmatch(history[i].Content); m != nil {
			if dest := cleanPlaceName(m[1]); isPlausiblePlace(dest) {
				return dest
			}
		}
	}
	return ""
}

func (s *DefaultAssistantService) appendTurns(ctx context.Context, conversationID, userMessage, reply string) {
	err := s.Conversations.Append(ctx, conversationID,
		models.ConversationTurn{Role: models.RoleUser, Content: userMessage},
		models.ConversationTurn{Role: models.RoleAssistant, Content: reply},
	)
	if err != nil {
		utils.GetLogger().Warn("Failed to append conversation turns", zap.Error(err))
	}
}
