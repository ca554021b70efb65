// File: services/assistant/modify.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

// modifyIntent is the model's classification of a modification request.
type modifyIntent struct {
	Intent    string `json:"intent"`
	Selection int    `json:"selection,omitempty"`
	Request   string `json:"request,omitempty"`
	Budget    string `json:"budget_level,omitempty"`
}

const (
	intentChangeHotel   = "change_hotel"
	intentChangeFlight  = "change_flight"
	intentEditItinerary = "edit_itinerary"
	intentOther         = "other"
)

// reIntentObject salvages a bare intent object out of a chatty model reply.
var reIntentObject = regexp.MustCompile(`\{[^{}]*"intent"[^{}]*\}`)

const modifyIntentPromptTemplate = `You are modifying an existing trip plan. Classify the user's instruction.

Current hotel options:
%s

Current flight options:
%s

User instruction: %s

Return ONLY a JSON object, no markdown:
{"intent": "change_hotel" | "change_flight" | "edit_itinerary" | "other", "selection": 1-based index of the option the user picked or 0, "request": "the itinerary change requested, or empty", "budget_level": "budget" | "mid-range" | "luxury" | "" if the user asked for a cheaper or more upscale option}`

// ModifyPlan applies a natural-language modification to an existing plan. It
// always returns a usable plan: unrecognized or failing modifications return
// the input plan unchanged with an explanatory reply. The input plan is
// never mutated.
func (s *DefaultAssistantService) ModifyPlan(ctx context.Context, message string, plan *models.TripPlan) (*models.TripPlan, string) {
	if plan == nil {
		return nil, "There's no trip plan to modify yet. Plan a trip first!"
	}
	intent := s.classifyModification(ctx, message, plan)

	switch intent.Intent {
	case intentChangeHotel:
		return s.applyHotelChange(ctx, message, plan, intent)
	case intentChangeFlight:
		return s.applyFlightChange(ctx, message, plan, intent.Selection)
	case intentEditItinerary:
		request := intent.Request
		if request == "" {
			request = message
		}
		return s.applyItineraryEdit(ctx, request, plan)
	default:
		if revised, reply, ok := s.applyGenericRevision(ctx, message, plan); ok {
			return revised, reply
		}
		return plan, "I can change your hotel, change your flight, or edit the itinerary. What would you like to do?"
	}
}

func (s *DefaultAssistantService) classifyModification(ctx context.Context, message string, plan *models.TripPlan) modifyIntent {
	fallback := heuristicModifyIntent(message)
	if s.LLM == nil {
		return fallback
	}
	prompt := fmt.Sprintf(modifyIntentPromptTemplate,
		jsonOrPlaceholder(plan.Hotels), jsonOrPlaceholder(plan.Flights), message)
	raw, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("Modification intent call failed", zap.Error(err))
		return fallback
	}
	var intent modifyIntent
	cleaned := stripJSONFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &intent); err != nil {
		// The model sometimes wraps the object in prose; salvage it.
		if m := reIntentObject.FindString(cleaned); m != "" {
			if err := json.Unmarshal([]byte(m), &intent); err == nil {
				return intent
			}
		}
		utils.GetLogger().Warn("Modification intent was not valid JSON",
			zap.String("response", truncateForLog(raw, 200)))
		return fallback
	}
	return intent
}

// heuristicModifyIntent is the keyword fallback when no model is reachable.
func heuristicModifyIntent(message string) modifyIntent {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "hotel") || strings.Contains(lower, "stay") || strings.Contains(lower, "accommodation"):
		intent := modifyIntent{Intent: intentChangeHotel}
		switch {
		case strings.Contains(lower, "cheap") || strings.Contains(lower, "affordable") || strings.Contains(lower, "budget"):
			intent.Budget = "budget"
		case strings.Contains(lower, "luxury") || strings.Contains(lower, "upscale") || strings.Contains(lower, "premium"):
			intent.Budget = "luxury"
		}
		return intent
	case strings.Contains(lower, "flight") || strings.Contains(lower, "airline"):
		return modifyIntent{Intent: intentChangeFlight}
	case strings.Contains(lower, "itinerary") || strings.Contains(lower, "day ") ||
		strings.Contains(lower, "add ") || strings.Contains(lower, "remove ") ||
		strings.Contains(lower, "replace "):
		return modifyIntent{Intent: intentEditItinerary, Request: message}
	default:
		return modifyIntent{Intent: intentOther}
	}
}

func (s *DefaultAssistantService) applyHotelChange(ctx context.Context, message string, plan *models.TripPlan, intent modifyIntent) (*models.TripPlan, string) {
	// A selection picks from the options already on the plan.
	if intent.Selection > 0 && intent.Selection <= len(plan.Hotels) {
		updated := plan.Clone()
		chosen := updated.Hotels[intent.Selection-1]
		updated.Hotels = []models.HotelOption{chosen}
		name := chosen.Name
		if name == "" {
			name = chosen.Title
		}
		return updated, fmt.Sprintf("Done! I've set %s as your hotel.", orDefault(name, "that option"))
	}

	// "Find me something cheaper" re-searches at the requested tier.
	details := plan.Details
	if intent.Budget != "" {
		details.Budget = canonicalBudget(intent.Budget)
	}
	hotels, err := s.searchHotelsFor(ctx, details)
	if err != nil || len(hotels) == 0 {
		if err != nil {
			utils.GetLogger().Warn("Hotel re-search failed during modification", zap.Error(err))
		}
		return plan, "I couldn't find alternative hotels right now, so I've kept your current plan."
	}
	updated := plan.Clone()
	updated.Hotels = hotels
	return updated, "Here are some alternative hotels:\n" + strings.TrimPrefix(formatHotels(hotels), "Here are some hotel options:\n")
}

func (s *DefaultAssistantService) applyFlightChange(ctx context.Context, message string, plan *models.TripPlan, selection int) (*models.TripPlan, string) {
	if selection > 0 && selection <= len(plan.Flights) {
		updated := plan.Clone()
		chosen := updated.Flights[selection-1]
		updated.Flights = []models.FlightOption{chosen}
		return updated, fmt.Sprintf("Done! I've set the %s flight as your pick.", orDefault(chosen.Airline, "selected"))
	}

	d := plan.Details
	if d.Origin == "" || d.Destination == "" {
		return plan, "I need both the origin and destination to look for other flights."
	}
	flights, err := s.searchFlights(ctx, d.Origin, d)
	if err != nil || len(flights) == 0 {
		if err != nil {
			utils.GetLogger().Warn("Flight re-search failed during modification", zap.Error(err))
		}
		return plan, "I couldn't find alternative flights right now, so I've kept your current plan."
	}
	updated := plan.Clone()
	updated.Flights = flights
	return updated, "Here are some alternative flights:\n" + strings.TrimPrefix(formatFlights(flights), "Here are some flight options:\n")
}

const itineraryEditPromptTemplate = `You are editing an existing trip itinerary. Apply the requested change and return the FULL revised itinerary as a JSON object with the same shape, no markdown, no commentary:
{"summary": "...", "estimated_budget": "...", "day_by_day": [{"day": 1, "title": "...", "details": "..."}, ...]}

Current itinerary:
%s

Requested change: %s

Keep everything not touched by the request as it is. Keep the same number of days unless the request says otherwise.`

func (s *DefaultAssistantService) applyItineraryEdit(ctx context.Context, request string, plan *models.TripPlan) (*models.TripPlan, string) {
	if plan.Itinerary == nil {
		return plan, "This plan has no itinerary to edit yet. Ask me to plan the trip first."
	}
	if s.LLM == nil {
		return plan, "I can't edit the itinerary right now, so I've kept your current plan."
	}
	current, err := json.Marshal(plan.Itinerary)
	if err != nil {
		return plan, "I couldn't process the itinerary, so I've kept your current plan."
	}
	raw, err := s.LLM.GenerateContent(ctx, fmt.Sprintf(itineraryEditPromptTemplate, string(current), request))
	if err != nil {
		utils.GetLogger().Warn("Itinerary edit call failed", zap.Error(err))
		return plan, "I couldn't apply that change right now, so I've kept your current plan."
	}
	var revised models.Itinerary
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &revised); err != nil || len(revised.DayByDay) == 0 {
		utils.GetLogger().Warn("Itinerary edit produced unusable output",
			zap.String("response", truncateForLog(raw, 200)))
		return plan, "I couldn't apply that change cleanly, so I've kept your current plan."
	}
	s.validateItinerary(&revised, plan.Details, len(plan.Itinerary.DayByDay))
	updated := plan.Clone()
	updated.Itinerary = &revised
	updated.ItineraryText = formatItineraryText(&revised)
	return updated, "I've updated your itinerary. Here's the revised plan:\n\n" + updated.ItineraryText
}

const genericRevisionPromptTemplate = `You are revising a trip plan. Apply the user's request to the plan below and return the FULL revised plan as a JSON object with the same shape, no markdown, no commentary.

Current plan:
%s

User request: %s

Keep everything not touched by the request as it is.`

// applyGenericRevision handles modification requests that fit none of the
// named intents by asking the model to revise the whole plan. Returns ok=false
// when the model is unreachable or its output is unusable.
func (s *DefaultAssistantService) applyGenericRevision(ctx context.Context, message string, plan *models.TripPlan) (*models.TripPlan, string, bool) {
	if s.LLM == nil {
		return nil, "", false
	}
	current, err := json.Marshal(plan)
	if err != nil {
		return nil, "", false
	}
	raw, err := s.LLM.GenerateContent(ctx, fmt.Sprintf(genericRevisionPromptTemplate, string(current), message))
	if err != nil {
		utils.GetLogger().Warn("Generic plan revision call failed", zap.Error(err))
		return nil, "", false
	}
	var revised models.TripPlan
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &revised); err != nil {
		utils.GetLogger().Warn("Generic plan revision was not valid JSON",
			zap.String("response", truncateForLog(raw, 200)))
		return nil, "", false
	}
	// An empty object means the model didn't actually revise anything.
	if revised.Itinerary == nil && len(revised.Flights) == 0 && len(revised.Hotels) == 0 && len(revised.Attractions) == 0 {
		return nil, "", false
	}
	if revised.Details.Destination == "" {
		revised.Details = plan.Details
	}
	if revised.Itinerary != nil {
		revised.ItineraryText = formatItineraryText(revised.Itinerary)
	}
	return &revised, "I've updated your trip plan based on your request.", true
}

func jsonOrPlaceholder(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" || string(data) == "[]" {
		return "(none)"
	}
	return string(data)
}
