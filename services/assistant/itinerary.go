// File: services/assistant/itinerary.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

const itineraryPromptTemplate = `You are an expert travel planner. Create a detailed %d-day itinerary for a trip to %s.

Trip details:
%s

Return ONLY a JSON object, no markdown fences, no commentary:
{
  "summary": "a comprehensive trip summary of at least 1000 words. Open with a header block restating the destination, duration, dates, travelers and budget, then cover how to travel there and back, accommodation recommendations with neighborhoods, and an overview of what each day holds",
  "estimated_budget": "itemized cost estimate as a string: transport, accommodation, food, activities and a total",
  "day_by_day": [
    {"day": 1, "title": "short title", "details": "the full day labeled Morning:, Afternoon:, Evening: and Night:, each with specific times, real named places and food suggestions"},
    ...
  ]
}

The day_by_day array must contain exactly %d entries. Be specific: name real neighborhoods, attractions, restaurants and dishes, never generic filler. Tailor the plan to the stated interests and budget.`

// genericPhrases flag low-effort model output. Their presence alone is a
// quality signal, not a failure.
var genericPhrases = []string{
	"explore the city",
	"local cuisine",
	"enjoy your day",
	"free time",
	"leisure time",
	"at your own pace",
	"various attractions",
	"local markets",
}

// buildItinerary generates a day-by-day plan for the trip. It degrades
// through three levels: structured model output, model output with a
// synthesized summary, and finally a deterministic template. It never fails.
func (s *DefaultAssistantService) buildItinerary(ctx context.Context, tc models.TripContext) *models.Itinerary {
	days := tc.Days
	if days <= 0 {
		days = 3
	}
	it, err := s.generateItinerary(ctx, tc, days)
	if err != nil {
		utils.GetLogger().Warn("Itinerary generation failed, using template fallback",
			zap.String("destination", tc.Destination), zap.Error(err))
		return fallbackItinerary(tc, days)
	}
	s.validateItinerary(it, tc, days)
	return it
}

func (s *DefaultAssistantService) generateItinerary(ctx context.Context, tc models.TripContext, days int) (*models.Itinerary, error) {
	if s.LLM == nil {
		return nil, fmt.Errorf("no text generator configured")
	}
	prompt := fmt.Sprintf(itineraryPromptTemplate, days, tc.Destination, renderTripFacts(tc), days)
	raw, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("itinerary model call failed: %w", err)
	}
	var it models.Itinerary
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &it); err != nil {
		return nil, fmt.Errorf("itinerary response was not valid JSON: %w", err)
	}
	if len(it.DayByDay) == 0 {
		return nil, fmt.Errorf("itinerary response contained no days")
	}
	return &it, nil
}

// validateItinerary runs quality checks on model output. Findings are logged,
// never surfaced: a mediocre itinerary beats an error message.
func (s *DefaultAssistantService) validateItinerary(it *models.Itinerary, tc models.TripContext, wantDays int) {
	log := utils.GetLogger()

	if len(it.DayByDay) != wantDays {
		log.Warn("Itinerary day count does not match requested days",
			zap.Int("want", wantDays), zap.Int("got", len(it.DayByDay)),
			zap.String("destination", tc.Destination))
	}

	// The summary carries the bulk of the plan, so its length is the
	// quality signal.
	if summary := strings.TrimSpace(it.Summary); summary != "" {
		lower := strings.ToLower(summary)
		var genericHits int
		for _, phrase := range genericPhrases {
			if strings.Contains(lower, phrase) {
				genericHits++
			}
		}
		if len(summary) < 500 {
			log.Warn("Itinerary summary is very thin",
				zap.Int("chars", len(summary)), zap.String("destination", tc.Destination))
		} else if len(summary) < 800 && genericHits >= 3 {
			log.Warn("Itinerary summary is short and generic",
				zap.Int("chars", len(summary)), zap.Int("genericPhrases", genericHits),
				zap.String("destination", tc.Destination))
		}
	}

	if strings.TrimSpace(it.Summary) == "" {
		it.Summary = synthesizeSummary(tc, it.DayByDay)
	}
	if strings.TrimSpace(it.EstimatedBudget) == "" && tc.Budget != "" {
		it.EstimatedBudget = renderBudget(tc.Budget)
	}
}

// fallbackItinerary builds a serviceable plan with no model at all.
func fallbackItinerary(tc models.TripContext, days int) *models.Itinerary {
	dest := tc.Destination
	if dest == "" {
		dest = "your destination"
	}
	it := &models.Itinerary{
		Summary: fmt.Sprintf("A %d-day trip to %s. Here's a starting plan you can refine as you go.", days, dest),
	}
	if tc.Budget != "" {
		it.EstimatedBudget = renderBudget(tc.Budget)
	}
	for day := 1; day <= days; day++ {
		var title, details string
		switch {
		case day == 1:
			title = fmt.Sprintf("Arrival in %s", dest)
			details = fmt.Sprintf("Arrive in %s, check into your accommodation and settle in. Spend the afternoon getting oriented around the main area, and try a well-reviewed local restaurant for dinner.", dest)
		case day == days && days > 1:
			title = "Last day and departure"
			details = fmt.Sprintf("Use the morning for any spots you missed or for picking up souvenirs, then check out and head onward from %s.", dest)
		default:
			title = fmt.Sprintf("Exploring %s", dest)
			details = fmt.Sprintf("Visit one of the top-rated sights in %s in the morning, take a relaxed lunch nearby, and spend the afternoon on a second area of the city before an evening meal.", dest)
			if len(tc.Interests) > 0 {
				details += fmt.Sprintf(" Work in time for %s.", strings.Join(tc.Interests, ", "))
			}
		}
		it.DayByDay = append(it.DayByDay, models.DayPlan{Day: day, Title: title, Details: details})
	}
	return it
}

func synthesizeSummary(tc models.TripContext, days []models.DayPlan) string {
	var titles []string
	for _, d := range days {
		if t := strings.TrimSpace(d.Title); t != "" {
			titles = append(titles, t)
		}
	}
	dest := tc.Destination
	if dest == "" {
		dest = "your destination"
	}
	if len(titles) == 0 {
		return fmt.Sprintf("A %d-day trip to %s.", len(days), dest)
	}
	return fmt.Sprintf("A %d-day trip to %s covering %s.", len(days), dest, strings.Join(titles, "; "))
}

// renderTripFacts lists the known trip details for the generation prompt.
func renderTripFacts(tc models.TripContext) string {
	var b strings.Builder
	add := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- %s: %s\n", label, value)
		}
	}
	add("Destination", tc.Destination)
	add("Origin", tc.Origin)
	if tc.Days > 0 {
		add("Duration", fmt.Sprintf("%d days", tc.Days))
	}
	if tc.DepartureDate != "" {
		add("Departure", formatTravelDate(tc.DepartureDate))
	}
	if tc.ReturnDate != "" {
		add("Return", formatTravelDate(tc.ReturnDate))
	}
	add("Budget", renderBudget(tc.Budget))
	if tc.Adults > 0 {
		add("Travelers", fmt.Sprintf("%d", tc.Adults))
	}
	if len(tc.Interests) > 0 {
		add("Interests", strings.Join(tc.Interests, ", "))
	}
	add("Preferred transport", tc.Transport)
	if b.Len() == 0 {
		return "- (only the destination is known)"
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderBudget prefixes purely numeric budgets with ₹; category words pass
// through unchanged.
func renderBudget(budget string) string {
	if budget == "" {
		return ""
	}
	for _, r := range budget {
		if !unicode.IsDigit(r) {
			return budget
		}
	}
	return "₹" + budget
}
