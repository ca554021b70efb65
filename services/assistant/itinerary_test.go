// File: services/assistant/itinerary_test.go
package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ttravels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItinerary(t *testing.T) {
	ctx := context.Background()
	tc := models.TripContext{Destination: "Jaipur", Days: 3, Budget: "40000", Interests: []string{"food"}}

	t.Run("structured model output is used as-is", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.response = `{
			"summary": "Three days of forts and food in Jaipur.",
			"estimated_budget": "₹38,000",
			"day_by_day": [
				{"day": 1, "title": "Amber Fort", "details": "Morning at Amber Fort, lunch at LMB, evening at Nahargarh for sunset views over the pink city."},
				{"day": 2, "title": "Old City", "details": "City Palace and Jantar Mantar in the morning, bazaar walk through Johari Bazaar, lassi at Lassiwala, dinner at Chokhi Dhani."},
				{"day": 3, "title": "Food trail", "details": "Street food crawl: pyaaz kachori at Rawat, spice market visit, afternoon at Albert Hall Museum, farewell Rajasthani thali."}
			]
		}`

		it := svc.buildItinerary(ctx, tc)
		require.Len(t, it.DayByDay, 3)
		assert.Equal(t, "Three days of forts and food in Jaipur.", it.Summary)
		assert.Equal(t, "₹38,000", it.EstimatedBudget)
	})

	t.Run("prompt demands the full itinerary contract", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.response = `{"day_by_day": [{"day": 1, "title": "Amber Fort", "details": "Morning at the fort."}]}`

		svc.buildItinerary(ctx, tc)
		require.NotEmpty(t, deps.llm.prompts)
		prompt := deps.llm.prompts[len(deps.llm.prompts)-1]
		assert.Contains(t, prompt, "at least 1000 words")
		assert.Contains(t, prompt, "Morning:")
		assert.Contains(t, prompt, "Night:")
		assert.Contains(t, prompt, "itemized")
	})

	t.Run("model failure falls back to a template", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("quota exceeded")

		it := svc.buildItinerary(ctx, tc)
		require.NotNil(t, it)
		assert.Len(t, it.DayByDay, 3)
		assert.NotEmpty(t, it.Summary)
		assert.Equal(t, "₹40000", it.EstimatedBudget)
		for i, day := range it.DayByDay {
			assert.Equal(t, i+1, day.Day)
			assert.NotEmpty(t, day.Details)
		}
	})

	t.Run("garbage model output falls back to a template", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.response = "Sounds great, here's a plan: go see stuff!"

		it := svc.buildItinerary(ctx, tc)
		require.NotNil(t, it)
		assert.Len(t, it.DayByDay, 3)
	})

	t.Run("missing summary is synthesized from day titles", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.response = `{"day_by_day": [
			{"day": 1, "title": "Amber Fort", "details": "A full morning exploring the fort complex, elephant courtyard and mirror palace, followed by lunch in the old town and an evening stroll."},
			{"day": 2, "title": "Old City", "details": "City Palace, Jantar Mantar and Hawa Mahal with a long bazaar walk in between, ending with a rooftop dinner overlooking the palace."}
		]}`

		it := svc.buildItinerary(ctx, models.TripContext{Destination: "Jaipur", Days: 2})
		assert.Contains(t, it.Summary, "Jaipur")
		assert.Contains(t, it.Summary, "Amber Fort")
	})

	t.Run("zero days defaults to a three day plan", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("down")

		it := svc.buildItinerary(ctx, models.TripContext{Destination: "Goa"})
		assert.Len(t, it.DayByDay, 3)
	})
}

func TestRenderBudget(t *testing.T) {
	assert.Equal(t, "₹50000", renderBudget("50000"))
	assert.Equal(t, "luxury", renderBudget("luxury"))
	assert.Equal(t, "", renderBudget(""))
}

func TestFormatItineraryText(t *testing.T) {
	it := &models.Itinerary{
		Summary:         "Two days in Goa.",
		EstimatedBudget: "₹20000",
		DayByDay: []models.DayPlan{
			{Day: 1, Title: "Beaches", Details: "North Goa beaches."},
			{Day: 2, Title: "Old Goa", Details: "Churches and river cruise."},
		},
	}
	text := formatItineraryText(it)
	assert.True(t, strings.HasPrefix(text, "Two days in Goa."))
	assert.Contains(t, text, "Day 1: Beaches")
	assert.Contains(t, text, "Day 2: Old Goa")
	assert.Contains(t, text, "Estimated budget: ₹20000")
	assert.Equal(t, "", formatItineraryText(nil))
}
