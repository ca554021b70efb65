// File: services/assistant/intent_test.go
package assistant

import (
	"testing"

	"ttravels/models"

	"github.com/stretchr/testify/assert"
)

func TestIntentDetection(t *testing.T) {
	t.Run("greetings", func(t *testing.T) {
		for _, msg := range []string{"hi", "Hello!", "hey", "good morning", "Namaste", "hello there", "hey, good evening"} {
			assert.True(t, isGreeting(msg), msg)
		}
		assert.False(t, isGreeting("hi, plan a trip to Goa"))
		assert.False(t, isGreeting("highway trip"))
	})

	t.Run("plan requests", func(t *testing.T) {
		for _, msg := range []string{
			"plan a trip to Goa",
			"help me with planning a vacation",
			"I need an itinerary for my Kerala trip",
			"can you organize a tour",
		} {
			assert.True(t, isPlanRequest(msg), msg)
		}
		assert.False(t, isPlanRequest("what's the weather in Goa"))
	})

	t.Run("full trip plan implies every task", func(t *testing.T) {
		for _, msg := range []string{
			"give me a full trip plan for Goa",
			"create a complete trip plan to Jaipur",
			"plan my entire trip",
			"create a comprehensive trip plan to Goa for 5 days",
			"generate a complete itinerary for my Goa trip",
			"build the whole itinerary for Kerala",
		} {
			assert.True(t, isFullTripPlan(msg), msg)
		}
		tasks := fullTripTasks()
		assert.Len(t, tasks, 4)
		for _, task := range models.AllTasks {
			assert.True(t, tasks.Contains(task), string(task))
		}
	})

	t.Run("flight search", func(t *testing.T) {
		assert.True(t, isFlightSearch("find flights from Delhi to Mumbai"))
		assert.True(t, isFlightSearch("show me flights to Goa"))
		assert.True(t, isFlightSearch("flights on December 4"))
		assert.True(t, isFlightSearch("flights departing from Mumbai"))
		assert.False(t, isFlightSearch("I hate long walks"))
		assert.False(t, isFlightSearch("flights are expensive these days"))
	})

	t.Run("budget questions", func(t *testing.T) {
		assert.True(t, asksForBudget("give me the budget for this trip"))
		assert.True(t, asksForBudget("what's the budget looking like?"))
		assert.False(t, asksForBudget("my budget is 50000"))
	})

	t.Run("hotel search", func(t *testing.T) {
		assert.True(t, isHotelSearch("find hotels in Goa"))
		assert.True(t, isHotelSearch("suggest a resort near the beach"))
		assert.True(t, isHotelSearch("also add hotels to my plan"))
		assert.False(t, isHotelSearch("plan a trip to Goa"))
	})
}
