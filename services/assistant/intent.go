// File: services/assistant/intent.go
package assistant

import (
	"regexp"

	"ttravels/models"
)

// Surface-level intent checks that route a message before any model call.
var (
	reGreetingWord = regexp.MustCompile(`(?i)\b(hi|hello|hey|greetings|namaste|good\s+(morning|afternoon|evening))\b`)
	rePlanKeyword  = regexp.MustCompile(`(?i)\b(plan|planning|itinerary|trip)\b`)

	reFullTripPlan = regexp.MustCompile(`(?i)\b(create|make|generate|build)\b.*\b(full|complete|entire|whole|comprehensive)\b.*\b(trip|plan|itinerary)\b|\b(full|complete|entire|whole|comprehensive|end.to.end)\s+(trip\s+)?plan\b|\bplan\s+(my\s+)?(full|complete|entire|whole|comprehensive)\s+trip\b`)

	rePlanRequest = regexp.MustCompile(`(?i)\b(plan|planning|itinerary|organize|organise)\b.*\b(trip|vacation|holiday|tour|travel|getaway)\b|\b(trip|vacation|holiday|tour)\b.*\b(plan|planning|itinerary)\b`)

	reFlightVerb = regexp.MustCompile(`(?i)\b(find|search|get|show|book|look\s+for)\b.*\bflights?\b`)
	reFlightWord = regexp.MustCompile(`(?i)\bflights?\b`)
	reFlightCue  = regexp.MustCompile(`(?i)\b(from|to|on|depart|departing|departure)\b`)

	reHotelSearch = regexp.MustCompile(`(?i)\b(find|search|get|show|book|look\s+for|suggest|recommend)\b.*\b(hotels?|stays?|accommodations?|resorts?)\b`)

	reAddHotels = regexp.MustCompile(`(?i)\b(add|include|also)\b.*\b(hotels?|stays?|accommodations?)\b`)

	reAsksForBudget = regexp.MustCompile(`(?i)\b(give\s+me|tell\s+me|what\s+is|what's|whats|show\s+me|need|want)\b.*\bbudget\b`)
)

// isGreeting matches greeting vocabulary anywhere in the message, unless a
// planning keyword pulls the message toward the planning branches.
func isGreeting(message string) bool {
	return reGreetingWord.MatchString(message) && !rePlanKeyword.MatchString(message)
}

func isFullTripPlan(message string) bool {
	return reFullTripPlan.MatchString(message)
}

func isPlanRequest(message string) bool {
	return rePlanRequest.MatchString(message) || isFullTripPlan(message)
}

func isFlightSearch(message string) bool {
	if reFlightVerb.MatchString(message) {
		return true
	}
	return reFlightWord.MatchString(message) && reFlightCue.MatchString(message)
}

func isHotelSearch(message string) bool {
	return reHotelSearch.MatchString(message) || reAddHotels.MatchString(message)
}

// asksForBudget detects a request FOR budget information ("give me the
// budget for this trip"), as opposed to a message providing one.
func asksForBudget(message string) bool {
	return reAsksForBudget.MatchString(message)
}

// fullTripTasks is the task set a full-trip-plan request expands to.
func fullTripTasks() models.TaskSet {
	return models.TaskSet{
		models.TaskPlanItinerary,
		models.TaskFindFlights,
		models.TaskFindHotels,
		models.TaskFindAttractions,
	}
}
