// File: services/assistant/orchestrator.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

const fullPlanAcknowledgment = "Here's your complete trip plan! ✈️ I've put together an itinerary along with flights, hotels and attractions below."

// orchestrate runs every requested task against the completed trip context.
// Each task is isolated: one collaborator failing degrades that section of
// the plan and the rest still go through.
func (s *DefaultAssistantService) orchestrate(ctx context.Context, conversationID string, tasks models.TaskSet, tc models.TripContext) *models.ChatResult {
	log := utils.GetLogger()
	tasks = tasks.Normalize()

	plan := &models.TripPlan{Details: tc}
	var fragments []string
	fullPlan := len(tasks) == len(models.AllTasks)

	for _, task := range tasks {
		switch task {
		case models.TaskPlanItinerary:
			it := s.buildItinerary(ctx, tc)
			plan.Itinerary = it
			plan.ItineraryText = formatItineraryText(it)
			fragments = append(fragments, fmt.Sprintf("I've planned a %d-day itinerary for %s.", len(it.DayByDay), tc.Destination))

		case models.TaskFindFlights:
			origin := tc.Origin
			if origin == "" {
				origin = s.recallOrigin(ctx, conversationID)
			}
			if origin == "" {
				fragments = append(fragments, "For flights, let me know which city you're flying from.")
				continue
			}
			flights, err := s.searchFlights(ctx, origin, tc)
			if err != nil {
				log.Warn("Flight search failed", zap.String("origin", origin),
					zap.String("destination", tc.Destination), zap.Error(err))
				fragments = append(fragments, "I couldn't fetch flights right now, but the rest of your plan is ready.")
				continue
			}
			plan.Flights = flights
			fragments = append(fragments, fmt.Sprintf("I've found %d flight option(s) from %s to %s.", len(flights), origin, tc.Destination))

		case models.TaskFindHotels:
			hotels, err := s.searchHotelsFor(ctx, tc)
			if err != nil {
				log.Warn("Hotel search failed", zap.String("destination", tc.Destination), zap.Error(err))
				fragments = append(fragments, "I couldn't fetch hotels right now, but the rest of your plan is ready.")
				continue
			}
			plan.Hotels = hotels
			fragments = append(fragments, fmt.Sprintf("I've found %d hotel option(s) in %s.", len(hotels), tc.Destination))

		case models.TaskFindAttractions:
			if s.Attractions == nil {
				continue
			}
			attractions, err := s.Attractions.SearchAttractions(ctx, tc.Destination)
			if err != nil {
				log.Warn("Attraction search failed", zap.String("destination", tc.Destination), zap.Error(err))
				fragments = append(fragments, "I couldn't fetch attractions right now.")
				continue
			}
			plan.Attractions = attractions
			if len(tasks) == 1 {
				fragments = append(fragments, formatAttractions(attractions))
			} else {
				fragments = append(fragments, fmt.Sprintf("I've found %d attraction(s) in %s.", len(attractions), tc.Destination))
			}
		}
	}

	reply := strings.Join(fragments, " ")
	if fullPlan {
		// A complete plan gets one clean acknowledgment; the sections speak
		// for themselves in the structured plan.
		reply = fullPlanAcknowledgment
	}
	// Short acknowledgments carry the itinerary inline so a text-only client
	// still sees the full plan.
	if plan.ItineraryText != "" && len(reply) < 500 {
		reply = reply + "\n\n" + plan.ItineraryText
	}

	return &models.ChatResult{
		Reply:        reply,
		TripPlan:     plan,
		HotelResults: plan.Hotels,
	}
}

func (s *DefaultAssistantService) searchFlights(ctx context.Context, origin string, tc models.TripContext) ([]models.FlightOption, error) {
	if s.Flights == nil {
		return nil, fmt.Errorf("no flight searcher configured")
	}
	departure := tc.DepartureDate
	if departure == "" {
		departure = s.today().AddDate(0, 0, 7).Format("2006-01-02")
	}
	return s.Flights.SearchFlights(ctx, origin, tc.Destination, departure, tc.ReturnDate)
}

func (s *DefaultAssistantService) searchHotelsFor(ctx context.Context, tc models.TripContext) ([]models.HotelOption, error) {
	if s.Hotels == nil {
		return nil, fmt.Errorf("no hotel searcher configured")
	}
	checkIn := tc.DepartureDate
	if checkIn == "" {
		checkIn = s.today().AddDate(0, 0, 7).Format("2006-01-02")
	}
	checkOut := tc.ReturnDate
	if checkOut == "" {
		nights := tc.Days
		if nights <= 0 {
			nights = 2
		}
		checkOut, _ = addDaysISO(checkIn, nights)
	}
	return s.Hotels.SearchHotels(ctx, models.HotelQuery{
		Destination: tc.Destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      tc.Travelers(1),
		Budget:      tc.Budget,
	})
}

// recallOrigin scans recent user turns for a "from X to Y" phrasing when the
// current context never captured an origin.
func (s *DefaultAssistantService) recallOrigin(ctx context.Context, conversationID string) string {
	history, err := s.Conversations.History(ctx, conversationID)
	if err != nil {
		return ""
	}
	scanned := 0
	for i := len(history) - 1; i >= 0 && scanned < 10; i-- {
		if history[i].Role != models.RoleUser {
			continue
		}
		scanned++
		if m := reFromTo.FindStringSubmatch(history[i].Content); m != nil {
			if origin := cleanPlaceName(m[1]); isPlausiblePlace(origin) {
				return origin
			}
		}
	}
	return ""
}
