// File: services/assistant/orchestrator_test.go
package assistant

import (
	"context"
	"errors"
	"testing"

	"ttravels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestrateIsolatesTaskFailures(t *testing.T) {
	ctx := context.Background()
	tc := models.TripContext{Destination: "Goa", Origin: "Delhi", Days: 3, Budget: "mid-range"}

	t.Run("hotel failure leaves the rest of the plan intact", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")
		deps.hotels.err = errors.New("hotel provider down")
		deps.flights.results = []models.FlightOption{{Airline: "IndiGo"}, {Airline: "Vistara"}}
		deps.attractions.results = []models.Attraction{{Name: "Fort Aguada"}}

		res := svc.orchestrate(ctx, "conv", fullTripTasks(), tc)

		require.NotNil(t, res.TripPlan)
		assert.NotNil(t, res.TripPlan.Itinerary)
		assert.Len(t, res.TripPlan.Flights, 2)
		assert.Empty(t, res.TripPlan.Hotels)
		assert.Len(t, res.TripPlan.Attractions, 1)
		// A full plan gets the single acknowledgment, not a list of
		// per-task fragments.
		assert.Contains(t, res.Reply, "complete trip plan")
		assert.NotContains(t, res.Reply, "couldn't fetch hotels")
		assert.NotContains(t, res.Reply, "flight option(s)")
	})

	t.Run("attractions-only request lists the attractions", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")
		deps.attractions.results = []models.Attraction{
			{Name: "Fort Aguada", Rating: "4.4", Type: "Fort"},
			{Name: "Baga Beach", Rating: "4.2", Type: "Beach"},
		}

		res := svc.orchestrate(ctx, "conv", models.TaskSet{models.TaskFindAttractions}, tc)

		assert.Contains(t, res.Reply, "Top attractions:")
		assert.Contains(t, res.Reply, "Fort Aguada")
		assert.Contains(t, res.Reply, "Baga Beach")
		assert.Len(t, res.TripPlan.Attractions, 2)
	})

	t.Run("every provider failing still yields an itinerary", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")
		deps.hotels.err = errors.New("down")
		deps.flights.err = errors.New("down")
		deps.attractions.err = errors.New("down")

		res := svc.orchestrate(ctx, "conv", fullTripTasks(), tc)

		require.NotNil(t, res.TripPlan)
		require.NotNil(t, res.TripPlan.Itinerary)
		assert.Len(t, res.TripPlan.Itinerary.DayByDay, 3)
		assert.NotEmpty(t, res.Reply)
	})

	t.Run("flights skipped with a prompt when origin is unknown", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")
		noOrigin := tc
		noOrigin.Origin = ""

		res := svc.orchestrate(ctx, "conv", models.TaskSet{models.TaskFindFlights}, noOrigin)

		assert.Empty(t, res.TripPlan.Flights)
		assert.Contains(t, res.Reply, "flying from")
		assert.Zero(t, deps.flights.calls)
	})

	t.Run("hotel query carries dates derived from the context", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")
		deps.hotels.results = []models.HotelOption{{Name: "Sea View"}}
		dated := tc
		dated.DepartureDate = "2025-11-10"
		dated.ReturnDate = "2025-11-13"

		res := svc.orchestrate(ctx, "conv", models.TaskSet{models.TaskFindHotels}, dated)

		assert.Equal(t, "Goa", deps.hotels.lastQuery.Destination)
		assert.Equal(t, "2025-11-10", deps.hotels.lastQuery.CheckIn)
		assert.Equal(t, "2025-11-13", deps.hotels.lastQuery.CheckOut)
		assert.Equal(t, res.HotelResults, res.TripPlan.Hotels)
	})

	t.Run("empty task set defaults to planning", func(t *testing.T) {
		svc, deps := newTestService()
		deps.llm.err = errors.New("model down")

		res := svc.orchestrate(ctx, "conv", nil, tc)

		require.NotNil(t, res.TripPlan.Itinerary)
		assert.Zero(t, deps.hotels.calls)
		assert.Zero(t, deps.flights.calls)
	})
}
