package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripContextMerge(t *testing.T) {
	t.Run("non-empty values overwrite", func(t *testing.T) {
		base := TripContext{Destination: "Goa", Days: 3}
		base.Merge(TripContext{Destination: "Jaipur", Budget: "luxury"})
		assert.Equal(t, "Jaipur", base.Destination)
		assert.Equal(t, 3, base.Days)
		assert.Equal(t, "luxury", base.Budget)
	})

	t.Run("empty values never clear existing slots", func(t *testing.T) {
		base := TripContext{Destination: "Goa", Days: 3, Budget: "luxury", Interests: []string{"beach"}}
		base.Merge(TripContext{})
		assert.Equal(t, "Goa", base.Destination)
		assert.Equal(t, 3, base.Days)
		assert.Equal(t, "luxury", base.Budget)
		assert.Equal(t, []string{"beach"}, base.Interests)
	})
}

func TestTripContextIsEmpty(t *testing.T) {
	assert.True(t, TripContext{}.IsEmpty())
	assert.False(t, TripContext{Destination: "Goa"}.IsEmpty())
	assert.False(t, TripContext{PendingTasks: TaskSet{TaskPlanItinerary}}.IsEmpty())
}

func TestTaskSet(t *testing.T) {
	var ts TaskSet
	ts = ts.Add(TaskFindHotels)
	ts = ts.Add(TaskFindHotels)
	assert.Len(t, ts, 1)
	assert.True(t, ts.Contains(TaskFindHotels))
	assert.False(t, ts.Contains(TaskFindFlights))

	assert.Equal(t, TaskSet{TaskPlanItinerary}, TaskSet(nil).Normalize())
	assert.Equal(t, ts, ts.Normalize())
}

func TestTripPlanClone(t *testing.T) {
	orig := &TripPlan{
		Details: TripContext{Destination: "Goa", Interests: []string{"beach"}},
		Itinerary: &Itinerary{
			Summary:  "Trip",
			DayByDay: []DayPlan{{Day: 1, Title: "Arrival", Details: "Check in."}},
		},
		Hotels: []HotelOption{{Name: "Sea View"}},
	}

	cp := orig.Clone()
	require.NotNil(t, cp)
	cp.Itinerary.DayByDay[0].Title = "Changed"
	cp.Hotels[0].Name = "Changed"
	cp.Details.Interests[0] = "hiking"

	assert.Equal(t, "Arrival", orig.Itinerary.DayByDay[0].Title)
	assert.Equal(t, "Sea View", orig.Hotels[0].Name)

	var nilPlan *TripPlan
	assert.Nil(t, nilPlan.Clone())
}
