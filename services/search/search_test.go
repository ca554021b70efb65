// File: services/search/search_test.go
package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ttravels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *SerpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewSerpClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestResolveAirport(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Delhi", "DEL", true},
		{"new delhi", "DEL", true},
		{"Bengaluru", "BLR", true},
		{"GOI", "GOI", true},
		{"Atlantis", "", false},
	}
	for _, tc := range cases {
		got, ok := resolveAirport(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestSearchFlights(t *testing.T) {
	t.Run("parses best and other flights", func(t *testing.T) {
		var gotQuery map[string]string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"engine":        r.URL.Query().Get("engine"),
				"departure_id":  r.URL.Query().Get("departure_id"),
				"arrival_id":    r.URL.Query().Get("arrival_id"),
				"outbound_date": r.URL.Query().Get("outbound_date"),
				"type":          r.URL.Query().Get("type"),
			}
			w.Write([]byte(`{
				"best_flights": [{
					"flights": [{"airline": "IndiGo", "flight_number": "6E 204",
						"departure_airport": {"time": "2025-11-15 06:10"},
						"arrival_airport": {"time": "2025-11-15 08:25"}}],
					"total_duration": 135, "price": 4850
				}],
				"other_flights": [{
					"flights": [
						{"airline": "Vistara", "flight_number": "UK 879",
							"departure_airport": {"time": "2025-11-15 18:50"},
							"arrival_airport": {"time": "2025-11-15 20:40"}},
						{"airline": "Vistara", "flight_number": "UK 112",
							"departure_airport": {"time": "2025-11-15 21:40"},
							"arrival_airport": {"time": "2025-11-15 23:00"}}
					],
					"total_duration": 250, "price": 4210
				}]
			}`))
		})

		flights, err := c.SearchFlights(context.Background(), "Delhi", "Goa", "2025-11-15", "")
		require.NoError(t, err)
		require.Len(t, flights, 2)

		assert.Equal(t, "google_flights", gotQuery["engine"])
		assert.Equal(t, "DEL", gotQuery["departure_id"])
		assert.Equal(t, "GOI", gotQuery["arrival_id"])
		assert.Equal(t, "2025-11-15", gotQuery["outbound_date"])
		assert.Equal(t, "2", gotQuery["type"], "one-way without a return date")

		assert.Equal(t, "IndiGo", flights[0].Airline)
		assert.Equal(t, "₹4850", flights[0].Price)
		assert.Equal(t, "2h 15m", flights[0].Duration)
		assert.Equal(t, 0, flights[0].Stops)
		assert.Equal(t, 1, flights[1].Stops)
		assert.Equal(t, "2025-11-15 23:00", flights[1].ArrivalTime)
	})

	t.Run("unknown city fails before any request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request should not be made")
		})
		_, err := c.SearchFlights(context.Background(), "Atlantis", "Goa", "2025-11-15", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Atlantis")
	})

	t.Run("offline mode returns samples", func(t *testing.T) {
		c := NewSerpClient("")
		flights, err := c.SearchFlights(context.Background(), "Delhi", "Goa", "2025-11-15", "")
		require.NoError(t, err)
		assert.NotEmpty(t, flights)
	})
}

func TestSearchHotels(t *testing.T) {
	query := models.HotelQuery{
		Destination: "Goa",
		CheckIn:     "2025-11-15",
		CheckOut:    "2025-11-18",
		Adults:      2,
	}

	t.Run("parses properties", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "google_hotels", r.URL.Query().Get("engine"))
			assert.Equal(t, "2", r.URL.Query().Get("adults"))
			w.Write([]byte(`{"properties": [{
				"name": "Sea View Resort",
				"rate_per_night": {"lowest": "₹6,200"},
				"overall_rating": 4.5,
				"reviews": 1284,
				"property_token": "tok123",
				"amenities": ["Pool"]
			}]}`))
		})

		hotels, err := c.SearchHotels(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, "Sea View Resort", hotels[0].Name)
		assert.Equal(t, "₹6,200", hotels[0].Price)
		assert.Equal(t, "4.5", hotels[0].Rating)
		assert.Equal(t, "1284", hotels[0].Reviews)
		assert.Equal(t, "tok123", hotels[0].PropertyToken)
	})

	t.Run("rejects inverted stay window", func(t *testing.T) {
		c := NewSerpClient("test-key")
		bad := query
		bad.CheckOut = "2025-11-14"
		_, err := c.SearchHotels(context.Background(), bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-out")
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		c := NewSerpClient("test-key")
		bad := query
		bad.CheckIn = "next tuesday"
		_, err := c.SearchHotels(context.Background(), bad)
		require.Error(t, err)
	})

	t.Run("offline mode returns samples", func(t *testing.T) {
		c := NewSerpClient("")
		hotels, err := c.SearchHotels(context.Background(), query)
		require.NoError(t, err)
		assert.NotEmpty(t, hotels)
	})
}

func TestSearchAttractions(t *testing.T) {
	t.Run("parses local results", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "google_local", r.URL.Query().Get("engine"))
			assert.Contains(t, r.URL.Query().Get("q"), "Goa")
			w.Write([]byte(`{"local_results": [
				{"title": "Baga Beach", "rating": 4.4, "reviews": 9000, "type": "Beach"},
				{"title": "Fort Aguada", "rating": 4.3, "reviews": 5000, "type": "Fort"}
			]}`))
		})

		attractions, err := c.SearchAttractions(context.Background(), "Goa")
		require.NoError(t, err)
		require.Len(t, attractions, 2)
		assert.Equal(t, "Baga Beach", attractions[0].Name)
		assert.Equal(t, "4.4", attractions[0].Rating)
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})
		_, err := c.SearchAttractions(context.Background(), "Goa")
		require.Error(t, err)
	})
}
