// File: services/search/flights.go
package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

type flightsResponse struct {
	BestFlights  []flightGroup `json:"best_flights"`
	OtherFlights []flightGroup `json:"other_flights"`
}

type flightGroup struct {
	Flights []struct {
		Airline          string `json:"airline"`
		FlightNumber     string `json:"flight_number"`
		Duration         int    `json:"duration"`
		DepartureAirport struct {
			Time string `json:"time"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Time string `json:"time"`
		} `json:"arrival_airport"`
	} `json:"flights"`
	TotalDuration int `json:"total_duration"`
	Price         int `json:"price"`
}

// SearchFlights queries Google Flights for a route. returnDate may be empty
// for a one-way search.
func (c *SerpClient) SearchFlights(ctx context.Context, origin, destination, departureDate, returnDate string) ([]models.FlightOption, error) {
	originCode, ok := resolveAirport(origin)
	if !ok {
		return nil, fmt.Errorf("no airport known for %q", origin)
	}
	destCode, ok := resolveAirport(destination)
	if !ok {
		return nil, fmt.Errorf("no airport known for %q", destination)
	}

	if c.offline() {
		utils.GetLogger().Info("Flight search running offline, returning sample options",
			zap.String("route", originCode+"-"+destCode))
		return sampleFlights(originCode, destCode, departureDate), nil
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", originCode)
	params.Set("arrival_id", destCode)
	params.Set("outbound_date", departureDate)
	params.Set("currency", "INR")
	if returnDate != "" {
		params.Set("return_date", returnDate)
		params.Set("type", "1")
	} else {
		params.Set("type", "2")
	}

	var resp flightsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	groups := append(resp.BestFlights, resp.OtherFlights...)
	options := make([]models.FlightOption, 0, len(groups))
	for _, g := range groups {
		if len(g.Flights) == 0 {
			continue
		}
		first := g.Flights[0]
		last := g.Flights[len(g.Flights)-1]
		opt := models.FlightOption{
			Airline:       first.Airline,
			FlightNumber:  first.FlightNumber,
			DepartureTime: first.DepartureAirport.Time,
			ArrivalTime:   last.ArrivalAirport.Time,
			Duration:      formatMinutes(g.TotalDuration),
			Stops:         len(g.Flights) - 1,
		}
		if g.Price > 0 {
			opt.Price = "₹" + strconv.Itoa(g.Price)
		}
		options = append(options, opt)
	}
	return options, nil
}

func formatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func sampleFlights(origin, dest, date string) []models.FlightOption {
	return []models.FlightOption{
		{Airline: "IndiGo", FlightNumber: "6E 204", DepartureTime: date + " 06:10", Duration: "2h 15m", Price: "₹4,850", Stops: 0},
		{Airline: "Air India", FlightNumber: "AI 441", DepartureTime: date + " 09:35", Duration: "2h 25m", Price: "₹5,320", Stops: 0},
		{Airline: "Vistara", FlightNumber: "UK 879", DepartureTime: date + " 18:50", Duration: "4h 05m", Price: "₹4,210", Stops: 1},
	}
}
