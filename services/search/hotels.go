// File: services/search/hotels.go
package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

type hotelsResponse struct {
	Properties []struct {
		Name         string `json:"name"`
		Type         string `json:"type"`
		RatePerNight struct {
			Lowest string `json:"lowest"`
		} `json:"rate_per_night"`
		OverallRating  float64 `json:"overall_rating"`
		Reviews        int     `json:"reviews"`
		PropertyToken  string  `json:"property_token"`
		GPSCoordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"gps_coordinates"`
		Images []struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"images"`
		Amenities []string `json:"amenities"`
	} `json:"properties"`
}

// SearchHotels queries Google Hotels for the destination and stay window.
func (c *SerpClient) SearchHotels(ctx context.Context, q models.HotelQuery) ([]models.HotelOption, error) {
	if q.Destination == "" {
		return nil, fmt.Errorf("hotel search needs a destination")
	}
	checkIn, err := time.Parse("2006-01-02", q.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %q", q.CheckIn)
	}
	checkOut, err := time.Parse("2006-01-02", q.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %q", q.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out %s must be after check-in %s", q.CheckOut, q.CheckIn)
	}

	if c.offline() {
		utils.GetLogger().Info("Hotel search running offline, returning sample options",
			zap.String("destination", q.Destination))
		return sampleHotels(q.Destination), nil
	}

	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", q.Destination)
	params.Set("check_in_date", q.CheckIn)
	params.Set("check_out_date", q.CheckOut)
	params.Set("currency", "INR")
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}
	params.Set("adults", strconv.Itoa(adults))

	var resp hotelsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	options := make([]models.HotelOption, 0, len(resp.Properties))
	for _, p := range resp.Properties {
		opt := models.HotelOption{
			Name:          p.Name,
			Price:         p.RatePerNight.Lowest,
			PropertyToken: p.PropertyToken,
			GPS: models.GeoPoint{
				Latitude:  p.GPSCoordinates.Latitude,
				Longitude: p.GPSCoordinates.Longitude,
			},
			Amenities: p.Amenities,
		}
		if p.OverallRating > 0 {
			opt.Rating = strconv.FormatFloat(p.OverallRating, 'f', 1, 64)
		}
		if p.Reviews > 0 {
			opt.Reviews = strconv.Itoa(p.Reviews)
		}
		for _, img := range p.Images {
			if img.Thumbnail != "" {
				opt.Images = append(opt.Images, img.Thumbnail)
			}
		}
		options = append(options, opt)
	}
	return options, nil
}

func sampleHotels(destination string) []models.HotelOption {
	return []models.HotelOption{
		{Name: "The Coastal Retreat, " + destination, Price: "₹6,200", Rating: "4.5", Reviews: "1284", Amenities: []string{"Free Wi-Fi", "Pool", "Breakfast"}},
		{Name: "City Center Inn, " + destination, Price: "₹3,400", Rating: "4.1", Reviews: "862", Amenities: []string{"Free Wi-Fi", "Airport shuttle"}},
		{Name: "Heritage Courtyard, " + destination, Price: "₹8,900", Rating: "4.7", Reviews: "431", Amenities: []string{"Spa", "Pool", "Restaurant"}},
	}
}
