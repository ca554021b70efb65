// File: services/search/attractions.go
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

type attractionsResponse struct {
	LocalResults []struct {
		Title          string  `json:"title"`
		Rating         float64 `json:"rating"`
		Reviews        int     `json:"reviews"`
		Type           string  `json:"type"`
		Address        string  `json:"address"`
		GPSCoordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"gps_coordinates"`
	} `json:"local_results"`
}

// SearchAttractions queries the local results engine for the top sights at a
// destination.
func (c *SerpClient) SearchAttractions(ctx context.Context, destination string) ([]models.Attraction, error) {
	if destination == "" {
		return nil, fmt.Errorf("attraction search needs a destination")
	}

	if c.offline() {
		utils.GetLogger().Info("Attraction search running offline, returning sample options",
			zap.String("destination", destination))
		return sampleAttractions(destination), nil
	}

	params := url.Values{}
	params.Set("engine", "google_local")
	params.Set("q", "top attractions in "+destination)

	var resp attractionsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("attraction search failed: %w", err)
	}

	attractions := make([]models.Attraction, 0, len(resp.LocalResults))
	for _, r := range resp.LocalResults {
		a := models.Attraction{
			Name:    r.Title,
			Type:    r.Type,
			Address: r.Address,
			GPS: models.GeoPoint{
				Latitude:  r.GPSCoordinates.Latitude,
				Longitude: r.GPSCoordinates.Longitude,
			},
		}
		if r.Rating > 0 {
			a.Rating = strconv.FormatFloat(r.Rating, 'f', 1, 64)
		}
		if r.Reviews > 0 {
			a.Reviews = strconv.Itoa(r.Reviews)
		}
		attractions = append(attractions, a)
	}
	return attractions, nil
}

func sampleAttractions(destination string) []models.Attraction {
	return []models.Attraction{
		{Name: "Old Town Walk, " + destination, Rating: "4.6", Type: "Historical landmark"},
		{Name: destination + " City Museum", Rating: "4.3", Type: "Museum"},
		{Name: destination + " Sunset Point", Rating: "4.7", Type: "Scenic spot"},
	}
}
