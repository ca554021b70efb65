// File: services/assistant/format.go
package assistant

import (
	"fmt"
	"strings"

	"ttravels/models"
)

// maxListedOptions caps how many search results are rendered into a reply.
const maxListedOptions = 5

func formatFlights(flights []models.FlightOption) string {
	if len(flights) == 0 {
		return "I couldn't find any flights for those dates."
	}
	var b strings.Builder
	b.WriteString("Here are some flight options:\n")
	for i, f := range flights {
		if i >= maxListedOptions {
			break
		}
		line := fmt.Sprintf("%d. %s", i+1, orDefault(f.Airline, "Unknown airline"))
		if f.FlightNumber != "" {
			line += " " + f.FlightNumber
		}
		if f.DepartureTime != "" {
			line += fmt.Sprintf(" — departs %s", f.DepartureTime)
		}
		if f.Duration != "" {
			line += fmt.Sprintf(", %s", f.Duration)
		}
		if f.Stops == 0 {
			line += ", non-stop"
		} else if f.Stops > 0 {
			line += fmt.Sprintf(", %d stop(s)", f.Stops)
		}
		if f.Price != "" {
			line += fmt.Sprintf(" — %s", f.Price)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHotels(hotels []models.HotelOption) string {
	if len(hotels) == 0 {
		return "I couldn't find any hotels for those dates."
	}
	var b strings.Builder
	b.WriteString("Here are some hotel options:\n")
	for i, h := range hotels {
		if i >= maxListedOptions {
			break
		}
		name := h.Name
		if name == "" {
			name = h.Title
		}
		line := fmt.Sprintf("%d. %s", i+1, orDefault(name, "Unnamed property"))
		if h.Rating != "" {
			line += fmt.Sprintf(" — %s★", h.Rating)
			if h.Reviews != "" {
				line += fmt.Sprintf(" (%s reviews)", h.Reviews)
			}
		}
		if h.Price != "" {
			line += fmt.Sprintf(" — %s per night", h.Price)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAttractions(attractions []models.Attraction) string {
	if len(attractions) == 0 {
		return "I couldn't find attractions for that destination."
	}
	var b strings.Builder
	b.WriteString("Top attractions:\n")
	for i, a := range attractions {
		if i >= maxListedOptions {
			break
		}
		line := fmt.Sprintf("%d. %s", i+1, orDefault(a.Name, "Unnamed attraction"))
		if a.Rating != "" {
			line += fmt.Sprintf(" — %s★", a.Rating)
		}
		if a.Type != "" {
			line += " — " + a.Type
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatItineraryText(it *models.Itinerary) string {
	if it == nil {
		return ""
	}
	var b strings.Builder
	if it.Summary != "" {
		b.WriteString(it.Summary + "\n\n")
	}
	for _, day := range it.DayByDay {
		fmt.Fprintf(&b, "Day %d: %s\n%s\n\n", day.Day, day.Title, day.Details)
	}
	if it.EstimatedBudget != "" {
		fmt.Fprintf(&b, "Estimated budget: %s\n", it.EstimatedBudget)
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
