package models

// GeoPoint is a plain latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// FlightOption is one normalized flight search result.
type FlightOption struct {
	Airline       string `json:"airline,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Price         string `json:"price,omitempty"`
	Stops         int    `json:"stops,omitempty"`
}

// HotelOption is one normalized hotel search result.
type HotelOption struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	Rating        string   `json:"rating"`
	Address       string   `json:"address"`
	Reviews       string   `json:"reviews,omitempty"`
	PropertyToken string   `json:"property_token,omitempty"`
	GPS           GeoPoint `json:"gps_coordinates,omitempty"`
	Images        []string `json:"images,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

// Attraction is one normalized tourist attraction result.
type Attraction struct {
	Name    string   `json:"name"`
	Rating  string   `json:"rating,omitempty"`
	Address string   `json:"address,omitempty"`
	Reviews string   `json:"reviews,omitempty"`
	Type    string   `json:"type,omitempty"`
	GPS     GeoPoint `json:"gps_coordinates,omitempty"`
}

// HotelQuery carries the normalized parameters of a hotel search.
type HotelQuery struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Adults      int
	Budget      string
}
