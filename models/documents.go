package models

import "time"

// SavedTripPlan is a trip plan persisted on behalf of a user.
type SavedTripPlan struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	Name      string    `bson:"name" json:"name,omitempty"`
	Plan      TripPlan  `bson:"plan" json:"plan"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// Booking records a confirmed travel booking. Payment capture happens
// outside this system; only the reference document is stored.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"user_id"`
	ServiceType string    `bson:"serviceType" json:"service_type"`
	Reference   string    `bson:"reference" json:"reference"`
	Destination string    `bson:"destination" json:"destination,omitempty"`
	TravelDate  string    `bson:"travelDate" json:"travel_date,omitempty"`
	Amount      string    `bson:"amount" json:"amount,omitempty"`
	Status      string    `bson:"status" json:"status"`
	DeviceToken string    `bson:"-" json:"device_token,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// ReminderPayload is the asynq payload for a scheduled trip reminder.
type ReminderPayload struct {
	ReminderID  string `json:"reminderId"`
	UserID      string `json:"userId"`
	DeviceToken string `json:"deviceToken"`
	Destination string `json:"destination"`
	FireDate    string `json:"fireDate"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}
