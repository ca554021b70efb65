package models

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single utterance in a conversation. Immutable once appended.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
	Language       string `json:"language,omitempty"`
}

// ChatResult is what the assistant returns for one turn.
type ChatResult struct {
	Reply        string        `json:"reply"`
	TripPlan     *TripPlan     `json:"trip_plan,omitempty"`
	HotelResults []HotelOption `json:"hotel_results,omitempty"`
	Timestamp    string        `json:"timestamp,omitempty"`
}

// ModifyPlanRequest asks the assistant to edit a previously produced plan.
type ModifyPlanRequest struct {
	Message  string    `json:"message" binding:"required"`
	TripPlan *TripPlan `json:"trip_plan" binding:"required"`
}

// ModifyPlanResponse carries the (possibly unchanged) plan and a reply.
type ModifyPlanResponse struct {
	Reply    string    `json:"reply"`
	TripPlan *TripPlan `json:"trip_plan"`
}
