// File: handlers/chat.go
package handlers

import (
	"net/http"
	"strings"

	"ttravels/models"
	"ttravels/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler serves one conversational turn.
func ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "message is required",
			"details": err.Error(),
		})
		return
	}

	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	result := assistantSvc.Respond(c.Request.Context(), req.Message, conversationID)

	reply := result.Reply
	if req.Language != "" && !strings.EqualFold(req.Language, "en") && translateSvc != nil {
		translated, err := translateSvc.Translate(c.Request.Context(), reply, req.Language)
		if err != nil {
			utils.GetLogger().Warn("Reply translation failed",
				zap.String("language", req.Language), zap.Error(err))
		} else {
			reply = translated
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":           reply,
		"conversation_id": conversationID,
		"trip_plan":       result.TripPlan,
		"hotel_results":   result.HotelResults,
		"timestamp":       result.Timestamp,
	})
}

// ModifyPlanHandler applies a natural-language change to an existing plan.
func ModifyPlanHandler(c *gin.Context) {
	var req models.ModifyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "message and trip_plan are required",
			"details": err.Error(),
		})
		return
	}

	plan, reply := assistantSvc.ModifyPlan(c.Request.Context(), req.Message, req.TripPlan)
	c.JSON(http.StatusOK, models.ModifyPlanResponse{
		Reply:    reply,
		TripPlan: plan,
	})
}
