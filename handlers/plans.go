// File: handlers/plans.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"ttravels/models"
	"ttravels/services/tasks"
	"ttravels/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SavePlanHandler persists a trip plan for a user.
func SavePlanHandler(c *gin.Context) {
	var req struct {
		UserID string           `json:"user_id" binding:"required"`
		Name   string           `json:"name"`
		Plan   *models.TripPlan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id and plan are required", err.Error())
		return
	}

	id, err := planRepo.Create(c.Request.Context(), models.SavedTripPlan{
		UserID: req.UserID,
		Name:   req.Name,
		Plan:   *req.Plan,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to save trip plan", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save trip plan", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdatePlanHandler replaces a saved plan in place.
func UpdatePlanHandler(c *gin.Context) {
	var req struct {
		UserID string           `json:"user_id" binding:"required"`
		Name   string           `json:"name"`
		Plan   *models.TripPlan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id and plan are required", err.Error())
		return
	}

	err := planRepo.Update(c.Request.Context(), models.SavedTripPlan{
		ID:     c.Param("id"),
		UserID: req.UserID,
		Name:   req.Name,
		Plan:   *req.Plan,
	})
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "plan not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// ListPlansHandler returns every saved plan for a user.
func ListPlansHandler(c *gin.Context) {
	userID := c.Param("userId")
	plans, err := planRepo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list trip plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list trip plans", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanHandler returns one saved plan.
func GetPlanHandler(c *gin.Context) {
	plan, err := planRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "plan not found", "")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlanHandler removes one saved plan.
func DeletePlanHandler(c *gin.Context) {
	if err := planRepo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "plan not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateBookingHandler records a booking reference.
func CreateBookingHandler(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid booking payload",
			"details": err.Error(),
		})
		return
	}
	if booking.UserID == "" || booking.ServiceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and service_type are required"})
		return
	}

	id, err := bookingRepo.Create(c.Request.Context(), booking)
	if err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	if booking.DeviceToken != "" && notifSvc != nil {
		body := "Your booking is confirmed."
		if booking.Destination != "" {
			body = fmt.Sprintf("Your %s booking for %s is confirmed.", booking.ServiceType, booking.Destination)
		}
		if err := notifSvc.SendTripPushNotification(c.Request.Context(), booking.DeviceToken,
			"Booking confirmed ✅", body, map[string]string{"bookingId": id}); err != nil {
			utils.GetLogger().Warn("Booking confirmation push failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListBookingsHandler returns every booking for a user.
func ListBookingsHandler(c *gin.Context) {
	bookings, err := bookingRepo.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ScheduleReminderHandler queues a trip reminder push.
func ScheduleReminderHandler(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		DeviceToken string `json:"device_token" binding:"required"`
		Destination string `json:"destination"`
		FireAt      string `json:"fire_at" binding:"required"`
		Title       string `json:"title"`
		Body        string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "user_id, device_token and fire_at are required",
			"details": err.Error(),
		})
		return
	}

	fireAt, err := time.Parse(time.RFC3339, req.FireAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fire_at must be RFC3339"})
		return
	}
	if fireAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fire_at must be in the future"})
		return
	}

	title := req.Title
	if title == "" {
		title = "Trip reminder"
	}
	body := req.Body
	if body == "" && req.Destination != "" {
		body = "Your trip to " + req.Destination + " is coming up!"
	}

	id, err := tasks.ScheduleTripReminder(models.ReminderPayload{
		UserID:      req.UserID,
		DeviceToken: req.DeviceToken,
		Destination: req.Destination,
		Title:       title,
		Body:        body,
	}, fireAt)
	if err != nil {
		utils.GetLogger().Error("Failed to schedule reminder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule reminder"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reminder_id": id})
}
