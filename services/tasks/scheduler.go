package tasks

import (
	"fmt"
	"time"

	"ttravels/config"
	"ttravels/models"
	"ttravels/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var reminderClient *asynq.Client

// InitReminderClient sets up the asynq client used to enqueue reminders.
func InitReminderClient() {
	reminderClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// ScheduleTripReminder enqueues a reminder push to fire at the given time
// and returns the reminder id.
func ScheduleTripReminder(payload models.ReminderPayload, fireAt time.Time) (string, error) {
	if reminderClient == nil {
		return "", fmt.Errorf("reminder client not initialized")
	}
	if payload.ReminderID == "" {
		payload.ReminderID = uuid.New().String()
	}
	payload.FireDate = fireAt.Format(time.RFC3339)

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return "", fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := reminderClient.Enqueue(task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Info("Trip reminder scheduled",
		zap.String("reminderId", payload.ReminderID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return payload.ReminderID, nil
}
