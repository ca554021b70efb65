// File: services/assistant/dialogue.go
package assistant

import (
	"context"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

// dialogueState identifies the next slot the conversation needs.
type dialogueState string

const (
	stateNeedDestination dialogueState = "NEED_DESTINATION"
	stateNeedDays        dialogueState = "NEED_DAYS"
	stateNeedBudget      dialogueState = "NEED_BUDGET"
	stateReady           dialogueState = "READY"
)

const (
	askDestination = "Where would you like to go?"
	askDays        = "Sounds fun! How many days are you planning for?"
	askBudget      = "What's your budget for this trip? You can give an amount or just say budget, mid-range or luxury."
)

// classifyDialogueState decides what is still missing from the trip context.
// Destination first, then duration, then budget. Duration and budget only
// matter when an itinerary was asked for; a pure search request runs with
// whatever is known.
func classifyDialogueState(tc models.TripContext, tasks models.TaskSet) dialogueState {
	wantsItinerary := tasks.Contains(models.TaskPlanItinerary)
	switch {
	case tc.Destination == "":
		return stateNeedDestination
	case wantsItinerary && tc.Days <= 0:
		return stateNeedDays
	case wantsItinerary && tc.Budget == "":
		return stateNeedBudget
	default:
		return stateReady
	}
}

// advancePlanning drives the slot-filling loop for a planning request. It
// either asks the single next question, persisting what is known so far, or
// hands a completed context to the orchestrator and clears it.
func (s *DefaultAssistantService) advancePlanning(ctx context.Context, conversationID, message string, tasks models.TaskSet, tc models.TripContext) *models.ChatResult {
	log := utils.GetLogger()
	tasks = tasks.Normalize()
	tc.PendingTasks = tasks
	state := classifyDialogueState(tc, tasks)
	if state == stateNeedBudget && asksForBudget(message) {
		// The user is asking what the trip will cost, not withholding a
		// budget; plan with what we have instead of re-asking.
		state = stateReady
	}
	log.Debug("Dialogue state classified",
		zap.String("conversationID", conversationID), zap.String("state", string(state)))

	switch state {
	case stateNeedDestination:
		// Without a destination no other slot is worth keeping; only the
		// pending tasks survive so the answer resumes this dialogue.
		fresh := models.TripContext{PendingTasks: tasks}
		if err := s.CtxStore.Set(ctx, conversationID, fresh); err != nil {
			log.Warn("Failed to reset trip context", zap.Error(err))
		}
		return &models.ChatResult{Reply: askDestination}

	case stateNeedDays:
		if err := s.CtxStore.Set(ctx, conversationID, tc); err != nil {
			log.Warn("Failed to persist trip context", zap.Error(err))
		}
		return &models.ChatResult{Reply: askDays}

	case stateNeedBudget:
		if err := s.CtxStore.Set(ctx, conversationID, tc); err != nil {
			log.Warn("Failed to persist trip context", zap.Error(err))
		}
		return &models.ChatResult{Reply: askBudget}

	default:
		tc.PendingTasks = nil
		result := s.orchestrate(ctx, conversationID, tasks, tc)
		// The trip is planned; the next planning request starts fresh.
		if err := s.CtxStore.Clear(ctx, conversationID); err != nil {
			log.Warn("Failed to clear trip context after planning", zap.Error(err))
		}
		return result
	}
}
