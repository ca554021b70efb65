// File: services/assistant/history.go
package assistant

import (
	"context"
	"sync"

	"ttravels/models"
)

// maxHistoryTurns bounds how many turns are retained per conversation; older
// turns are discarded from the front.
const maxHistoryTurns = 20

// MemoryConversationStore is an in-process conversation history keyed by
// conversation id. Histories are capped at maxHistoryTurns.
type MemoryConversationStore struct {
	mu       sync.Mutex
	sessions map[string][]models.ConversationTurn
}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{sessions: make(map[string][]models.ConversationTurn)}
}

func (s *MemoryConversationStore) History(ctx context.Context, conversationID string) ([]models.ConversationTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.sessions[conversationID]
	out := make([]models.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemoryConversationStore) Append(ctx context.Context, conversationID string, turns ...models.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append(s.sessions[conversationID], turns...)
	if len(updated) > maxHistoryTurns {
		updated = updated[len(updated)-maxHistoryTurns:]
	}
	s.sessions[conversationID] = updated
	return nil
}
