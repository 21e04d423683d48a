package messaging

import (
	"context"
	"sync"

	"github.com/edumanage/portal/core"
)

// ConversationState is the messaging screen's shared state: the selected
// conversation and its message history. Messages are kept in fetch order; the
// backend returns them chronologically and the client does not re-sort.
type ConversationState struct {
	core.Store
	svc *Service

	mu       sync.RWMutex
	selected *Conversation
	messages []Message
}

func NewConversationState(svc *Service, notifier core.Notifier) *ConversationState {
	return &ConversationState{Store: core.NewStore(notifier), svc: svc}
}

// Select switches the active conversation and refreshes its history.
func (s *ConversationState) Select(ctx context.Context, conv Conversation) error {
	s.mu.Lock()
	s.selected = &conv
	s.messages = nil
	s.mu.Unlock()
	return s.Refresh(ctx)
}

func (s *ConversationState) Refresh(ctx context.Context) error {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()
	if selected == nil {
		return nil
	}
	return s.Sync(func() error {
		messages, err := s.svc.History(ctx, selected.ID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.messages = messages
		s.mu.Unlock()
		return nil
	})
}

// Send delivers a message to the selected conversation and appends the
// server-acknowledged record to local state; nothing is appended before the
// ack arrives.
func (s *ConversationState) Send(ctx context.Context, body string) error {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()
	if selected == nil {
		return nil
	}
	msg, err := s.svc.Send(ctx, selected.ID, body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return nil
}

func (s *ConversationState) Selected() *Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *ConversationState) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages
}
