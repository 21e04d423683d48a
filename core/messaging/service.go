package messaging

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/api"
)

var errEmptyMessage = errors.New("message is empty")

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (svc *Service) Conversations(ctx context.Context) ([]Conversation, error) {
	var conversations []Conversation
	err := svc.client.Get(ctx, "/api/messages/", &conversations)
	return conversations, err
}

func (svc *Service) History(ctx context.Context, conversationID string) ([]Message, error) {
	var messages []Message
	err := svc.client.Get(ctx, "/api/messages/get-messages/"+conversationID, &messages)
	return messages, err
}

// Send posts a message to the receiver and returns the created record as the
// server acknowledged it; callers append that, never the local draft.
func (svc *Service) Send(ctx context.Context, receiverID, body string) (Message, error) {
	if body == "" {
		return Message{}, errEmptyMessage
	}
	var msg Message
	err := svc.client.PostForm(ctx, "/api/messages/send/"+receiverID, map[string]string{
		"message": body,
	}, &msg)
	return msg, err
}
