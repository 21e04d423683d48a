package devserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/messaging"
)

func (s *server) registerMessagesAPI(g *echo.Group) {
	g.GET("/", s.getConversations)
	g.GET("/get-messages/:id", s.getHistory)
	g.POST("/send/:id", s.sendMessage)
}

// getConversations lists the other accounts this user can message.
func (s *server) getConversations(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	conversations := make([]messaging.Conversation, 0, len(db.accounts))
	for _, a := range db.accounts {
		if a.ID == claims.UserID {
			continue
		}
		conversations = append(conversations, messaging.Conversation{
			ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Role: a.Role,
		})
	}
	return ctx.JSON(http.StatusOK, conversations)
}

func (s *server) getHistory(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	db := s.opts.DB
	db.mu.RLock()
	defer db.mu.RUnlock()

	other := ctx.Param("id")
	history := make([]messaging.Message, 0)
	for _, m := range db.messages {
		if (m.SenderID == claims.UserID && m.ReceiverID == other) ||
			(m.SenderID == other && m.ReceiverID == claims.UserID) {
			history = append(history, m)
		}
	}
	return ctx.JSON(http.StatusOK, history)
}

func (s *server) sendMessage(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	body := ctx.FormValue("message")
	if body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	db := s.opts.DB
	db.mu.Lock()
	defer db.mu.Unlock()
	msg := messaging.Message{
		ID:         db.nextID("msg"),
		SenderID:   claims.UserID,
		ReceiverID: ctx.Param("id"),
		Body:       body,
		CreatedAt:  time.Now(),
	}
	db.messages = append(db.messages, msg)
	return ctx.JSON(http.StatusCreated, msg)
}
