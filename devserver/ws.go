package devserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/messaging"
)

// hub fans payment events out to every connected notification socket.
type hub struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	conns    map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{
		upgrader: websocket.Upgrader{
			// the stub trusts its local clients
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *hub) serve(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "upgrading notification socket")
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// drain until the peer goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	return nil
}

func (h *hub) broadcastPayment(p finance.Payment) {
	note := messaging.PaymentNotification{
		Event:     "paymentReceived",
		StudentID: p.StudentID,
		Amount:    p.Amount,
		Reference: p.Reference,
		At:        time.Now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(note); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
