package pushsvc

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/messaging"
)

const eventPaymentReceived = "paymentReceived"

// Feed is the notification list the push channel prepends to. It is
// independent of the REST-fetched collections, so a fetch and a push never
// fight over ordering.
type Feed struct {
	mu    sync.RWMutex
	items []messaging.PaymentNotification
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Prepend(n messaging.PaymentNotification) {
	f.mu.Lock()
	f.items = append([]messaging.PaymentNotification{n}, f.items...)
	f.mu.Unlock()
}

func (f *Feed) Items() []messaging.PaymentNotification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	items := make([]messaging.PaymentNotification, len(f.items))
	copy(items, f.items)
	return items
}

// Subscriber maintains the one long-lived push subscription. It is
// established once and torn down by cancelling the context; there is no
// automatic reconnect, matching the rest of the client's no-retry policy.
type Subscriber struct {
	url    string
	tokens api.TokenSource
	feed   *Feed
	logger core.Logger
}

func NewSubscriber(feed *Feed, tokens api.TokenSource, logger core.Logger, url ...string) *Subscriber {
	u := core.Conf.GetString("pushURL")
	if len(url) > 0 && url[0] != "" {
		u = url[0]
	}
	return &Subscriber{url: u, tokens: tokens, feed: feed, logger: logger}
}

// Listen dials the channel and prepends every paymentReceived event to the
// feed until ctx is cancelled.
func (s *Subscriber) Listen(ctx context.Context) error {
	header := make(http.Header)
	if s.tokens != nil {
		if token := s.tokens.Token(); token != "" {
			header.Set("x-access-token", token)
		}
	}
	conn, res, err := websocket.DefaultDialer.DialContext(ctx, s.url, header)
	if err != nil {
		return errors.Wrap(err, "dialing push channel")
	}
	if res != nil && res.Body != nil {
		res.Body.Close()
	}
	defer conn.Close()

	// unblock ReadJSON when ctx is cancelled; done releases the goroutine
	// when the read loop exits first
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var n messaging.PaymentNotification
		if err := conn.ReadJSON(&n); err != nil {
			if ctx.Err() != nil {
				return nil // torn down
			}
			return errors.Wrap(err, "reading push event")
		}
		if n.Event != eventPaymentReceived {
			if s.logger != nil {
				s.logger.Debug("push: ignoring event", n.Event)
			}
			continue
		}
		s.feed.Prepend(n)
	}
}
