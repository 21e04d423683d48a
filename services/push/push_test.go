package pushsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core/messaging"
)

func TestFeedPrependsNewestFirst(t *testing.T) {
	feed := NewFeed()
	feed.Prepend(messaging.PaymentNotification{Reference: "first"})
	feed.Prepend(messaging.PaymentNotification{Reference: "second"})

	items := feed.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Reference != "second" || items[1].Reference != "first" {
		t.Errorf("items = %v, want newest first", items)
	}

	// Items hands out a copy
	items[0].Reference = "mutated"
	if feed.Items()[0].Reference != "second" {
		t.Error("feed content mutated through the returned slice")
	}
}

func TestSubscriberPrependsPaymentEvents(t *testing.T) {
	var gotToken string
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-access-token")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		// an unrelated event must be skipped, the payment kept
		_ = conn.WriteJSON(map[string]interface{}{"event": "studentEnrolled"})
		_ = conn.WriteJSON(messaging.PaymentNotification{
			Event: "paymentReceived", StudentID: "s1", Amount: 150, Reference: "ref-9",
		})
		// hold the connection open until the client tears down
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer ts.Close()

	feed := NewFeed()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	sub := NewSubscriber(feed, api.StaticToken("tok-ws"), nil, url)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sub.Listen(ctx) }()

	deadline := time.After(2 * time.Second)
	for len(feed.Items()) == 0 {
		select {
		case <-deadline:
			t.Fatal("no payment event arrived")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Listen() returned %v after teardown", err)
	}

	if gotToken != "tok-ws" {
		t.Errorf("dial token = %q, want tok-ws", gotToken)
	}
	items := feed.Items()
	if len(items) != 1 || items[0].Reference != "ref-9" {
		t.Errorf("feed = %v, want only the payment event", items)
	}
}

func TestSubscriberReleasesWatcherWhenServerCloses(t *testing.T) {
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		conn.Close() // server drops the channel before any cancel
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	sub := NewSubscriber(NewFeed(), nil, nil, url)

	before := runtime.NumGoroutine()
	ctx, cancel := context.WithCancel(context.Background())
	if err := sub.Listen(ctx); err == nil {
		t.Error("Listen() hid the dropped connection")
	}

	// the cancel watcher must exit with Listen, not linger until cancel
	deadline := time.After(2 * time.Second)
	for runtime.NumGoroutine() > before {
		select {
		case <-deadline:
			t.Fatalf("%d goroutines still running, want %d", runtime.NumGoroutine(), before)
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
}

func TestSubscriberReturnsErrorWhenDialFails(t *testing.T) {
	sub := NewSubscriber(NewFeed(), nil, nil, "ws://127.0.0.1:1/nope")
	if err := sub.Listen(context.Background()); err == nil {
		t.Error("Listen() succeeded against a dead endpoint")
	}
}
