package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/services/notifier"
)

func TestSelectLoadsHistory(t *testing.T) {
	history := []Message{
		{ID: "m1", SenderID: "u1", ReceiverID: "u2", Body: "hi", CreatedAt: time.Now()},
		{ID: "m2", SenderID: "u2", ReceiverID: "u1", Body: "hello", CreatedAt: time.Now()},
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/messages/get-messages/u2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(history)
	}))
	defer ts.Close()

	state := NewConversationState(NewService(api.NewClient(nil, ts.URL)), notifiersvc.NewRecorder())
	err := state.Select(context.Background(), Conversation{ID: "u2", FirstName: "Jane"})
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	if got := state.Messages(); len(got) != 2 || got[0].ID != "m1" {
		t.Errorf("messages = %v, want the fetched history in order", got)
	}
	if state.Selected() == nil || state.Selected().ID != "u2" {
		t.Errorf("selected = %v, want u2", state.Selected())
	}
}

func TestSwitchingConversationDropsOldMessages(t *testing.T) {
	var empty int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&empty) == 0 {
			_ = json.NewEncoder(w).Encode([]Message{{ID: "m1"}})
			return
		}
		_ = json.NewEncoder(w).Encode([]Message{})
	}))
	defer ts.Close()

	state := NewConversationState(NewService(api.NewClient(nil, ts.URL)), notifiersvc.NewRecorder())
	if err := state.Select(context.Background(), Conversation{ID: "u2"}); err != nil {
		t.Fatal(err)
	}
	atomic.StoreInt32(&empty, 1)
	if err := state.Select(context.Background(), Conversation{ID: "u3"}); err != nil {
		t.Fatal(err)
	}
	if got := state.Messages(); len(got) != 0 {
		t.Errorf("messages = %v, want none after switching", got)
	}
}

func TestSendAppendsOnlyAfterAck(t *testing.T) {
	fail := int32(1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode([]Message{})
			return
		}
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"store down"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Message{
			ID: "m-served", SenderID: "me", ReceiverID: "u2",
			Body: r.FormValue("message"), CreatedAt: time.Now(),
		})
	}))
	defer ts.Close()

	state := NewConversationState(NewService(api.NewClient(nil, ts.URL)), notifiersvc.NewRecorder())
	if err := state.Select(context.Background(), Conversation{ID: "u2"}); err != nil {
		t.Fatal(err)
	}

	// a failed send leaves local state untouched
	if err := state.Send(context.Background(), "first try"); err == nil {
		t.Error("Send() hid the failure")
	}
	if got := state.Messages(); len(got) != 0 {
		t.Fatalf("draft appended without an ack: %v", got)
	}

	atomic.StoreInt32(&fail, 0)
	if err := state.Send(context.Background(), "second try"); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	got := state.Messages()
	if len(got) != 1 || got[0].ID != "m-served" || got[0].Body != "second try" {
		t.Errorf("messages = %v, want the server-acknowledged record", got)
	}
}

func TestSendRejectsEmptyBody(t *testing.T) {
	svc := NewService(api.NewClient(nil, "http://unused.test"))
	if _, err := svc.Send(context.Background(), "u2", ""); err == nil {
		t.Error("Send() accepted an empty message")
	}
}

func TestFromMe(t *testing.T) {
	m := Message{SenderID: "u1"}
	if !m.FromMe("u1") || m.FromMe("u2") {
		t.Error("FromMe() misattributed the sender")
	}
}
