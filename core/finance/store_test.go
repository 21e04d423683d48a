package finance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/services/notifier"
)

func TestInvoiceStoreRefreshReplacesStatements(t *testing.T) {
	var student atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		student.Store(r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		switch r.URL.Path {
		case "/api/parent/s1":
			_ = json.NewEncoder(w).Encode([]Invoice{{ID: "inv1", StudentID: "s1"}, {ID: "inv2", StudentID: "s1"}})
		default:
			_ = json.NewEncoder(w).Encode([]Invoice{{ID: "inv9", StudentID: "s2"}})
		}
	}))
	defer ts.Close()

	store := NewInvoiceStore(NewService(api.NewClient(nil, ts.URL)), notifiersvc.NewRecorder())
	if err := store.Refresh(context.Background(), "s1"); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := store.Invoices(); len(got) != 2 {
		t.Fatalf("got %d invoices, want 2", len(got))
	}

	// refreshing for a different student replaces wholesale
	if err := store.Refresh(context.Background(), "s2"); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := store.Invoices(); len(got) != 1 || got[0].ID != "inv9" {
		t.Errorf("got %v, want only the new student's statements", got)
	}
}

func TestInvoiceStoreFailedRefreshKeepsStatements(t *testing.T) {
	var fail int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]Invoice{{ID: "inv1"}})
	}))
	defer ts.Close()

	recorder := notifiersvc.NewRecorder()
	store := NewInvoiceStore(NewService(api.NewClient(nil, ts.URL)), recorder)
	if err := store.Refresh(context.Background(), "s1"); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	atomic.StoreInt32(&fail, 1)
	if err := store.Refresh(context.Background(), "s1"); err != nil {
		t.Fatalf("Refresh() after failure = %v, want nil (reported, not returned)", err)
	}
	if got := store.Invoices(); len(got) != 1 || got[0].ID != "inv1" {
		t.Errorf("statements lost on failed refresh: %v", got)
	}
	if len(recorder.Errors) != 1 || recorder.Errors[0] != "boom" {
		t.Errorf("notifications = %v, want the server message once", recorder.Errors)
	}
}
