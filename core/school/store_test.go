package school

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/services/notifier"
)

// respondWith serves whatever the current value holds: a status code plus a
// JSON body, so a test can flip the backend between success and failure.
type respondWith struct {
	code atomic.Value
	body atomic.Value
}

func (rw *respondWith) set(code int, body interface{}) {
	rw.code.Store(code)
	// box the body so the atomic.Value always holds the same concrete type
	rw.body.Store(&body)
}

func (rw *respondWith) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rw.code.Load().(int))
	_ = json.NewEncoder(w).Encode(*rw.body.Load().(*interface{}))
}

func TestStudentStoreRefreshReplacesCollection(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	svc := NewService(api.NewClient(nil, ts.URL))
	store := NewStudentStore(svc, notifiersvc.NewRecorder())

	rw.set(http.StatusCreated, []ClassGroup{
		{ClassName: "Class 1", Students: []Student{{ID: "s1", FirstName: "Brian"}, {ID: "s2", FirstName: "Mary"}}},
		{ClassName: "Class 2", Students: []Student{{ID: "s3", FirstName: "Kevin"}}},
	})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := store.Students(); len(got) != 3 {
		t.Fatalf("got %d students, want 3", len(got))
	}

	// the next refresh replaces, it does not merge
	rw.set(http.StatusCreated, []ClassGroup{
		{ClassName: "Class 1", Students: []Student{{ID: "s1", FirstName: "Brian"}}},
	})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := store.Students(); len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("got %v, want the single replaced student", got)
	}
	if store.Loading() {
		t.Error("loading flag still raised after refresh")
	}
}

func TestStudentStoreFailedRefreshKeepsCache(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	recorder := notifiersvc.NewRecorder()
	svc := NewService(api.NewClient(nil, ts.URL))
	store := NewStudentStore(svc, recorder)

	rw.set(http.StatusCreated, []ClassGroup{
		{ClassName: "Class 1", Students: []Student{{ID: "s1"}}},
	})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	rw.set(http.StatusInternalServerError, map[string]string{"message": "boom"})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() after failure = %v, want nil (reported, not returned)", err)
	}
	if got := store.Students(); len(got) != 1 {
		t.Errorf("cache lost on failed refresh: %v", got)
	}
	if len(recorder.Errors) != 1 || recorder.Errors[0] != "boom" {
		t.Errorf("notifications = %v, want the server message once", recorder.Errors)
	}
	if store.Loading() {
		t.Error("loading flag still raised after failed refresh")
	}
}

func TestTeacherStoreRefreshReplacesCollection(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	svc := NewService(api.NewClient(nil, ts.URL))
	store := NewTeacherStore(svc, notifiersvc.NewRecorder())

	rw.set(http.StatusOK, []Teacher{{ID: "t1"}, {ID: "t2"}})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	rw.set(http.StatusOK, []Teacher{{ID: "t2"}})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := store.Teachers(); len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("got %v, want the single replaced teacher", got)
	}
}

func TestParentStoreFailedRefreshKeepsCache(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	recorder := notifiersvc.NewRecorder()
	store := NewParentStore(NewService(api.NewClient(nil, ts.URL)), recorder)

	rw.set(http.StatusOK, []Parent{{ID: "p1", ChildID: "s1"}})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	rw.set(http.StatusInternalServerError, map[string]string{"message": "boom"})
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() after failure = %v, want nil (reported, not returned)", err)
	}
	if got := store.Parents(); len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("cache lost on failed refresh: %v", got)
	}
	if len(recorder.Errors) != 1 {
		t.Errorf("notifications = %v, want the failure once", recorder.Errors)
	}
}

func TestSingleParentStoreServesLastKnownRecord(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	store := NewSingleParentStore(NewService(api.NewClient(nil, ts.URL)), notifiersvc.NewRecorder())
	if store.Parent() != nil {
		t.Fatal("record present before any refresh")
	}

	rw.set(http.StatusOK, Parent{ID: "p1", ChildID: "s1"})
	if err := store.Refresh(context.Background(), "p1"); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if store.ChildID() != "s1" {
		t.Errorf("ChildID() = %q, want s1", store.ChildID())
	}

	rw.set(http.StatusInternalServerError, map[string]string{"message": "boom"})
	if err := store.Refresh(context.Background(), "p1"); err != nil {
		t.Fatalf("Refresh() after failure = %v, want nil (reported, not returned)", err)
	}
	if p := store.Parent(); p == nil || p.ID != "p1" {
		t.Errorf("record lost on failed refresh: %v", p)
	}
}

func TestClassAndSubjectStoresRefresh(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()
	svc := NewService(api.NewClient(nil, ts.URL))

	classes := NewClassStore(svc, notifiersvc.NewRecorder())
	rw.set(http.StatusCreated, []Class{{ID: "c1", ClassName: "Class 1"}})
	if err := classes.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := classes.Classes(); len(got) != 1 || got[0].ClassName != "Class 1" {
		t.Errorf("classes = %v, want the fetched listing", got)
	}

	subjects := NewSubjectStore(svc, notifiersvc.NewRecorder())
	rw.set(http.StatusOK, []Subject{{ID: "sub1", Name: "Mathematics"}, {ID: "sub2", Name: "English"}})
	if err := subjects.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if got := subjects.Subjects(); len(got) != 2 {
		t.Errorf("subjects = %v, want both fetched records", got)
	}
}

func TestStudentStoreSessionExpiryPropagates(t *testing.T) {
	rw := &respondWith{}
	ts := httptest.NewServer(rw)
	defer ts.Close()

	recorder := notifiersvc.NewRecorder()
	svc := NewService(api.NewClient(nil, ts.URL))
	store := NewStudentStore(svc, recorder)

	rw.set(http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
	err := store.Refresh(context.Background())
	if !core.IsSessionExpired(err) {
		t.Fatalf("Refresh() error = %v, want ErrSessionExpired", err)
	}
	// expiry is for the application root, not the notifier
	if len(recorder.Errors) != 0 {
		t.Errorf("notifications = %v, want none", recorder.Errors)
	}
}
