package timetable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

func TestCreateRejectsInvalidRange(t *testing.T) {
	svc := NewService(api.NewClient(nil, "http://unused.test"))

	tests := []struct {
		name     string
		from, to string
	}{
		{name: "missing from", to: "09:00"},
		{name: "missing to", from: "08:00"},
		{name: "from equals to", from: "08:00", to: "08:00"},
		{name: "from after to", from: "10:00", to: "09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), NewEntry{
				Term: "1", Week: "1", Day: "Monday", ActivityType: ActivityBreak,
				TimeSlot: [2]string{tt.from, tt.to},
			})
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Create() error = %v, want *core.ValidationError", err)
			}
			if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "timeSlot" {
				t.Errorf("fields = %v, want one timeSlot error", vErr.Fields)
			}
		})
	}
}

func TestCreateBlanksLessonFieldsOnNonLessons(t *testing.T) {
	var got NewEntry
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	svc := NewService(api.NewClient(nil, ts.URL))
	err := svc.Create(context.Background(), NewEntry{
		Term: "1", Week: "2", Day: "Monday", ActivityType: ActivityLunch,
		TimeSlot: [2]string{"12:00", "13:00"},
		// a form may carry stale lesson fields; they must not go out
		TeacherID: "t1", ClassID: "c1", Subject: "Maths", Room: "R1",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got.TeacherID != "" || got.ClassID != "" || got.Subject != "" || got.Room != "" {
		t.Errorf("lesson fields sent on a %s entry: %+v", ActivityLunch, got)
	}
}

func TestCreateSendsClassUnderWriteName(t *testing.T) {
	var body map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	svc := NewService(api.NewClient(nil, ts.URL))
	err := svc.Create(context.Background(), NewEntry{
		Term: "1", Week: "1", Day: "Monday", ActivityType: ActivityLesson,
		TimeSlot: [2]string{"08:00", "09:00"},
		TeacherID: "t1", ClassID: "c1", Subject: "Maths", Room: "R1",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	// the backend reads "classId" but expects "classes" on writes
	if _, ok := body["classes"]; !ok {
		t.Errorf("payload %v missing the classes key", body)
	}
	if _, ok := body["classId"]; ok {
		t.Errorf("payload %v carries the read-side classId key", body)
	}
}
