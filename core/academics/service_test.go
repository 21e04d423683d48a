package academics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core/school"
)

func TestUnmarkedStudents(t *testing.T) {
	roster := []school.Student{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}

	tests := []struct {
		name     string
		existing []Mark
		wantIDs  []string
	}{
		{name: "no marks yet", wantIDs: []string{"s1", "s2", "s3"}},
		{name: "some marked", existing: []Mark{{StudentID: "s2"}}, wantIDs: []string{"s1", "s3"}},
		{
			name:     "all marked",
			existing: []Mark{{StudentID: "s1"}, {StudentID: "s2"}, {StudentID: "s3"}},
			wantIDs:  []string{},
		},
		{
			name:     "marks for students outside the roster are ignored",
			existing: []Mark{{StudentID: "s9"}},
			wantIDs:  []string{"s1", "s2", "s3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnmarkedStudents(roster, tt.existing)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d students, want %d", len(got), len(tt.wantIDs))
			}
			for i, st := range got {
				if st.ID != tt.wantIDs[i] {
					t.Errorf("student[%d] = %s, want %s", i, st.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestMarksQueryEncoding(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Encode()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Mark{})
	}))
	defer ts.Close()

	svc := NewService(api.NewClient(nil, ts.URL))
	_, err := svc.Marks(context.Background(), "c1", MarkQuery{
		SubjectID: "sub1", Term: "1", Year: 2026, ExamType: ExamMidterm,
	})
	if err != nil {
		t.Fatalf("Marks() failed: %v", err)
	}
	if gotPath != "/api/teacher/c1/marks" {
		t.Errorf("path = %s", gotPath)
	}
	want := "examType=Midterm&subjectId=sub1&term=1&year=2026"
	if gotQuery != want {
		t.Errorf("query = %s, want %s", gotQuery, want)
	}
}
