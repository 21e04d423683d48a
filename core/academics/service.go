package academics

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/school"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Teacher scoping: the classes the teacher handles, their subjects and rosters.

func (svc *Service) Classes(ctx context.Context) ([]school.Class, error) {
	var classes []school.Class
	err := svc.client.Get(ctx, "/api/teacher/get-classes", &classes)
	return classes, err
}

func (svc *Service) ClassSubjects(ctx context.Context, classID string) ([]school.Subject, error) {
	var subjects []school.Subject
	err := svc.client.Get(ctx, "/api/teacher/get-class/"+classID+"/subjects", &subjects)
	return subjects, err
}

func (svc *Service) ClassStudents(ctx context.Context, classID string) ([]school.Student, error) {
	var students []school.Student
	err := svc.client.Get(ctx, "/api/teacher/"+classID+"/students", &students)
	return students, err
}

// Marks

// Marks retrieves the marks already recorded for the given scope.
func (svc *Service) Marks(ctx context.Context, classID string, q MarkQuery) ([]Mark, error) {
	v := make(url.Values)
	if q.SubjectID != "" {
		v.Add("subjectId", q.SubjectID)
	}
	if q.Term != "" {
		v.Add("term", q.Term)
	}
	if q.Year != 0 {
		v.Add("year", strconv.Itoa(q.Year))
	}
	if q.ExamType != "" {
		v.Add("examType", q.ExamType)
	}
	var marks []Mark
	err := svc.client.Get(ctx, "/api/teacher/"+classID+"/marks?"+v.Encode(), &marks)
	return marks, err
}

// ClassMarks is the entries listing: every mark of a class for a term and exam type.
func (svc *Service) ClassMarks(ctx context.Context, classID, term, examType string) ([]Mark, error) {
	v := make(url.Values)
	v.Add("term", term)
	v.Add("examType", examType)
	var marks []Mark
	err := svc.client.Get(ctx, "/api/teacher/get-marks/"+classID+"?"+v.Encode(), &marks)
	return marks, err
}

// SubmitMarks records one score per listed student for the sheet's scope.
// Scores are bounds-checked client-side; the uniqueness of
// (student, subject, term, year, examType) stays a backend concern.
func (svc *Service) SubmitMarks(ctx context.Context, sheet MarkSheet) error {
	if err := core.Validate.Struct(sheet); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/teacher/submit-marks", sheet, nil)
}

// UnmarkedStudents filters a roster down to the students that do not yet hold
// a mark in the given set; the mark entry page only offers those.
func UnmarkedStudents(roster []school.Student, existing []Mark) []school.Student {
	marked := make(map[string]bool, len(existing))
	for _, m := range existing {
		marked[m.StudentID] = true
	}
	unmarked := make([]school.Student, 0, len(roster))
	for _, s := range roster {
		if !marked[s.ID] {
			unmarked = append(unmarked, s)
		}
	}
	return unmarked
}

// Reports

func (svc *Service) GenerateReport(ctx context.Context, studentID, term, examType, classID string) (ReportCard, error) {
	var report ReportCard
	path := fmt.Sprintf("/api/teacher/generate-report/%s/%s/%s/%s", studentID, term, examType, classID)
	err := svc.client.Get(ctx, path, &report)
	return report, err
}

// Assignments

func (svc *Service) CreateAssignment(ctx context.Context, na NewAssignment) error {
	na.Title = core.CleanString(na.Title)
	if err := core.Validate.Struct(na); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/teacher/create-assignment", na, nil)
}

// Assignments lists the assignments visible to a parent's child.
func (svc *Service) Assignments(ctx context.Context, parentID string) ([]Assignment, error) {
	var assignments []Assignment
	err := svc.client.Get(ctx, "/api/parent/assignments/"+parentID, &assignments)
	return assignments, err
}
