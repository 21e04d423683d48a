package timetable

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

var errInvalidRange = errors.New(`invalid time range: "from" must be earlier than "to"`)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (svc *Service) Entries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := svc.client.Get(ctx, "/api/teacher/timetable", &entries)
	return entries, err
}

// Create validates and submits a new entry. Lesson-only fields are blanked on
// non-lesson entries rather than rejected, matching the entry form.
func (svc *Service) Create(ctx context.Context, ne NewEntry) error {
	if err := core.Validate.Struct(ne); err != nil {
		return core.TranslateValidationErrors(err)
	}
	from, to := ne.TimeSlot[0], ne.TimeSlot[1]
	if from == "" || to == "" || from >= to {
		return core.NewValidationError(errInvalidRange,
			core.FieldError{Field: "timeSlot", Error: errInvalidRange.Error()})
	}
	if ne.ActivityType != ActivityLesson {
		ne.TeacherID = ""
		ne.ClassID = ""
		ne.Subject = ""
		ne.Room = ""
	}
	return svc.client.Post(ctx, "/api/teacher/create", ne, nil)
}
