package activity

import (
	"context"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Activities lists the school's activities (teacher portal).
func (svc *Service) Activities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	err := svc.client.Get(ctx, "/api/teacher/activities", &activities)
	return activities, err
}

func (svc *Service) Create(ctx context.Context, na NewActivity) error {
	na.Name = core.CleanString(na.Name)
	if err := core.Validate.Struct(na); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/teacher/activities", na, nil)
}

// ChildActivities lists the activities a parent's child is enrolled in.
func (svc *Service) ChildActivities(ctx context.Context, parentID string) ([]Activity, error) {
	var activities []Activity
	err := svc.client.Get(ctx, "/api/parent/activities/"+parentID, &activities)
	return activities, err
}

// Enroll enrolls the parent's child into an activity; the backend resolves
// the child from the session.
func (svc *Service) Enroll(ctx context.Context, activityID string) error {
	return svc.client.Put(ctx, "/api/parent/activity/"+activityID+"/enroll", struct{}{}, nil)
}
