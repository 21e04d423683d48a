package school

import (
	"context"
	"strconv"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

// Service wraps the admin registry endpoints. Mutations do not touch the
// stores; callers refresh the relevant store after a successful call.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Students

func (svc *Service) Students(ctx context.Context) ([]ClassGroup, error) {
	var groups []ClassGroup
	err := svc.client.Get(ctx, "/api/admin/get-students", &groups)
	return groups, err
}

func (svc *Service) RegisterStudent(ctx context.Context, ns NewStudent) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.MiddleName = core.CleanString(ns.MiddleName)
	ns.LastName = core.CleanString(ns.LastName)
	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.PostForm(ctx, "/api/admin/register-student", map[string]string{
		"firstName":    ns.FirstName,
		"middleName":   ns.MiddleName,
		"lastName":     ns.LastName,
		"currentClass": ns.CurrentClass,
		"gender":       ns.Gender,
		"age":          strconv.Itoa(ns.Age),
		"role":         "student",
	}, nil)
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/delete-student/"+id)
}

// Teachers

func (svc *Service) Teachers(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	err := svc.client.Get(ctx, "/api/admin/get-teachers", &teachers)
	return teachers, err
}

func (svc *Service) RegisterTeacher(ctx context.Context, nt NewTeacher) error {
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	if err := core.Validate.Struct(nt); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.PostForm(ctx, "/api/admin/register-teacher", map[string]string{
		"firstName": nt.FirstName,
		"lastName":  nt.LastName,
		"email":     nt.Email,
		"phone":     nt.Phone,
		"password":  nt.Password,
		"position":  nt.Position,
		"role":      "teacher",
	}, nil)
}

func (svc *Service) DeleteTeacher(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/delete-teacher/"+id)
}

// Parents

func (svc *Service) Parents(ctx context.Context) ([]Parent, error) {
	var parents []Parent
	err := svc.client.Get(ctx, "/api/admin/get-parents", &parents)
	return parents, err
}

func (svc *Service) RegisterParent(ctx context.Context, np NewParent) error {
	np.Email = core.CleanString(np.Email, true /* lower */)
	np.Role = "parent"
	if err := core.Validate.Struct(np); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/register-parent", np, nil)
}

func (svc *Service) DeleteParent(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/delete-parent/"+id)
}

// ParentByID is the parent-portal lookup of the logged in parent's own record.
func (svc *Service) ParentByID(ctx context.Context, id string) (Parent, error) {
	var parent Parent
	err := svc.client.Get(ctx, "/api/parent/parent/"+id, &parent)
	return parent, err
}

// Classes

func (svc *Service) Classes(ctx context.Context) ([]Class, error) {
	var classes []Class
	err := svc.client.Get(ctx, "/api/admin/get-classes", &classes)
	return classes, err
}

func (svc *Service) AddClass(ctx context.Context, nc NewClass) error {
	nc.ClassName = core.CleanString(nc.ClassName)
	if err := core.Validate.Struct(nc); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/add-class", nc, nil)
}

func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/delete-class/"+id)
}

// Subjects

func (svc *Service) Subjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	err := svc.client.Get(ctx, "/api/admin/get-subjects", &subjects)
	return subjects, err
}

func (svc *Service) AddSubject(ctx context.Context, ns NewSubject) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Code = core.CleanString(ns.Code, true /* lower */)
	if err := core.Validate.Struct(ns); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/add-subject", ns, nil)
}

func (svc *Service) DeleteSubject(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/delete-subject/"+id)
}
