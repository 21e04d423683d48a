package school

import (
	"context"
	"sync"

	"github.com/edumanage/portal/core"
)

// Per-entity stores: each caches the last successful listing and exposes a
// loading flag. Refresh replaces the whole collection; a failed refresh keeps
// the previous one (reported via the notifier inside core.Store.Sync).

type StudentStore struct {
	core.Store
	svc *Service

	mu       sync.RWMutex
	groups   []ClassGroup
	students []Student
}

func NewStudentStore(svc *Service, notifier core.Notifier) *StudentStore {
	return &StudentStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *StudentStore) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		groups, err := s.svc.Students(ctx)
		if err != nil {
			return err
		}
		// flatten the per-class grouping into one roster
		flat := make([]Student, 0, len(groups))
		for _, g := range groups {
			flat = append(flat, g.Students...)
		}
		s.mu.Lock()
		s.groups = groups
		s.students = flat
		s.mu.Unlock()
		return nil
	})
}

func (s *StudentStore) Groups() []ClassGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups
}

func (s *StudentStore) Students() []Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students
}

type TeacherStore struct {
	core.Store
	svc *Service

	mu       sync.RWMutex
	teachers []Teacher
}

func NewTeacherStore(svc *Service, notifier core.Notifier) *TeacherStore {
	return &TeacherStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *TeacherStore) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		teachers, err := s.svc.Teachers(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.teachers = teachers
		s.mu.Unlock()
		return nil
	})
}

func (s *TeacherStore) Teachers() []Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teachers
}

type ParentStore struct {
	core.Store
	svc *Service

	mu      sync.RWMutex
	parents []Parent
}

func NewParentStore(svc *Service, notifier core.Notifier) *ParentStore {
	return &ParentStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *ParentStore) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		parents, err := s.svc.Parents(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.parents = parents
		s.mu.Unlock()
		return nil
	})
}

func (s *ParentStore) Parents() []Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parents
}

// SingleParentStore holds the parent-portal's own record: a singleton, not a
// collection, but the same refresh discipline applies.
type SingleParentStore struct {
	core.Store
	svc *Service

	mu      sync.RWMutex
	parent  *Parent
	childID string
}

func NewSingleParentStore(svc *Service, notifier core.Notifier) *SingleParentStore {
	return &SingleParentStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *SingleParentStore) Refresh(ctx context.Context, parentID string) error {
	return s.Sync(func() error {
		parent, err := s.svc.ParentByID(ctx, parentID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.parent = &parent
		s.childID = parent.ChildID
		s.mu.Unlock()
		return nil
	})
}

func (s *SingleParentStore) Parent() *Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parent
}

func (s *SingleParentStore) ChildID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childID
}

type ClassStore struct {
	core.Store
	svc *Service

	mu      sync.RWMutex
	classes []Class
}

func NewClassStore(svc *Service, notifier core.Notifier) *ClassStore {
	return &ClassStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *ClassStore) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		classes, err := s.svc.Classes(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.classes = classes
		s.mu.Unlock()
		return nil
	})
}

func (s *ClassStore) Classes() []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classes
}

type SubjectStore struct {
	core.Store
	svc *Service

	mu       sync.RWMutex
	subjects []Subject
}

func NewSubjectStore(svc *Service, notifier core.Notifier) *SubjectStore {
	return &SubjectStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *SubjectStore) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		subjects, err := s.svc.Subjects(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.subjects = subjects
		s.mu.Unlock()
		return nil
	})
}

func (s *SubjectStore) Subjects() []Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subjects
}
