package activity

import (
	"context"
	"sync"

	"github.com/edumanage/portal/core"
)

type Store struct {
	core.Store
	svc *Service

	mu         sync.RWMutex
	activities []Activity
}

func NewActivityStore(svc *Service, notifier core.Notifier) *Store {
	return &Store{Store: core.NewStore(notifier), svc: svc}
}

func (s *Store) Refresh(ctx context.Context) error {
	return s.Sync(func() error {
		activities, err := s.svc.Activities(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.activities = activities
		s.mu.Unlock()
		return nil
	})
}

func (s *Store) Activities() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activities
}
