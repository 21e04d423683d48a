package finance

import (
	"context"
	"sync"

	"github.com/edumanage/portal/core"
)

// InvoiceStore caches the statements of one student (the parent portal's
// invoice listing). Refreshing with a different student id replaces the
// collection wholesale, same as any other refresh.
type InvoiceStore struct {
	core.Store
	svc *Service

	mu       sync.RWMutex
	invoices []Invoice
}

func NewInvoiceStore(svc *Service, notifier core.Notifier) *InvoiceStore {
	return &InvoiceStore{Store: core.NewStore(notifier), svc: svc}
}

func (s *InvoiceStore) Refresh(ctx context.Context, studentID string) error {
	return s.Sync(func() error {
		invoices, err := s.svc.Statements(ctx, studentID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.invoices = invoices
		s.mu.Unlock()
		return nil
	})
}

func (s *InvoiceStore) Invoices() []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoices
}
