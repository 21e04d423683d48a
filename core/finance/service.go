package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// GenerateInvoice issues one invoice for one student.
func (svc *Service) GenerateInvoice(ctx context.Context, inv NewInvoice) error {
	if err := core.Validate.Struct(inv); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/generate-invoice", inv, nil)
}

// GenerateClassInvoice issues one invoice per member of the class; the fan-out
// happens server-side.
func (svc *Service) GenerateClassInvoice(ctx context.Context, inv NewInvoice) error {
	if err := core.Validate.Struct(inv); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/generate-class-invoice", inv, nil)
}

func (svc *Service) Invoice(ctx context.Context, id string) (Invoice, error) {
	var inv Invoice
	err := svc.client.Get(ctx, "/api/admin/invoices/"+id, &inv)
	return inv, err
}

func (svc *Service) DeleteInvoice(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/invoices/"+id)
}

// RecordPayment registers a payment against a student; the backend recomputes
// the owning invoice's outstanding balance. A missing reference gets a
// client-generated one so the record is always traceable.
func (svc *Service) RecordPayment(ctx context.Context, p NewPayment) error {
	if p.Reference == "" {
		p.Reference = uuid.New().String()
	}
	if err := core.Validate.Struct(p); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.client.Post(ctx, "/api/admin/payments", p, nil)
}

func (svc *Service) Payment(ctx context.Context, id string) (Payment, error) {
	var p Payment
	err := svc.client.Get(ctx, "/api/admin/payments/"+id, &p)
	return p, err
}

func (svc *Service) DeletePayment(ctx context.Context, id string) error {
	return svc.client.Delete(ctx, "/api/admin/payments/"+id)
}

// Transactions lists the payments recorded against one student.
func (svc *Service) Transactions(ctx context.Context, studentID string) ([]Payment, error) {
	var payments []Payment
	err := svc.client.Get(ctx, "/api/admin/transactions/"+studentID, &payments)
	return payments, err
}

// CustomerBalances is the admin overview of outstanding balances per student.
func (svc *Service) CustomerBalances(ctx context.Context) ([]CustomerBalance, error) {
	var balances []CustomerBalance
	err := svc.client.Get(ctx, "/api/admin/customer-balances", &balances)
	return balances, err
}

// Statements lists a student's invoices for the parent portal.
func (svc *Service) Statements(ctx context.Context, studentID string) ([]Invoice, error) {
	var invoices []Invoice
	err := svc.client.Get(ctx, "/api/parent/"+studentID, &invoices)
	return invoices, err
}

// Balance is the parent portal fees balance lookup.
func (svc *Service) Balance(ctx context.Context, parentID string) (float64, error) {
	var res struct {
		Balance float64 `json:"balance"`
	}
	err := svc.client.Get(ctx, "/api/parent/balance/"+parentID, &res)
	return res.Balance, err
}
