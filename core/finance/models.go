package finance

import "time"

// Invoice statuses are server-owned; the client only displays them.
const (
	StatusIssued = "issued"
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// Payment methods accepted by the backend.
const (
	MethodCash         = "Cash"
	MethodBankTransfer = "Bank Transfer"
	MethodCredit       = "Credit"
	MethodMobileMoney  = "Mobile Money"
)

var Methods = []string{MethodCash, MethodBankTransfer, MethodCredit, MethodMobileMoney}

type (
	InvoiceItem struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	}

	Payment struct {
		ID        string    `json:"_id"`
		StudentID string    `json:"studentId"`
		Amount    float64   `json:"amount"`
		Method    string    `json:"paymentMethod"`
		Reference string    `json:"reference"`
		Date      time.Time `json:"paymentDate"`
	}

	// Invoice mirrors the backend document. OutstandingBalance is computed
	// server-side as payments are recorded; the client never recomputes it.
	Invoice struct {
		ID                 string        `json:"_id"`
		StudentID          string        `json:"student"`
		Term               string        `json:"term"`
		Year               int           `json:"year"`
		IssuedDate         string        `json:"issuedDate"`
		Items              []InvoiceItem `json:"items"`
		TotalFees          float64       `json:"totalFees"`
		OutstandingBalance float64       `json:"outstandingBalance"`
		Status             string        `json:"status"`
		Payments           []Payment     `json:"payments"`
	}

	// CustomerBalance is one row of the admin balances report.
	CustomerBalance struct {
		StudentID string  `json:"studentId"`
		Name      string  `json:"name"`
		Balance   float64 `json:"balance"`
	}

	NewInvoice struct {
		StudentID  string        `json:"studentId"`
		ClassID    string        `json:"classId"`
		Term       string        `json:"term" validate:"required,oneof=1 2 3"`
		Year       int           `json:"year" validate:"required"`
		IssuedDate string        `json:"issuedDate" validate:"required"`
		Items      []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	}

	NewPayment struct {
		StudentID string  `json:"studentId" validate:"required"`
		Amount    float64 `json:"amount" validate:"required,gt=0"`
		Method    string  `json:"paymentMethod" validate:"required,oneof=Cash 'Bank Transfer' Credit 'Mobile Money'"`
		Reference string  `json:"reference"`
		Date      string  `json:"paymentDate" validate:"required"`
	}
)

// PaidTotal sums an invoice's visible payments for display. Order-independent;
// never a substitute for the server-computed outstanding balance.
func PaidTotal(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}
