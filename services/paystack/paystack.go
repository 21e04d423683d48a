package paystacksvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

var errNoAmount = errors.New("paystack: nothing to pay")

type (
	// Checkout is the configuration handed to the Paystack widget: the
	// parent's email, the outstanding balance in minor units and a
	// client-generated reference to verify later.
	Checkout struct {
		Email     string `json:"email"`
		Amount    int64  `json:"amount"` // minor units
		Currency  string `json:"currency"`
		PublicKey string `json:"publicKey"`
		Reference string `json:"reference"`
	}

	Service struct {
		client *api.Client
	}
)

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// NewCheckout builds a checkout for the given payer and balance. The balance
// arrives in major units from the backend and Paystack wants minor units.
func (svc *Service) NewCheckout(email string, balance float64) (Checkout, error) {
	if balance <= 0 {
		return Checkout{}, errNoAmount
	}
	return Checkout{
		Email:     core.CleanString(email, true /* lower */),
		Amount:    int64(balance * 100),
		Currency:  core.Conf.GetString("paystackCurrency"),
		PublicKey: core.Conf.GetString("paystackPublicKey"),
		Reference: uuid.New().String(),
	}, nil
}

// Verify asks the backend to confirm a completed checkout with the gateway;
// the backend records the payment and recomputes balances on success.
func (svc *Service) Verify(ctx context.Context, reference string) error {
	if reference == "" {
		return errors.New("paystack: missing reference")
	}
	payload := struct {
		Reference string `json:"reference"`
	}{Reference: reference}
	return svc.client.Post(ctx, "/api/parent/paystack/verify", payload, nil)
}
