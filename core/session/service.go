package session

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
)

var ErrNotLoggedIn = errors.New("not logged in")

type (
	Credentials struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	Service struct {
		client *api.Client
		store  Store
	}
)

func NewService(client *api.Client, store Store) *Service {
	return &Service{client: client, store: store}
}

// TokenSource adapts a Store for use by the api client.
func TokenSource(store Store) api.TokenSource {
	return api.TokenSourceFunc(func() string {
		token, _ := store.Load()
		return token
	})
}

// Login authenticates against the backend, decodes the returned token for
// routing and persists it.
func (svc *Service) Login(ctx context.Context, creds Credentials) (Claims, error) {
	creds.Email = core.CleanString(creds.Email, true /* lower */)
	if err := core.Validate.Struct(creds); err != nil {
		return Claims{}, core.TranslateValidationErrors(err)
	}

	var res struct {
		Token string `json:"token"`
	}
	if err := svc.client.Post(ctx, "/api/users/login", creds, &res); err != nil {
		return Claims{}, err
	}
	claims, err := Decode(res.Token)
	if err != nil {
		return Claims{}, errors.Wrap(err, "login: no usable token received")
	}
	if err := svc.store.Save(res.Token); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// Logout tells the backend then drops the local token; the local side is
// cleared even when the backend call fails.
func (svc *Service) Logout(ctx context.Context) error {
	apiErr := svc.client.Post(ctx, "/api/users/logout", nil, nil)
	if err := svc.store.Clear(); err != nil {
		return err
	}
	return apiErr
}

// Expire drops the stored token. It is the single handler for
// core.ErrSessionExpired and is safe to call more than once.
func (svc *Service) Expire() error {
	return svc.store.Clear()
}

// Current returns the claims of the stored session, or ErrNotLoggedIn.
func (svc *Service) Current() (Claims, error) {
	token, err := svc.store.Load()
	if err != nil {
		return Claims{}, err
	}
	if token == "" {
		return Claims{}, ErrNotLoggedIn
	}
	claims, err := Decode(token)
	if err != nil {
		return Claims{}, ErrNotLoggedIn
	}
	return claims, nil
}
