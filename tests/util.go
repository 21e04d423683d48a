package testutil

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core/session"
	"github.com/edumanage/portal/devserver"
)

// MemStore is an in-memory session.Store for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

var _ session.Store = (*MemStore)(nil)

func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// StartStub boots the stub backend on an ephemeral port and returns its base
// URL. The server is torn down with the test.
func StartStub(t *testing.T) string {
	t.Helper()
	app := devserver.NewServer(&devserver.Options{
		DisableReqLogs: true,
		DB:             devserver.Seed(),
	})
	ts := httptest.NewServer(app)
	t.Cleanup(ts.Close)
	return ts.URL
}

// Login authenticates a fixture account against the stub and returns a client
// carrying its session token.
func Login(t *testing.T, baseURL, email string) *api.Client {
	t.Helper()
	store := &MemStore{}
	client := api.NewClient(session.TokenSource(store), baseURL)
	svc := session.NewService(client, store)
	if _, err := svc.Login(context.Background(), session.Credentials{
		Email:    email,
		Password: devserver.DemoPassword,
	}); err != nil {
		t.Fatalf("logging in %s: %v", email, err)
	}
	return client
}
