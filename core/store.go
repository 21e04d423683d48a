package core

import (
	"sync"

	"github.com/pkg/errors"
)

// Store is the shared skeleton of the per-entity stores: a loading flag plus
// the refresh discipline. The collection itself lives in the embedding store,
// guarded by its own lock, so two stores refreshed from the same screen never
// contend and may complete in either order.
type Store struct {
	mu       sync.RWMutex
	loading  bool
	notifier Notifier
}

func NewStore(notifier Notifier) Store {
	return Store{notifier: notifier}
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Sync runs fetch with the loading flag raised; the flag is cleared whatever
// the outcome. A failed fetch leaves the previously cached collection
// untouched: failures are reported to the notifier and swallowed, except for
// ErrSessionExpired which is returned so the application root can handle it
// exactly once.
func (s *Store) Sync(fetch func() error) error {
	s.setLoading(true)
	defer s.setLoading(false)
	if err := fetch(); err != nil {
		if IsSessionExpired(err) {
			return ErrSessionExpired
		}
		s.Report(err)
	}
	return nil
}

// Report surfaces a fetch failure to the user: the server's own message when
// it sent one, a generic notice otherwise.
func (s *Store) Report(err error) {
	if s.notifier == nil || err == nil {
		return
	}
	if apiErr, ok := errors.Cause(err).(*APIError); ok && apiErr.Message != "" {
		s.notifier.Error(apiErr.Message)
		return
	}
	s.notifier.Error("an error occurred!: " + err.Error())
}
