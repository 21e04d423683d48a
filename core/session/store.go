package session

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/edumanage/portal/core"
)

// Store is the durable local storage for the session token; the only client
// state that survives restarts.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// fileStore keeps the token in a single file under the user's home directory.
type fileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*fileStore)(nil)

func NewFileStore(path ...string) Store {
	p := core.Conf.GetString("tokenFile")
	if len(path) > 0 && path[0] != "" {
		p = path[0]
	}
	return &fileStore{path: p}
}

func (s *fileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "creating token dir")
	}
	return errors.Wrap(ioutil.WriteFile(s.path, []byte(token), 0600), "writing token")
}

func (s *fileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := ioutil.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading token")
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing token")
	}
	return nil
}
