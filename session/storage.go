package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/leavedesk/leavedesk-client-go/domain/auth"
)

// Storage persists the session snapshot across process restarts. It is
// the local-storage analogue of the browser client.
type Storage interface {
	Load() (auth.Session, error)
	Save(session auth.Session) error
	Clear() error
}

// FileStorage keeps the session as a JSON file, readable only by the
// owning user.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) Load() (auth.Session, error) {
	var session auth.Session
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.Session{}, nil
		}
		return auth.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is treated as no session
		return auth.Session{}, nil
	}
	return session, nil
}

func (s *FileStorage) Save(session auth.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStorage holds the session in memory only, for tests and
// short-lived processes.
type MemoryStorage struct {
	mu      sync.Mutex
	session auth.Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *MemoryStorage) Save(session auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = auth.Session{}
	return nil
}
