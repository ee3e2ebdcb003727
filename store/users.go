package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// UsersStore caches the user directory (admin views)
type UsersStore struct {
	state
	client *api.Client
	logger *slog.Logger
	users  []user.User
}

func NewUsersStore(client *api.Client, logger *slog.Logger) *UsersStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersStore{client: client, logger: logger}
}

// Users returns the cached list
func (s *UsersStore) Users() []user.User {
	var out []user.User
	s.read(func() {
		out = append(out, s.users...)
	})
	return out
}

func (s *UsersStore) Snapshot() Snapshot {
	return s.snapshot()
}

// Fetch replaces the cached list from the backend
func (s *UsersStore) Fetch(ctx context.Context) error {
	seq := s.begin()
	var users []user.User
	if err := s.client.Get(ctx, "/api/users", &users); err != nil {
		s.reject(seq, err)
		return err
	}
	for i := range users {
		users[i].Role = user.NormalizeRole(string(users[i].Role))
	}
	s.fulfill(seq, func() {
		s.users = users
	})
	return nil
}

// Get fetches a single user and upserts it into the cache
func (s *UsersStore) Get(ctx context.Context, id string) (*user.User, error) {
	seq := s.begin()
	var u user.User
	if err := s.client.Get(ctx, "/api/users/"+id, &u); err != nil {
		s.reject(seq, err)
		return nil, err
	}
	u.Role = user.NormalizeRole(string(u.Role))
	s.fulfill(seq, func() {
		s.upsert(u)
	})
	return &u, nil
}

// UpdateRole changes a user's role and upserts the returned record
func (s *UsersStore) UpdateRole(ctx context.Context, req user.UpdateRoleRequest) (*user.User, error) {
	if !req.Role.Valid() {
		return nil, user.ErrInvalidRole
	}
	seq := s.begin()
	var updated user.User
	err := s.client.Put(ctx, "/api/users/"+req.UserID+"/role", req, &updated)
	if err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	updated.Role = user.NormalizeRole(string(updated.Role))
	s.fulfill(seq, func() {
		s.upsert(updated)
	})
	return &updated, nil
}

// Deactivate marks a user inactive. Users are never deleted client-side.
func (s *UsersStore) Deactivate(ctx context.Context, id string) error {
	seq := s.begin()
	var updated user.User
	err := s.client.Put(ctx, "/api/users/"+id+"/deactivate", nil, &updated)
	if err != nil {
		s.reject(seq, err)
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	updated.Role = user.NormalizeRole(string(updated.Role))
	s.fulfill(seq, func() {
		s.upsert(updated)
	})
	return nil
}

// upsert replaces the user by id, appending when absent. Callers hold
// the container lock.
func (s *UsersStore) upsert(u user.User) {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return
		}
	}
	s.users = append(s.users, u)
}
