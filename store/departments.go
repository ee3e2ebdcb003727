package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/org"
)

// DepartmentsStore caches the department list (admin-managed)
type DepartmentsStore struct {
	state
	client      *api.Client
	logger      *slog.Logger
	departments []org.Department
}

func NewDepartmentsStore(client *api.Client, logger *slog.Logger) *DepartmentsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DepartmentsStore{client: client, logger: logger}
}

func (s *DepartmentsStore) Departments() []org.Department {
	var out []org.Department
	s.read(func() {
		out = append(out, s.departments...)
	})
	return out
}

func (s *DepartmentsStore) Snapshot() Snapshot {
	return s.snapshot()
}

// Fetch replaces the cached list
func (s *DepartmentsStore) Fetch(ctx context.Context) error {
	seq := s.begin()
	var departments []org.Department
	if err := s.client.Get(ctx, "/api/departments", &departments); err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.departments = departments
	})
	return nil
}

// Create posts a new department and appends the returned record
func (s *DepartmentsStore) Create(ctx context.Context, req org.CreateDepartmentRequest) (*org.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	seq := s.begin()
	var created org.Department
	if err := s.client.Post(ctx, "/api/departments", req, &created); err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	s.fulfill(seq, func() {
		s.upsert(created)
	})
	return &created, nil
}

// Update renames a department and upserts the returned record
func (s *DepartmentsStore) Update(ctx context.Context, id string, req org.UpdateDepartmentRequest) (*org.Department, error) {
	seq := s.begin()
	var updated org.Department
	if err := s.client.Put(ctx, "/api/departments/"+id, req, &updated); err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	s.fulfill(seq, func() {
		s.upsert(updated)
	})
	return &updated, nil
}

// Delete removes a department and filters it out of the cache
func (s *DepartmentsStore) Delete(ctx context.Context, id string) error {
	seq := s.begin()
	if err := s.client.Delete(ctx, "/api/departments/"+id, nil); err != nil {
		s.reject(seq, err)
		return fmt.Errorf("failed to delete department: %w", err)
	}
	s.fulfill(seq, func() {
		kept := s.departments[:0]
		for _, d := range s.departments {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		s.departments = kept
	})
	return nil
}

func (s *DepartmentsStore) upsert(d org.Department) {
	for i := range s.departments {
		if s.departments[i].ID == d.ID {
			s.departments[i] = d
			return
		}
	}
	s.departments = append(s.departments, d)
}
