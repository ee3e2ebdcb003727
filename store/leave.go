package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/leave"
)

// LeaveStore caches the current user's leave world: the configured
// leave types, their own requests, and the processed history.
type LeaveStore struct {
	state
	client   *api.Client
	logger   *slog.Logger
	types    []leave.LeaveType
	requests []leave.LeaveRequest
	history  []leave.LeaveRequest
}

func NewLeaveStore(client *api.Client, logger *slog.Logger) *LeaveStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaveStore{client: client, logger: logger}
}

func (s *LeaveStore) Types() []leave.LeaveType {
	var out []leave.LeaveType
	s.read(func() {
		out = append(out, s.types...)
	})
	return out
}

func (s *LeaveStore) Requests() []leave.LeaveRequest {
	var out []leave.LeaveRequest
	s.read(func() {
		out = append(out, s.requests...)
	})
	return out
}

func (s *LeaveStore) History() []leave.LeaveRequest {
	var out []leave.LeaveRequest
	s.read(func() {
		out = append(out, s.history...)
	})
	return out
}

func (s *LeaveStore) Snapshot() Snapshot {
	return s.snapshot()
}

// FetchTypes replaces the cached leave types
func (s *LeaveStore) FetchTypes(ctx context.Context) error {
	seq := s.begin()
	var types []leave.LeaveType
	if err := s.client.Get(ctx, "/api/leave-requests/types", &types); err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.types = types
	})
	return nil
}

// FetchMyRequests replaces the cached request list for the current user
func (s *LeaveStore) FetchMyRequests(ctx context.Context) error {
	seq := s.begin()
	var requests []leave.LeaveRequest
	if err := s.client.Get(ctx, "/api/leave-requests/user", &requests); err != nil {
		s.reject(seq, err)
		return err
	}
	normalizeStatuses(requests)
	s.fulfill(seq, func() {
		s.requests = requests
	})
	return nil
}

// FetchHistory replaces the cached processed-request history
func (s *LeaveStore) FetchHistory(ctx context.Context) error {
	seq := s.begin()
	var history []leave.LeaveRequest
	err := s.client.Get(ctx, "/api/leave-requests/user", &history,
		api.WithParam("scope", "history"))
	if err != nil {
		s.reject(seq, err)
		return err
	}
	normalizeStatuses(history)
	s.fulfill(seq, func() {
		s.history = history
	})
	return nil
}

// Document describes the optional supporting file for a submission
type Document struct {
	FileName string
	Reader   io.Reader
}

// Submit validates and posts a new leave request. The payload travels
// as a JSON multipart part, the document as an optional file part.
// Validation failures never reach the network.
func (s *LeaveStore) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest, doc *Document) (*leave.LeaveRequest, error) {
	if err := req.Validate(time.Now()); err != nil {
		return nil, err
	}

	var file *api.FileUpload
	if doc != nil {
		file = &api.FileUpload{FieldName: "attachment", FileName: doc.FileName, Reader: doc.Reader}
	}

	seq := s.begin()
	var created leave.LeaveRequest
	err := s.client.PostMultipart(ctx, "/api/leave-requests", req, file, &created)
	if err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to submit leave request: %w", err)
	}
	created.Status = leave.NormalizeStatus(string(created.Status))
	s.fulfill(seq, func() {
		s.requests = append([]leave.LeaveRequest{created}, s.requests...)
	})
	return &created, nil
}

// CreateType posts a new leave type (admin operation)
func (s *LeaveStore) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (*leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	seq := s.begin()
	var created leave.LeaveType
	if err := s.client.Post(ctx, "/api/leave-requests/types", req, &created); err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to create leave type: %w", err)
	}
	s.fulfill(seq, func() {
		s.types = append(s.types, created)
	})
	return &created, nil
}

func normalizeStatuses(requests []leave.LeaveRequest) {
	for i := range requests {
		requests[i].Status = leave.NormalizeStatus(string(requests[i].Status))
	}
}
