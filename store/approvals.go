package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/leave"
)

// ApprovalsStore caches the manager's approval queue. A processed
// request leaves the pending list and lands in the approved or
// rejected list keyed by the status the server returned. There is no
// undo: the PENDING -> APPROVED|REJECTED transition is terminal.
type ApprovalsStore struct {
	state
	client   *api.Client
	logger   *slog.Logger
	pending  []leave.LeaveRequest
	approved []leave.LeaveRequest
	rejected []leave.LeaveRequest
}

func NewApprovalsStore(client *api.Client, logger *slog.Logger) *ApprovalsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApprovalsStore{client: client, logger: logger}
}

func (s *ApprovalsStore) Pending() []leave.LeaveRequest {
	var out []leave.LeaveRequest
	s.read(func() {
		out = append(out, s.pending...)
	})
	return out
}

func (s *ApprovalsStore) Approved() []leave.LeaveRequest {
	var out []leave.LeaveRequest
	s.read(func() {
		out = append(out, s.approved...)
	})
	return out
}

func (s *ApprovalsStore) Rejected() []leave.LeaveRequest {
	var out []leave.LeaveRequest
	s.read(func() {
		out = append(out, s.rejected...)
	})
	return out
}

func (s *ApprovalsStore) Snapshot() Snapshot {
	return s.snapshot()
}

// FetchPending replaces the pending queue from the backend
func (s *ApprovalsStore) FetchPending(ctx context.Context) error {
	seq := s.begin()
	var pending []leave.LeaveRequest
	if err := s.client.Get(ctx, "/api/leave-requests/manager/pending", &pending); err != nil {
		s.reject(seq, err)
		return err
	}
	normalizeStatuses(pending)
	s.fulfill(seq, func() {
		s.pending = pending
	})
	return nil
}

// Update applies an approval or rejection. The request moves out of
// the pending list into the list keyed by the server's returned status.
func (s *ApprovalsStore) Update(ctx context.Context, requestID string, req leave.UpdateLeaveRequestStatusRequest) (*leave.LeaveRequest, error) {
	if !req.Status.Terminal() {
		return nil, leave.ErrLeaveRequestAlreadyProcessed
	}

	seq := s.begin()
	var updated leave.LeaveRequest
	err := s.client.Put(ctx, "/api/leave-requests/"+requestID, req, &updated)
	if err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	updated.Status = leave.NormalizeStatus(string(updated.Status))

	s.fulfill(seq, func() {
		kept := s.pending[:0]
		for _, r := range s.pending {
			if r.ID != updated.ID {
				kept = append(kept, r)
			}
		}
		s.pending = kept

		switch updated.Status {
		case leave.StatusApproved:
			s.approved = append(s.approved, updated)
		case leave.StatusRejected:
			s.rejected = append(s.rejected, updated)
		default:
			s.logger.Warn("unexpected status on processed leave request",
				"request_id", updated.ID, "status", updated.Status)
		}
	})
	return &updated, nil
}
