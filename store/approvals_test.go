package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-client-go/domain/leave"
	"github.com/leavedesk/leavedesk-client-go/internal/fixtures"
)

func pendingIDs(requests []leave.LeaveRequest) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestApprovalsFetchPending(t *testing.T) {
	stores, _ := newTestStores(t, fixtures.ManagerUserID)
	ctx := context.Background()

	require.NoError(t, stores.Approvals.FetchPending(ctx))

	snap := stores.Approvals.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	assert.Contains(t, pendingIDs(stores.Approvals.Pending()), fixtures.PendingRequestID)
}

func TestApprovalApproveMovesRequest(t *testing.T) {
	stores, _ := newTestStores(t, fixtures.ManagerUserID)
	ctx := context.Background()
	require.NoError(t, stores.Approvals.FetchPending(ctx))

	updated, err := stores.Approvals.Update(ctx, fixtures.PendingRequestID,
		leave.UpdateLeaveRequestStatusRequest{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)

	assert.NotContains(t, pendingIDs(stores.Approvals.Pending()), fixtures.PendingRequestID)

	approved := stores.Approvals.Approved()
	require.Len(t, approved, 1)
	assert.Equal(t, fixtures.PendingRequestID, approved[0].ID)
	assert.Equal(t, leave.StatusApproved, approved[0].Status)
	assert.Empty(t, stores.Approvals.Rejected())
}

func TestApprovalRejectMovesRequest(t *testing.T) {
	stores, _ := newTestStores(t, fixtures.ManagerUserID)
	ctx := context.Background()
	require.NoError(t, stores.Approvals.FetchPending(ctx))

	_, err := stores.Approvals.Update(ctx, fixtures.PendingRequestID,
		leave.UpdateLeaveRequestStatusRequest{Status: leave.StatusRejected})
	require.NoError(t, err)

	rejected := stores.Approvals.Rejected()
	require.Len(t, rejected, 1)
	assert.Equal(t, leave.StatusRejected, rejected[0].Status)
	assert.Empty(t, stores.Approvals.Approved())
}

func TestApprovalNoUndoOnProcessedRequest(t *testing.T) {
	stores, _ := newTestStores(t, fixtures.ManagerUserID)
	ctx := context.Background()
	require.NoError(t, stores.Approvals.FetchPending(ctx))

	_, err := stores.Approvals.Update(ctx, fixtures.PendingRequestID,
		leave.UpdateLeaveRequestStatusRequest{Status: leave.StatusApproved})
	require.NoError(t, err)

	// A second transition is refused server-side
	_, err = stores.Approvals.Update(ctx, fixtures.PendingRequestID,
		leave.UpdateLeaveRequestStatusRequest{Status: leave.StatusRejected})
	require.Error(t, err)
}

func TestApprovalRejectsNonTerminalStatus(t *testing.T) {
	stores, _ := newTestStores(t, fixtures.ManagerUserID)

	_, err := stores.Approvals.Update(context.Background(), fixtures.PendingRequestID,
		leave.UpdateLeaveRequestStatusRequest{Status: leave.StatusPending})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestApprovalsRejectedFetchKeepsStaleData(t *testing.T) {
	stores, fx := newTestStores(t, fixtures.ManagerUserID)
	ctx := context.Background()
	require.NoError(t, stores.Approvals.FetchPending(ctx))
	before := stores.Approvals.Pending()

	fx.FailNext("backend exploded")
	require.Error(t, stores.Approvals.FetchPending(ctx))

	snap := stores.Approvals.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "backend exploded", snap.Err)
	assert.Equal(t, before, stores.Approvals.Pending(), "stale data stays available")

	// The next success clears the recorded error
	require.NoError(t, stores.Approvals.FetchPending(ctx))
	assert.Empty(t, stores.Approvals.Snapshot().Err)
}
