package leave

import (
	"strings"
	"time"
)

// LeaveRequestStatus is the approval state of a leave request.
// Transitions are one-way: PENDING -> APPROVED | REJECTED.
type LeaveRequestStatus string

const (
	StatusPending  LeaveRequestStatus = "PENDING"
	StatusApproved LeaveRequestStatus = "APPROVED"
	StatusRejected LeaveRequestStatus = "REJECTED"
)

// NormalizeStatus maps server-provided status strings to their canonical
// uppercase form. The backend has historically emitted mixed casings.
func NormalizeStatus(s string) LeaveRequestStatus {
	return LeaveRequestStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// Terminal reports whether the status admits no further transition
func (s LeaveRequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveType entity, admin-managed
type LeaveType struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Code             *string `json:"code,omitempty"`
	AllowanceDays    float64 `json:"allowance_days"`
	IsPaid           bool    `json:"is_paid"`
	RequiresApproval bool    `json:"requires_approval"`
	IsActive         bool    `json:"is_active"`
}

// LeaveRequest entity. Dates are date-only strings in "2006-01-02" form,
// matching the backend wire format.
type LeaveRequest struct {
	ID           string             `json:"id"`
	RequesterID  string             `json:"requester_id"`
	Requester    string             `json:"requester,omitempty"`
	LeaveType    string             `json:"leave_type"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	HalfDay      bool               `json:"half_day"`
	Reason       string             `json:"reason"`
	DocumentPath *string            `json:"document_path,omitempty"`
	Status       LeaveRequestStatus `json:"status"`
	ApprovedBy   *string            `json:"approved_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DateLayout is the wire format for leave dates
const DateLayout = "2006-01-02"

// Days returns the inclusive span of the request in calendar days.
// A half-day request counts as 0.5. Unparsable dates yield zero.
func (r LeaveRequest) Days() float64 {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	days := end.Sub(start).Hours()/24 + 1
	if r.HalfDay {
		return 0.5
	}
	return days
}
