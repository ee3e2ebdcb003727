package leave

import (
	"time"

	"github.com/leavedesk/leavedesk-client-go/validator"
)

// CreateLeaveRequestRequest is the submission payload. The optional
// document travels as a separate multipart file part.
type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	HalfDay   bool   `json:"half_day"`
	Reason    string `json:"reason"`
}

// Validate runs the client-side submission checks. The authoritative
// validation is server-side; failures here never reach the network.
func (r CreateLeaveRequestRequest) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}
	if startOK {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(today) {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must not be in the past"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLeaveRequestStatusRequest carries the approval/rejection action
type UpdateLeaveRequestStatusRequest struct {
	Status LeaveRequestStatus `json:"status"`
	Note   *string            `json:"note,omitempty"`
}

// CreateLeaveTypeRequest is the admin payload for a new leave type
type CreateLeaveTypeRequest struct {
	Name             string  `json:"name"`
	Code             *string `json:"code,omitempty"`
	AllowanceDays    float64 `json:"allowance_days"`
	IsPaid           bool    `json:"is_paid"`
	RequiresApproval bool    `json:"requires_approval"`
}

// Validate checks the admin leave-type payload
func (r CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if r.AllowanceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowance_days", Message: "Allowance must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
