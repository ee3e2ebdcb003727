package user

import (
	"github.com/leavedesk/leavedesk-client-go/validator"
)

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	AvatarPath *string `json:"avatar_path,omitempty"`
}

// Validate runs the client-side profile checks. The authoritative
// validation is server-side; failures here never reach the network.
func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email format is invalid"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRoleRequest changes a user's role (admin operation)
type UpdateRoleRequest struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// DeactivateRequest deactivates a user; users are never deleted client-side
type DeactivateRequest struct {
	UserID string `json:"user_id"`
}
