package org

import "github.com/leavedesk/leavedesk-client-go/validator"

// CreateDepartmentRequest is the admin payload for a new department
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r CreateDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "Name is required"}}
	}
	return nil
}

// UpdateDepartmentRequest renames a department
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

// CreateTeamRequest is the admin payload for a new team
type CreateTeamRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	ManagerID    string `json:"manager_id"`
}

func (r CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "Department is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddTeamMemberRequest attaches a user to a team
type AddTeamMemberRequest struct {
	UserID string `json:"user_id"`
}
