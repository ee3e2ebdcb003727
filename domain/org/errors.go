package org

import "errors"

var (
	ErrDepartmentNotFound = errors.New("Department not found")
	ErrTeamNotFound       = errors.New("Team not found")
)
