package user

import "errors"

var (
	ErrUserNotFound = errors.New("User not found")
	ErrInvalidRole  = errors.New("Invalid role")
)
