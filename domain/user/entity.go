package user

import (
	"strings"
	"time"

	"github.com/leavedesk/leavedesk-client-go/validator"
)

// Role represents a user's role in the organization
type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// AllRoles returns all assignable roles
func AllRoles() []Role {
	return []Role{RoleStaff, RoleManager, RoleAdmin}
}

// NormalizeRole maps a server-provided role string to its canonical
// uppercase form. The backend has historically emitted mixed casings.
func NormalizeRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

func (r Role) Valid() bool {
	return validator.IsInSlice(string(r), []string{
		string(RoleStaff), string(RoleManager), string(RoleAdmin),
	})
}

// User represents the cached server-owned user record
type User struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Role            Role           `json:"role"`
	TeamIDs         []string       `json:"team_ids"`
	LeaveBalances   []LeaveBalance `json:"leave_balances"`
	ProfileComplete bool           `json:"profile_complete"`
	IsActive        bool           `json:"is_active"`
	AvatarPath      *string        `json:"avatar_path,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// LeaveBalance is the remaining allowance of one leave type for a user
type LeaveBalance struct {
	LeaveType string  `json:"leave_type"`
	UsedDays  float64 `json:"used_days"`
	TotalDays float64 `json:"total_days"`
}

// Remaining returns the unspent days for this balance
func (b LeaveBalance) Remaining() float64 {
	return b.TotalDays - b.UsedDays
}
