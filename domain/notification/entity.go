package notification

import (
	"strings"
	"time"
)

// NotificationType tags the event that produced a notification
type NotificationType string

const (
	TypeLeaveRequest  NotificationType = "leave_request"
	TypeLeaveApproved NotificationType = "leave_approved"
	TypeLeaveRejected NotificationType = "leave_rejected"
	TypeRoleChanged   NotificationType = "role_changed"
	TypeTeamJoined    NotificationType = "team_joined"
)

// ReadStatus transitions UNREAD -> READ only
type ReadStatus string

const (
	StatusUnread ReadStatus = "UNREAD"
	StatusRead   ReadStatus = "READ"
)

// NormalizeReadStatus maps server-provided status strings to their
// canonical uppercase form. The backend has historically emitted
// mixed casings ("read" vs "READ").
func NormalizeReadStatus(s string) ReadStatus {
	return ReadStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// Notification represents a user-addressed message
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Status      ReadStatus       `json:"status"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
