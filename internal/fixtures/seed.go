package fixtures

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-client-go/domain/calendar"
	"github.com/leavedesk/leavedesk-client-go/domain/leave"
	"github.com/leavedesk/leavedesk-client-go/domain/notification"
	"github.com/leavedesk/leavedesk-client-go/domain/org"
	"github.com/leavedesk/leavedesk-client-go/domain/report"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// Seeded identifiers, stable so tests can reference them directly
const (
	StaffUserID    = "user-staff-1"
	ManagerUserID  = "user-manager-1"
	AdminUserID    = "user-admin-1"
	ExternalUserID = "user-external-1"

	EngineeringDepartmentID = "dept-engineering"
	PlatformTeamID          = "team-platform"

	PendingRequestID      = "42"
	UnreadNotificationID  = "notif-unread-1"
	LegacyNotificationID  = "notif-legacy-1"
	MarchEventID          = "event-march-1"
	UnparsableDateEventID = "event-broken-1"

	Password = "password123"
)

func strPtr(s string) *string { return &s }

func (s *Server) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	now := time.Now()

	addUser := func(id, name, email string, role user.Role, complete bool) {
		s.accounts[id] = &account{
			user: user.User{
				ID:              id,
				Name:            name,
				Email:           email,
				Role:            role,
				TeamIDs:         []string{PlatformTeamID},
				ProfileComplete: complete,
				IsActive:        true,
				LeaveBalances: []user.LeaveBalance{
					{LeaveType: "ANNUAL", UsedDays: 4, TotalDays: 20},
					{LeaveType: "SICK", UsedDays: 1, TotalDays: 10},
				},
				CreatedAt: now,
				UpdatedAt: now,
			},
			passwordHash: hash,
		}
	}

	addUser(StaffUserID, "Alice Staff", "alice@example.com", user.RoleStaff, true)
	addUser(ManagerUserID, "Bob Manager", "bob@example.com", user.RoleManager, true)
	addUser(AdminUserID, "Carol Admin", "carol@example.com", user.RoleAdmin, true)
	addUser(ExternalUserID, "Eve External", "eve@example.com", user.RoleStaff, false)

	s.leaveTypes = []leave.LeaveType{
		{ID: "type-annual", Name: "Annual Leave", Code: strPtr("ANNUAL"), AllowanceDays: 20, IsPaid: true, RequiresApproval: true, IsActive: true},
		{ID: "type-sick", Name: "Sick Leave", Code: strPtr("SICK"), AllowanceDays: 10, IsPaid: true, RequiresApproval: false, IsActive: true},
		{ID: "type-unpaid", Name: "Unpaid Leave", Code: strPtr("UNPAID"), AllowanceDays: 0, IsPaid: false, RequiresApproval: true, IsActive: true},
	}

	s.departments[EngineeringDepartmentID] = &org.Department{
		ID:        EngineeringDepartmentID,
		Name:      "Engineering",
		TeamIDs:   []string{PlatformTeamID},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.teams[PlatformTeamID] = &org.Team{
		ID:           PlatformTeamID,
		DepartmentID: EngineeringDepartmentID,
		Name:         "Platform",
		ManagerID:    ManagerUserID,
		Members: []org.TeamMember{
			{UserID: StaffUserID, Name: "Alice Staff", Email: "alice@example.com", JoinedAt: now},
			{UserID: ManagerUserID, Name: "Bob Manager", Email: "bob@example.com", JoinedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.requests[PendingRequestID] = &leave.LeaveRequest{
		ID:          PendingRequestID,
		RequesterID: StaffUserID,
		Requester:   "Alice Staff",
		LeaveType:   "ANNUAL",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-14",
		Reason:      "Family trip",
		Status:      leave.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.requests["req-approved-1"] = &leave.LeaveRequest{
		ID:          "req-approved-1",
		RequesterID: StaffUserID,
		Requester:   "Alice Staff",
		LeaveType:   "SICK",
		StartDate:   "2025-01-06",
		EndDate:     "2025-01-07",
		Reason:      "Flu",
		Status:      leave.StatusApproved,
		ApprovedBy:  strPtr(ManagerUserID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.notifications[UnreadNotificationID] = &notification.Notification{
		ID:          UnreadNotificationID,
		RecipientID: StaffUserID,
		Type:        notification.TypeLeaveApproved,
		Title:       "Leave approved",
		Message:     "Your sick leave was approved",
		Status:      notification.StatusUnread,
		CreatedAt:   now,
	}
	// Legacy record with the old lowercase casing the real backend
	// still emits in places
	s.notifications[LegacyNotificationID] = &notification.Notification{
		ID:          LegacyNotificationID,
		RecipientID: StaffUserID,
		Type:        notification.TypeLeaveRequest,
		Title:       "Request received",
		Message:     "Your annual leave request was received",
		Status:      notification.ReadStatus("read"),
		CreatedAt:   now,
	}

	s.events = []calendar.Event{
		{
			ID:        MarchEventID,
			UserID:    StaffUserID,
			UserName:  "Alice Staff",
			TeamID:    PlatformTeamID,
			LeaveType: "ANNUAL",
			Title:     "Alice Staff - Annual Leave",
			StartDate: "2025-03-10",
			EndDate:   "2025-03-14",
		},
		{
			ID:        "event-holiday-1",
			Title:     "Company Holiday",
			StartDate: "2025-03-17",
			EndDate:   "2025-03-17",
			IsHoliday: true,
		},
		{
			ID:        UnparsableDateEventID,
			UserID:    ManagerUserID,
			TeamID:    PlatformTeamID,
			Title:     "Bob Manager - Unknown",
			StartDate: "not-a-date",
			EndDate:   "2025-03-20",
		},
	}

	s.reportRows = []report.LeaveReportRow{
		{UserID: StaffUserID, UserName: "Alice Staff", Department: "Engineering", Team: "Platform", LeaveType: "ANNUAL", UsedDays: 4, TotalDays: 20, Pending: 1, Approved: 1},
		{UserID: ManagerUserID, UserName: "Bob Manager", Department: "Engineering", Team: "Platform", LeaveType: "ANNUAL", UsedDays: 2.5, TotalDays: 20},
	}
}
