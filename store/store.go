package store

import (
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
)

// Stores is the process-wide store: every container the views read.
// Containers are independent; cross-container consistency (leave
// balance vs leave history, say) is eventual, not transactional.
type Stores struct {
	Users         *UsersStore
	Departments   *DepartmentsStore
	Teams         *TeamsStore
	Leave         *LeaveStore
	Approvals     *ApprovalsStore
	Calendar      *CalendarStore
	Notifications *NotificationsStore
	Reports       *ReportsStore
}

// New wires every container onto one API client
func New(client *api.Client, logger *slog.Logger) *Stores {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stores{
		Users:         NewUsersStore(client, logger),
		Departments:   NewDepartmentsStore(client, logger),
		Teams:         NewTeamsStore(client, logger),
		Leave:         NewLeaveStore(client, logger),
		Approvals:     NewApprovalsStore(client, logger),
		Calendar:      NewCalendarStore(client, logger),
		Notifications: NewNotificationsStore(client, logger),
		Reports:       NewReportsStore(client, logger),
	}
}
