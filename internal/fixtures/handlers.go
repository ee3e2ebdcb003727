package fixtures

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-client-go/domain/auth"
	"github.com/leavedesk/leavedesk-client-go/domain/calendar"
	"github.com/leavedesk/leavedesk-client-go/domain/leave"
	"github.com/leavedesk/leavedesk-client-go/domain/notification"
	"github.com/leavedesk/leavedesk-client-go/domain/org"
	"github.com/leavedesk/leavedesk-client-go/domain/report"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

const tokenTTL = time.Hour

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	loginType := r.URL.Query().Get("loginType")
	switch loginType {
	case string(auth.LoginTypeExternal):
		var req auth.ExternalLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			respondError(w, http.StatusOK, 400, "Invalid authorization code")
			return
		}
		s.loginAs(w, ExternalUserID)
	default:
		var req auth.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusOK, 400, "Invalid request body")
			return
		}
		s.mu.Lock()
		var match *account
		for _, acct := range s.accounts {
			if acct.user.Email == req.Email {
				match = acct
				break
			}
		}
		s.mu.Unlock()
		if match == nil || bcrypt.CompareHashAndPassword(match.passwordHash, []byte(req.Password)) != nil {
			respondError(w, http.StatusOK, 401, "Invalid email or password")
			return
		}
		s.loginAs(w, match.user.ID)
	}
}

func (s *Server) handleLoginSuccess(w http.ResponseWriter, r *http.Request) {
	s.loginAs(w, ExternalUserID)
}

func (s *Server) handleLoginFailure(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusOK, 401, "External login failed")
}

func (s *Server) loginAs(w http.ResponseWriter, userID string) {
	s.mu.Lock()
	acct := s.accounts[userID]
	s.mu.Unlock()
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	expiresAt := time.Now().Add(tokenTTL)
	respond(w, auth.LoginResponse{
		AccessToken: s.TokenFor(userID, tokenTTL),
		ExpiresAt:   expiresAt.Unix(),
		User:        acct.user,
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	users := make([]user.User, 0, len(s.accounts))
	for _, acct := range s.accounts {
		users = append(users, acct.user)
	}
	s.mu.Unlock()
	respond(w, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	acct := s.accounts[id]
	s.mu.Unlock()
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	respond(w, acct.user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[currentUserID(r)]
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	acct.user.Name = req.Name
	acct.user.Email = req.Email
	acct.user.AvatarPath = req.AvatarPath
	acct.user.ProfileComplete = true
	acct.user.UpdatedAt = time.Now()
	respond(w, acct.user)
}

func (s *Server) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[chi.URLParam(r, "id")]
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	acct.user.Role = req.Role
	acct.user.UpdatedAt = time.Now()
	respond(w, acct.user)
}

func (s *Server) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[chi.URLParam(r, "id")]
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	acct.user.IsActive = false
	acct.user.UpdatedAt = time.Now()
	respond(w, acct.user)
}

func (s *Server) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	departments := make([]org.Department, 0, len(s.departments))
	for _, d := range s.departments {
		departments = append(departments, *d)
	}
	s.mu.Unlock()
	respond(w, departments)
}

func (s *Server) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req org.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	d := org.Department{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	s.departments[d.ID] = &d
	s.mu.Unlock()
	respond(w, d)
}

func (s *Server) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req org.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.departments[chi.URLParam(r, "id")]
	if d == nil {
		respondError(w, http.StatusOK, 404, "Department not found")
		return
	}
	d.Name = req.Name
	d.UpdatedAt = time.Now()
	respond(w, *d)
}

func (s *Server) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	if _, ok := s.departments[id]; !ok {
		respondError(w, http.StatusOK, 404, "Department not found")
		return
	}
	delete(s.departments, id)
	respond(w, nil)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("departmentId")
	s.mu.Lock()
	teams := make([]org.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if departmentID != "" && t.DepartmentID != departmentID {
			continue
		}
		teams = append(teams, *t)
	}
	s.mu.Unlock()
	respond(w, teams)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req org.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	t := org.Team{
		ID:           uuid.NewString(),
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		ManagerID:    req.ManagerID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.mu.Lock()
	s.teams[t.ID] = &t
	s.mu.Unlock()
	respond(w, t)
}

func (s *Server) handleAddTeamMember(w http.ResponseWriter, r *http.Request) {
	var req org.AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.teams[chi.URLParam(r, "id")]
	if t == nil {
		respondError(w, http.StatusOK, 404, "Team not found")
		return
	}
	acct := s.accounts[req.UserID]
	if acct == nil {
		respondError(w, http.StatusOK, 404, "User not found")
		return
	}
	t.Members = append(t.Members, org.TeamMember{
		UserID:   acct.user.ID,
		Name:     acct.user.Name,
		Email:    acct.user.Email,
		JoinedAt: time.Now(),
	})
	t.UpdatedAt = time.Now()
	respond(w, *t)
}

func (s *Server) handleListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	types := append([]leave.LeaveType(nil), s.leaveTypes...)
	s.mu.Unlock()
	respond(w, types)
}

func (s *Server) handleCreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	lt := leave.LeaveType{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Code:             req.Code,
		AllowanceDays:    req.AllowanceDays,
		IsPaid:           req.IsPaid,
		RequiresApproval: req.RequiresApproval,
		IsActive:         true,
	}
	s.mu.Lock()
	s.leaveTypes = append(s.leaveTypes, lt)
	s.mu.Unlock()
	respond(w, lt)
}

func (s *Server) handleMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	historyOnly := r.URL.Query().Get("scope") == "history"
	s.mu.Lock()
	var requests []leave.LeaveRequest
	for _, req := range s.requests {
		if req.RequesterID != userID {
			continue
		}
		if historyOnly && !req.Status.Terminal() {
			continue
		}
		requests = append(requests, *req)
	}
	s.mu.Unlock()
	respond(w, requests)
}

func (s *Server) handlePendingLeaveRequests(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var pending []leave.LeaveRequest
	for _, req := range s.requests {
		if req.Status == leave.StatusPending {
			pending = append(pending, *req)
		}
	}
	s.mu.Unlock()
	respond(w, pending)
}

func (s *Server) handleCreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid multipart form")
		return
	}
	var req leave.CreateLeaveRequestRequest
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid payload")
		return
	}

	var documentPath *string
	if file, header, err := r.FormFile("attachment"); err == nil {
		file.Close()
		path := "uploads/" + uuid.NewString() + "-" + header.Filename
		documentPath = &path
	}

	created := leave.LeaveRequest{
		ID:           uuid.NewString(),
		RequesterID:  currentUserID(r),
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		HalfDay:      req.HalfDay,
		Reason:       req.Reason,
		DocumentPath: documentPath,
		Status:       leave.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.mu.Lock()
	s.requests[created.ID] = &created
	s.mu.Unlock()
	respond(w, created)
}

func (s *Server) handleUpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusOK, 400, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.requests[chi.URLParam(r, "id")]
	if existing == nil {
		respondError(w, http.StatusOK, 404, "Leave request not found")
		return
	}
	if existing.Status != leave.StatusPending {
		respondError(w, http.StatusOK, 409, "Leave request already processed")
		return
	}
	approver := currentUserID(r)
	existing.Status = req.Status
	existing.ApprovedBy = &approver
	existing.UpdatedAt = time.Now()
	respond(w, *existing)
}

func (s *Server) handleAllEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	events := append([]calendar.Event(nil), s.events...)
	s.mu.Unlock()
	respond(w, events)
}

func (s *Server) handleTeamEvents(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	s.mu.Lock()
	var events []calendar.Event
	for _, e := range s.events {
		if e.TeamID == teamID {
			events = append(events, e)
		}
	}
	s.mu.Unlock()
	respond(w, events)
}

func (s *Server) handleDepartmentEvents(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")
	s.mu.Lock()
	var events []calendar.Event
	for _, e := range s.events {
		if t := s.teams[e.TeamID]; t != nil && t.DepartmentID == departmentID {
			events = append(events, e)
		}
	}
	s.mu.Unlock()
	respond(w, events)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	s.mu.Lock()
	var notifications []notification.Notification
	for _, n := range s.notifications {
		if n.RecipientID == userID {
			notifications = append(notifications, *n)
		}
	}
	s.mu.Unlock()
	respond(w, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notifications[chi.URLParam(r, "id")]
	if n == nil {
		respondError(w, http.StatusOK, 404, "Notification not found")
		return
	}
	now := time.Now()
	n.Status = notification.StatusRead
	n.ReadAt = &now
	respond(w, *n)
}

func (s *Server) handleLeaveReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rows := append([]report.LeaveReportRow(nil), s.reportRows...)
	s.mu.Unlock()
	respond(w, rows)
}
