// Package fixtures provides an in-memory stand-in for the leave
// management backend, so client packages test hermetically against a
// real HTTP surface.
package fixtures

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/leavedesk/leavedesk-client-go/domain/calendar"
	"github.com/leavedesk/leavedesk-client-go/domain/leave"
	"github.com/leavedesk/leavedesk-client-go/domain/notification"
	"github.com/leavedesk/leavedesk-client-go/domain/org"
	"github.com/leavedesk/leavedesk-client-go/domain/report"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

const testSecret = "fixture-secret-key"

// account pairs a user record with its password hash
type account struct {
	user         user.User
	passwordHash []byte
}

// Server is the fake backend. All state lives in memory; handlers
// mutate it under one lock.
type Server struct {
	mu        sync.Mutex
	tokenAuth *jwtauth.JWTAuth

	accounts      map[string]*account // by user ID
	leaveTypes    []leave.LeaveType
	requests      map[string]*leave.LeaveRequest
	departments   map[string]*org.Department
	teams         map[string]*org.Team
	notifications map[string]*notification.Notification
	events        []calendar.Event
	reportRows    []report.LeaveReportRow

	// failNext, when set, makes the next API call fail with this
	// message at the application level
	failNext string
}

// NewServer builds a seeded fake backend
func NewServer() *Server {
	s := &Server{
		tokenAuth:     jwtauth.New("HS256", []byte(testSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		accounts:      make(map[string]*account),
		requests:      make(map[string]*leave.LeaveRequest),
		departments:   make(map[string]*org.Department),
		teams:         make(map[string]*org.Team),
		notifications: make(map[string]*notification.Notification),
	}
	s.seed()
	return s
}

// FailNext makes the next handled request fail with msg
func (s *Server) FailNext(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = msg
}

// TokenFor mints an access token for a seeded user with the given ttl
func (s *Server) TokenFor(userID string, ttl time.Duration) string {
	s.mu.Lock()
	acct := s.accounts[userID]
	s.mu.Unlock()
	role := user.RoleStaff
	if acct != nil {
		role = acct.user.Role
	}
	_, token, _ := s.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token
}

// Router assembles the chi handler tree mirroring the real backend
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(true)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       slog.LevelWarn,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(slog.String("app", "leavedesk-fixture"))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.failureInjector)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Get("/login/success", s.handleLoginSuccess)
			r.Get("/login/failure", s.handleLoginFailure)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.tokenAuth))
			r.Use(s.authRequired)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", s.handleListUsers)
				r.Put("/profile", s.handleUpdateProfile)
				r.Get("/{id}", s.handleGetUser)
				r.Put("/{id}/role", s.handleUpdateRole)
				r.Put("/{id}/deactivate", s.handleDeactivate)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", s.handleListDepartments)
				r.Post("/", s.handleCreateDepartment)
				r.Put("/{id}", s.handleUpdateDepartment)
				r.Delete("/{id}", s.handleDeleteDepartment)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", s.handleListTeams)
				r.Post("/", s.handleCreateTeam)
				r.Post("/{id}/members", s.handleAddTeamMember)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/types", s.handleListLeaveTypes)
				r.Post("/types", s.handleCreateLeaveType)
				r.Get("/user", s.handleMyLeaveRequests)
				r.Get("/manager/pending", s.handlePendingLeaveRequests)
				r.Post("/", s.handleCreateLeaveRequest)
				r.Put("/{id}", s.handleUpdateLeaveRequest)
			})

			r.Route("/team-calendar", func(r chi.Router) {
				r.Get("/events", s.handleAllEvents)
				r.Get("/bydepartment/{id}", s.handleDepartmentEvents)
				r.Get("/{teamID}", s.handleTeamEvents)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/user", s.handleListNotifications)
				r.Put("/{id}/read", s.handleMarkNotificationRead)
			})

			r.Get("/reports/leave", s.handleLeaveReport)
		})
	})

	return r
}

// failureInjector turns the next request into an application failure
// when FailNext was armed.
func (s *Server) failureInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		msg := s.failNext
		s.failNext = ""
		s.mu.Unlock()
		if msg != "" {
			respondError(w, http.StatusOK, 500, msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			respondError(w, http.StatusUnauthorized, 401, "Invalid token")
			return
		}
		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			respondError(w, http.StatusUnauthorized, 401, "Invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// currentUserID extracts the caller identity from the verified claims
func currentUserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}
