package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/org"
)

// TeamsStore caches teams and their memberships
type TeamsStore struct {
	state
	client *api.Client
	logger *slog.Logger
	teams  []org.Team
}

func NewTeamsStore(client *api.Client, logger *slog.Logger) *TeamsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamsStore{client: client, logger: logger}
}

func (s *TeamsStore) Teams() []org.Team {
	var out []org.Team
	s.read(func() {
		out = append(out, s.teams...)
	})
	return out
}

func (s *TeamsStore) Snapshot() Snapshot {
	return s.snapshot()
}

// Fetch replaces the cached team list
func (s *TeamsStore) Fetch(ctx context.Context) error {
	seq := s.begin()
	var teams []org.Team
	if err := s.client.Get(ctx, "/api/teams", &teams); err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.teams = teams
	})
	return nil
}

// FetchByDepartment replaces the cache with one department's teams
func (s *TeamsStore) FetchByDepartment(ctx context.Context, departmentID string) error {
	seq := s.begin()
	var teams []org.Team
	err := s.client.Get(ctx, "/api/teams", &teams, api.WithParam("departmentId", departmentID))
	if err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.teams = teams
	})
	return nil
}

// Create posts a new team and appends the returned record
func (s *TeamsStore) Create(ctx context.Context, req org.CreateTeamRequest) (*org.Team, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	seq := s.begin()
	var created org.Team
	if err := s.client.Post(ctx, "/api/teams", req, &created); err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	s.fulfill(seq, func() {
		s.upsert(created)
	})
	return &created, nil
}

// AddMember attaches a user to a team and upserts the returned team
func (s *TeamsStore) AddMember(ctx context.Context, teamID string, req org.AddTeamMemberRequest) (*org.Team, error) {
	seq := s.begin()
	var updated org.Team
	err := s.client.Post(ctx, "/api/teams/"+teamID+"/members", req, &updated)
	if err != nil {
		s.reject(seq, err)
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}
	s.fulfill(seq, func() {
		s.upsert(updated)
	})
	return &updated, nil
}

func (s *TeamsStore) upsert(t org.Team) {
	for i := range s.teams {
		if s.teams[i].ID == t.ID {
			s.teams[i] = t
			return
		}
	}
	s.teams = append(s.teams, t)
}
