package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/calendar"
)

// CalendarStore caches team calendar events and tracks the month the
// calendar view is focused on.
type CalendarStore struct {
	state
	client *api.Client
	logger *slog.Logger
	events []calendar.Event
	year   int
	month  time.Month
}

func NewCalendarStore(client *api.Client, logger *slog.Logger) *CalendarStore {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &CalendarStore{
		client: client,
		logger: logger,
		year:   now.Year(),
		month:  now.Month(),
	}
}

func (s *CalendarStore) Events() []calendar.Event {
	var out []calendar.Event
	s.read(func() {
		out = append(out, s.events...)
	})
	return out
}

func (s *CalendarStore) Snapshot() Snapshot {
	return s.snapshot()
}

// Month returns the focused (year, month)
func (s *CalendarStore) Month() (int, time.Month) {
	var year int
	var month time.Month
	s.read(func() {
		year, month = s.year, s.month
	})
	return year, month
}

// NextMonth advances the focused month, rolling the year over
func (s *CalendarStore) NextMonth() {
	s.read(func() {
		s.year, s.month = calendar.AddMonths(s.year, s.month, 1)
	})
}

// PrevMonth moves the focused month back, rolling the year over
func (s *CalendarStore) PrevMonth() {
	s.read(func() {
		s.year, s.month = calendar.AddMonths(s.year, s.month, -1)
	})
}

// Grid lays the focused month out as a 6x7 day grid with each cell
// carrying the events covering that day.
func (s *CalendarStore) Grid() []calendar.Cell {
	var year int
	var month time.Month
	var events []calendar.Event
	s.read(func() {
		year, month = s.year, s.month
		events = append(events, s.events...)
	})
	return calendar.MonthGrid(year, month, events)
}

// EventsOn returns the cached events covering the given day
func (s *CalendarStore) EventsOn(day time.Time) []calendar.Event {
	return calendar.EventsOn(s.Events(), day)
}

// Fetch replaces the cache with all events visible to the current user
func (s *CalendarStore) Fetch(ctx context.Context) error {
	return s.fetch(ctx, "/api/team-calendar/events")
}

// FetchTeam replaces the cache with one team's events
func (s *CalendarStore) FetchTeam(ctx context.Context, teamID string) error {
	return s.fetch(ctx, "/api/team-calendar/"+teamID)
}

// FetchDepartment replaces the cache with one department's events
func (s *CalendarStore) FetchDepartment(ctx context.Context, departmentID string) error {
	return s.fetch(ctx, "/api/team-calendar/bydepartment/"+departmentID)
}

func (s *CalendarStore) fetch(ctx context.Context, path string) error {
	seq := s.begin()
	var events []calendar.Event
	if err := s.client.Get(ctx, path, &events); err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.events = events
	})
	return nil
}
