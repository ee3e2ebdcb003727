package store

import (
	"context"
	"io"
	"log/slog"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/report"
)

// ReportsStore caches leave usage report rows and exports them as CSV
type ReportsStore struct {
	state
	client *api.Client
	logger *slog.Logger
	rows   []report.LeaveReportRow
}

func NewReportsStore(client *api.Client, logger *slog.Logger) *ReportsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsStore{client: client, logger: logger}
}

func (s *ReportsStore) Rows() []report.LeaveReportRow {
	var out []report.LeaveReportRow
	s.read(func() {
		out = append(out, s.rows...)
	})
	return out
}

func (s *ReportsStore) Snapshot() Snapshot {
	return s.snapshot()
}

// Fetch replaces the cached report rows
func (s *ReportsStore) Fetch(ctx context.Context) error {
	seq := s.begin()
	var rows []report.LeaveReportRow
	if err := s.client.Get(ctx, "/api/reports/leave", &rows); err != nil {
		s.reject(seq, err)
		return err
	}
	s.fulfill(seq, func() {
		s.rows = rows
	})
	return nil
}

// ExportCSV writes the cached rows as CSV
func (s *ReportsStore) ExportCSV(w io.Writer) error {
	return report.WriteCSV(w, s.Rows())
}
