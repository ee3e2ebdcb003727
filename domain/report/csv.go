package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"user_id", "user_name", "department", "team", "leave_type",
	"used_days", "total_days", "pending", "approved", "rejected",
}

// WriteCSV renders report rows as CSV, header first
func WriteCSV(w io.Writer, rows []LeaveReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.UserID,
			row.UserName,
			row.Department,
			row.Team,
			row.LeaveType,
			formatDays(row.UsedDays),
			formatDays(row.TotalDays),
			strconv.Itoa(row.Pending),
			strconv.Itoa(row.Approved),
			strconv.Itoa(row.Rejected),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
