package calendar

import "time"

// Event is a display-only projection of approved leave (or a holiday)
// onto the team calendar. Dates are date-only "2006-01-02" strings.
type Event struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	LeaveType string `json:"leave_type,omitempty"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	HalfDay   bool   `json:"half_day"`
	IsHoliday bool   `json:"is_holiday"`
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ContainsDay reports whether day falls inside [StartDate, EndDate],
// inclusive on both ends. Events with unparsable dates never match.
func (e Event) ContainsDay(day time.Time) bool {
	start, err := time.Parse(DateLayout, e.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, e.EndDate)
	if err != nil {
		return false
	}
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
