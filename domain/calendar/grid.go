package calendar

import "time"

// GridCells is the fixed size of a month grid: six rows of seven days
const GridCells = 6 * 7

// Cell is one slot in the month grid. Blank cells pad the first and
// last weeks so the grid always holds GridCells entries.
type Cell struct {
	Day    int // 1-based day of month, 0 for a blank cell
	Date   time.Time
	Events []Event
}

// Blank reports whether the cell is an alignment pad
func (c Cell) Blank() bool {
	return c.Day == 0
}

// MonthGrid lays out the given month as a 6x7 grid. Weeks start on
// Sunday; leading blanks cover the weekdays before the 1st. Each
// in-month cell carries the events whose date range contains that day.
func MonthGrid(year int, month time.Month, events []Event) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	cells := make([]Cell, GridCells)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cells[lead+day-1] = Cell{
			Day:    day,
			Date:   date,
			Events: EventsOn(events, date),
		}
	}
	return cells
}

// EventsOn filters events to those containing the given day, inclusive
// on both interval ends. Events lacking a parsable date are excluded.
func EventsOn(events []Event, day time.Time) []Event {
	var matched []Event
	for _, e := range events {
		if e.ContainsDay(day) {
			matched = append(matched, e)
		}
	}
	return matched
}

// AddMonths shifts a (year, month) pair by delta months, with year
// rollover handled by normal date arithmetic.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
