package report

// LeaveReportRow is one line of the leave usage report
type LeaveReportRow struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	Department string  `json:"department"`
	Team       string  `json:"team"`
	LeaveType  string  `json:"leave_type"`
	UsedDays   float64 `json:"used_days"`
	TotalDays  float64 `json:"total_days"`
	Pending    int     `json:"pending"`
	Approved   int     `json:"approved"`
	Rejected   int     `json:"rejected"`
}
