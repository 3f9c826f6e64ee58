package report

// Attendance row statuses. DetermineStatus returns exactly one of these (or
// the "On Leave (<type>)" form built by OnLeaveStatus).
const (
	StatusPresent   = "Present"
	StatusOngoing   = "Ongoing"
	StatusForgot    = "Forgot to Mark Attendance"
	StatusNotMarked = "-"
)

// OnLeaveStatus renders the leave row status for a leave type.
func OnLeaveStatus(leaveType string) string {
	if leaveType == "" {
		leaveType = "N/A"
	}
	return "On Leave (" + leaveType + ")"
}

// PresentRow is one employee in the Present bucket.
type PresentRow struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	LoginTime  string `json:"login_time"`
}

// LeaveRow is one employee in the On-Leave bucket. LeaveStatus is resolved
// by precedence Approved > Pending > Declined across overlapping requests.
type LeaveRow struct {
	Name        string `json:"name"`
	Department  string `json:"department"`
	LeaveStatus string `json:"leave_status"`
}

// Row is one employee in the Not-Marked or On-Holiday bucket.
type Row struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Report is the four-bucket daily attendance report. Every active employee
// lands in exactly one bucket.
type Report struct {
	Date      string       `json:"date"`
	Present   []PresentRow `json:"present"`
	OnLeave   []LeaveRow   `json:"on_leave"`
	NotMarked []Row        `json:"not_marked"`
	OnHoliday []Row        `json:"on_holiday"`
}

// HistoryRow is one day in an employee's attendance history view.
type HistoryRow struct {
	Month      string  `json:"month"`
	Date       string  `json:"date"`
	LoginTime  *string `json:"login_time"`
	LogoutTime *string `json:"logout_time"`
	TotalBreak string  `json:"total_break"`
	Status     string  `json:"status"`
	Holiday    bool    `json:"holiday"`
}
