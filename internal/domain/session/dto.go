package session

import "time"

// SessionResponse mirrors one day's record. OnBreak is the open break start
// when a break is in progress; clients render the elapsed-break timer from
// it and must treat the server value as authoritative across reloads.
type SessionResponse struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	LoginTime  *string         `json:"login_time"`
	LogoutTime *string         `json:"logout_time"`
	OnBreak    *string         `json:"on_break,omitempty"`
	Breaks     []BreakResponse `json:"breaks"`
	TotalBreak string          `json:"total_break"`
}

type BreakResponse struct {
	Start string `json:"break_start"`
	End   string `json:"break_end"`
}

// ToResponse maps a record to its transport shape.
func ToResponse(rec Record) SessionResponse {
	resp := SessionResponse{
		EmployeeID: rec.EmployeeID,
		Date:       rec.DateKey,
		LoginTime:  timePtrToString(rec.LoginTime),
		LogoutTime: timePtrToString(rec.LogoutTime),
		OnBreak:    timePtrToString(rec.BreakStartedAt),
		Breaks:     make([]BreakResponse, 0, len(rec.Breaks)),
		TotalBreak: FormatBreakDuration(rec.TotalBreak()),
	}
	for _, b := range rec.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Start: b.Start.Format(time.RFC3339),
			End:   b.End.Format(time.RFC3339),
		})
	}
	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}
