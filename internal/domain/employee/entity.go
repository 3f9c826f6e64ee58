package employee

import (
	"strings"
	"time"
)

// Employment statuses. Resigned and terminated employees keep their history
// but are excluded from attendance reporting.
const (
	StatusActive     = "active"
	StatusResigned   = "resigned"
	StatusTerminated = "terminated"
)

type Employee struct {
	// ID is the employee's phone number, used as the foreign key into
	// sessions and leave requests.
	ID         string
	Name       string
	Department string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Reportable reports whether the employee takes part in attendance reporting.
func (e Employee) Reportable() bool {
	switch strings.ToLower(e.Status) {
	case StatusResigned, StatusTerminated:
		return false
	}
	return true
}
