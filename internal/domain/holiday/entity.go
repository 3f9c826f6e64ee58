package holiday

import "time"

// Entry is a holiday for a set of departments on one date. Entries come from
// two sources: rows persisted by admins, and recurring rules evaluated on
// the fly per query date.
type Entry struct {
	ID          string
	Name        string
	Date        time.Time
	Departments []string

	// Recurring marks derived entries that are not persisted.
	Recurring bool

	CreatedAt time.Time
}

// AppliesTo reports whether the entry covers the given department.
func (e Entry) AppliesTo(department string) bool {
	for _, d := range e.Departments {
		if d == department {
			return true
		}
	}
	return false
}

// RecurringRule derives weekly holidays for one department.
type RecurringRule struct {
	Department string

	// SundayOff grants every Sunday.
	SundayOff bool

	// SaturdayOrdinals grants the nth Saturdays of each month (1-5).
	// Empty with AllSaturdaysOff false means Saturdays are working days.
	SaturdayOrdinals []int

	// AllSaturdaysOff grants every Saturday regardless of ordinal.
	AllSaturdaysOff bool
}

// Matches reports whether date is a holiday under the rule, along with a
// display name for the derived entry.
func (r RecurringRule) Matches(date time.Time) (string, bool) {
	switch date.Weekday() {
	case time.Sunday:
		if r.SundayOff {
			return "Sunday Holiday", true
		}
	case time.Saturday:
		if r.AllSaturdaysOff {
			return "Saturday Holiday", true
		}
		ordinal := (date.Day() + 6) / 7
		for _, n := range r.SaturdayOrdinals {
			if ordinal == n {
				return "1st/3rd Saturday Holiday", true
			}
		}
	}
	return "", false
}

// DefaultRules mirrors the org's standing weekly-off policy: the flagship
// department takes Sundays plus 1st/3rd Saturdays, OrciCare takes every
// weekend day.
func DefaultRules() []RecurringRule {
	return []RecurringRule{
		{Department: "UJustBe", SundayOff: true, SaturdayOrdinals: []int{1, 3}},
		{Department: "OrciCare", SundayOff: true, AllSaturdaysOff: true},
	}
}
