package holiday

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

// HolidayServiceImpl resolves the holiday calendar from two sources: rows
// persisted by admins and recurring weekly-off rules evaluated per date.
// Derived entries are never persisted unless materialization is enabled.
type HolidayServiceImpl struct {
	holiday.HolidayRepository
	rules []holiday.RecurringRule
}

func NewHolidayService(repo holiday.HolidayRepository, rules []holiday.RecurringRule) holiday.HolidayService {
	if rules == nil {
		rules = holiday.DefaultRules()
	}
	return &HolidayServiceImpl{
		HolidayRepository: repo,
		rules:             rules,
	}
}

// EntriesOn implements holiday.HolidayService.
func (s *HolidayServiceImpl) EntriesOn(ctx context.Context, date time.Time) ([]holiday.Entry, error) {
	persisted, err := s.HolidayRepository.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays for date: %w", err)
	}

	return mergeDerived(persisted, s.derivedOn(date)), nil
}

// DepartmentsOn implements holiday.HolidayService.
func (s *HolidayServiceImpl) DepartmentsOn(ctx context.Context, date time.Time) (map[string]struct{}, error) {
	entries, err := s.EntriesOn(ctx, date)
	if err != nil {
		return nil, err
	}

	departments := make(map[string]struct{})
	for _, entry := range entries {
		for _, dept := range entry.Departments {
			departments[dept] = struct{}{}
		}
	}
	return departments, nil
}

// Year implements holiday.HolidayService.
func (s *HolidayServiceImpl) Year(ctx context.Context, year int) ([]holiday.EntryResponse, error) {
	persisted, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	derived := make([]holiday.Entry, 0)
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		derived = append(derived, s.derivedOn(d)...)
	}
	all := mergeDerived(persisted, derived)

	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })

	responses := make([]holiday.EntryResponse, 0, len(all))
	for _, entry := range all {
		responses = append(responses, holiday.ToResponse(entry))
	}
	return responses, nil
}

// Add implements holiday.HolidayService.
func (s *HolidayServiceImpl) Add(ctx context.Context, req holiday.AddHolidayRequest) (holiday.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	exists, err := s.HolidayRepository.ExistsOn(ctx, req.Name, date)
	if err != nil {
		return holiday.EntryResponse{}, fmt.Errorf("failed to check holiday existence: %w", err)
	}
	if exists {
		return holiday.EntryResponse{}, holiday.ErrHolidayExists
	}

	entry, err := s.HolidayRepository.Create(ctx, holiday.Entry{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Date:        date,
		Departments: req.Departments,
	})
	if err != nil {
		return holiday.EntryResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToResponse(entry), nil
}

// MaterializeRecurring implements holiday.HolidayService. Persists derived
// entries for the coming window so downstream consumers that only read the
// holidays table see the weekly offs too. Skips dates already covered.
func (s *HolidayServiceImpl) MaterializeRecurring(ctx context.Context, from time.Time, days int) (int, error) {
	created := 0

	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		for _, entry := range s.derivedOn(date) {
			exists, err := s.HolidayRepository.ExistsOn(ctx, entry.Name, entry.Date)
			if err != nil {
				return created, fmt.Errorf("failed to check holiday existence: %w", err)
			}
			if exists {
				continue
			}

			entry.ID = uuid.NewString()
			entry.Recurring = false
			if _, err := s.HolidayRepository.Create(ctx, entry); err != nil {
				return created, fmt.Errorf("failed to materialize holiday: %w", err)
			}
			created++
		}
	}

	return created, nil
}

// mergeDerived appends derived entries whose (name, date) is not already
// persisted. A materialized weekly off exists in both sources; the persisted
// row wins so the calendar never lists the same holiday twice.
func mergeDerived(persisted []holiday.Entry, derived []holiday.Entry) []holiday.Entry {
	seen := make(map[string]struct{}, len(persisted))
	for _, entry := range persisted {
		seen[entryKey(entry)] = struct{}{}
	}

	out := persisted
	for _, entry := range derived {
		if _, ok := seen[entryKey(entry)]; ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func entryKey(entry holiday.Entry) string {
	return entry.Name + "|" + entry.Date.Format("2006-01-02")
}

// derivedOn evaluates the recurring rules for one date. Rules producing the
// same display name are merged into a single entry covering every matching
// department, mirroring how persisted entries carry department sets.
func (s *HolidayServiceImpl) derivedOn(date time.Time) []holiday.Entry {
	byName := make(map[string]*holiday.Entry)
	order := make([]string, 0, 2)

	for _, rule := range s.rules {
		name, ok := rule.Matches(date)
		if !ok {
			continue
		}
		entry, seen := byName[name]
		if !seen {
			entry = &holiday.Entry{
				Name:      name,
				Date:      date,
				Recurring: true,
			}
			byName[name] = entry
			order = append(order, name)
		}
		entry.Departments = append(entry.Departments, rule.Department)
	}

	entries := make([]holiday.Entry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *byName[name])
	}
	return entries
}
