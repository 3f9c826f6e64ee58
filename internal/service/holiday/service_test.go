package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type fakeHolidayRepo struct {
	entries []holiday.Entry
}

func (f *fakeHolidayRepo) Create(_ context.Context, entry holiday.Entry) (holiday.Entry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) ([]holiday.Entry, error) {
	matched := make([]holiday.Entry, 0)
	for _, entry := range f.entries {
		if entry.Date.Equal(date) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (f *fakeHolidayRepo) ListByYear(_ context.Context, year int) ([]holiday.Entry, error) {
	matched := make([]holiday.Entry, 0)
	for _, entry := range f.entries {
		if entry.Date.Year() == year {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (f *fakeHolidayRepo) ExistsOn(_ context.Context, name string, date time.Time) (bool, error) {
	for _, entry := range f.entries {
		if entry.Name == name && entry.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func newTestHolidayService(repo holiday.HolidayRepository) *HolidayServiceImpl {
	return &HolidayServiceImpl{
		HolidayRepository: repo,
		rules:             holiday.DefaultRules(),
	}
}

func TestRecurringRule_Matches(t *testing.T) {
	primary := holiday.RecurringRule{Department: "UJustBe", SundayOff: true, SaturdayOrdinals: []int{1, 3}}
	weekendsOff := holiday.RecurringRule{Department: "OrciCare", SundayOff: true, AllSaturdaysOff: true}

	cases := []struct {
		name     string
		rule     holiday.RecurringRule
		date     time.Time
		wantName string
		wantOK   bool
	}{
		{"sunday", primary, time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC), "Sunday Holiday", true},
		{"first saturday", primary, time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC), "1st/3rd Saturday Holiday", true},
		{"second saturday", primary, time.Date(2025, time.September, 13, 0, 0, 0, 0, time.UTC), "", false},
		{"third saturday", primary, time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC), "1st/3rd Saturday Holiday", true},
		{"fourth saturday", primary, time.Date(2025, time.September, 27, 0, 0, 0, 0, time.UTC), "", false},
		{"weekday", primary, time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), "", false},
		{"any saturday weekends-off", weekendsOff, time.Date(2025, time.September, 13, 0, 0, 0, 0, time.UTC), "Saturday Holiday", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			name, ok := c.rule.Matches(c.date)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.wantName, name)
		})
	}
}

func TestHolidayService_DepartmentsOn_SundayCoversAllRuleDepartments(t *testing.T) {
	svc := newTestHolidayService(&fakeHolidayRepo{})
	sunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)

	departments, err := svc.DepartmentsOn(context.Background(), sunday)

	require.NoError(t, err)
	assert.Contains(t, departments, "UJustBe")
	assert.Contains(t, departments, "OrciCare")
}

func TestHolidayService_DepartmentsOn_SecondSaturdayIsOrciCareOnly(t *testing.T) {
	svc := newTestHolidayService(&fakeHolidayRepo{})
	secondSaturday := time.Date(2025, time.September, 13, 0, 0, 0, 0, time.UTC)

	departments, err := svc.DepartmentsOn(context.Background(), secondSaturday)

	require.NoError(t, err)
	assert.NotContains(t, departments, "UJustBe")
	assert.Contains(t, departments, "OrciCare")
}

func TestHolidayService_EntriesOn_MergesDerivedWithSameName(t *testing.T) {
	svc := newTestHolidayService(&fakeHolidayRepo{})
	sunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)

	entries, err := svc.EntriesOn(context.Background(), sunday)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sunday Holiday", entries[0].Name)
	assert.True(t, entries[0].Recurring)
	assert.ElementsMatch(t, []string{"UJustBe", "OrciCare"}, entries[0].Departments)
}

func TestHolidayService_EntriesOn_IncludesPersisted(t *testing.T) {
	repo := &fakeHolidayRepo{}
	diwali := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	repo.entries = append(repo.entries, holiday.Entry{
		ID:          "h1",
		Name:        "Diwali",
		Date:        diwali,
		Departments: []string{"UJustBe", "OrciCare"},
	})
	svc := newTestHolidayService(repo)

	entries, err := svc.EntriesOn(context.Background(), diwali)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Diwali", entries[0].Name)
	assert.False(t, entries[0].Recurring)
}

func TestHolidayService_Add_RejectsDuplicate(t *testing.T) {
	svc := newTestHolidayService(&fakeHolidayRepo{})
	req := holiday.AddHolidayRequest{
		Name:        "Diwali",
		Date:        "2025-10-20",
		Departments: []string{"UJustBe"},
	}

	_, err := svc.Add(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestHolidayService_Add_ValidatesInput(t *testing.T) {
	svc := newTestHolidayService(&fakeHolidayRepo{})

	_, err := svc.Add(context.Background(), holiday.AddHolidayRequest{
		Name: "",
		Date: "20-10-2025",
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestHolidayService_MaterializeRecurring_Idempotent(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := newTestHolidayService(repo)
	// Mon Sep 1 through Sun Sep 7: one 1st Saturday and one Sunday.
	from := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.MaterializeRecurring(context.Background(), from, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = svc.MaterializeRecurring(context.Background(), from, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestHolidayService_Year_MaterializedEntriesListedOnce(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := newTestHolidayService(repo)
	from := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.MaterializeRecurring(context.Background(), from, 30)
	require.NoError(t, err)

	calendar, err := svc.Year(context.Background(), 2025)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, entry := range calendar {
		seen[entry.Name+"|"+entry.Date]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "holiday %s listed %d times", key, count)
	}
}

func TestHolidayService_EntriesOn_MaterializedEntryNotDuplicated(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := newTestHolidayService(repo)
	sunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.MaterializeRecurring(context.Background(), sunday, 1)
	require.NoError(t, err)

	entries, err := svc.EntriesOn(context.Background(), sunday)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sunday Holiday", entries[0].Name)
	// The persisted row wins over the derived one.
	assert.NotEmpty(t, entries[0].ID)
}

func TestHolidayService_Year_SortedAscending(t *testing.T) {
	repo := &fakeHolidayRepo{}
	repo.entries = append(repo.entries, holiday.Entry{
		ID:          "h1",
		Name:        "Diwali",
		Date:        time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		Departments: []string{"UJustBe"},
	})
	svc := newTestHolidayService(repo)

	calendar, err := svc.Year(context.Background(), 2025)

	require.NoError(t, err)
	require.NotEmpty(t, calendar)
	for i := 1; i < len(calendar); i++ {
		assert.LessOrEqual(t, calendar[i-1].Date, calendar[i].Date)
	}

	found := false
	for _, entry := range calendar {
		if entry.Name == "Diwali" {
			found = true
			assert.Equal(t, "2025-10-20", entry.Date)
		}
	}
	assert.True(t, found)
}
