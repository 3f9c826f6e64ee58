package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, entry holiday.Entry) (holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, departments)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.Name,
		entry.Date,
		entry.Departments,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return holiday.Entry{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return entry, nil
}

// GetByDate implements holiday.HolidayRepository.
func (r *holidayRepository) GetByDate(ctx context.Context, date time.Time) ([]holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, departments, created_at
		FROM holidays
		WHERE date = $1::date
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays by date: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ListByYear implements holiday.HolidayRepository.
func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, departments, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ExistsOn implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsOn(ctx context.Context, name string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays WHERE name = $1 AND date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, name, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday existence: %w", err)
	}

	return exists, nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.Entry, error) {
	entries := make([]holiday.Entry, 0)
	for rows.Next() {
		var entry holiday.Entry
		if err := rows.Scan(
			&entry.ID, &entry.Name, &entry.Date, &entry.Departments, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("holiday rows iteration: %w", err)
	}
	return entries, nil
}
