package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	employee_id, to_char(work_date, 'YYYY-MM-DD'),
	login_time, logout_time, break_started_at, breaks,
	created_at, updated_at
`

// Get implements session.SessionRepository.
func (r *sessionRepository) Get(ctx context.Context, employeeID string, dateKey string) (session.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND work_date = $2::date
	`

	rec, err := scanSessionRecord(q.QueryRow(ctx, query, employeeID, dateKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Record{}, session.ErrSessionNotFound
		}
		return session.Record{}, fmt.Errorf("failed to get session record: %w", err)
	}

	return rec, nil
}

// Upsert implements session.SessionRepository. The row is created if absent
// and then locked for the duration of the mutator, which serializes
// concurrent mutations on the same (employee, date) key.
func (r *sessionRepository) Upsert(ctx context.Context, employeeID string, dateKey string, fn session.Mutator) (session.Record, error) {
	var out session.Record

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO attendance_sessions (employee_id, work_date)
			VALUES ($1, $2::date)
			ON CONFLICT (employee_id, work_date) DO NOTHING
		`, employeeID, dateKey)
		if err != nil {
			return fmt.Errorf("failed to ensure session row: %w", err)
		}
		inserted := tag.RowsAffected() == 1

		rec, err := scanSessionRecord(tx.QueryRow(ctx, `
			SELECT `+sessionColumns+`
			FROM attendance_sessions
			WHERE employee_id = $1
			  AND work_date = $2::date
			FOR UPDATE
		`, employeeID, dateKey))
		if err != nil {
			return fmt.Errorf("failed to lock session row: %w", err)
		}

		if err := fn(&rec, !inserted); err != nil {
			if errors.Is(err, session.ErrSkipWrite) {
				// The mutator declined to write. Drop the placeholder
				// row if this call created it.
				if inserted {
					if _, delErr := tx.Exec(ctx, `
						DELETE FROM attendance_sessions
						WHERE employee_id = $1
						  AND work_date = $2::date
						  AND login_time IS NULL
					`, employeeID, dateKey); delErr != nil {
						return fmt.Errorf("failed to drop placeholder session row: %w", delErr)
					}
				}
				out = rec
				return nil
			}
			return err
		}

		breaksJSON, err := json.Marshal(rec.Breaks)
		if err != nil {
			return fmt.Errorf("failed to encode breaks: %w", err)
		}

		err = tx.QueryRow(ctx, `
			UPDATE attendance_sessions
			SET login_time = $3,
			    logout_time = $4,
			    break_started_at = $5,
			    breaks = $6,
			    updated_at = NOW()
			WHERE employee_id = $1
			  AND work_date = $2::date
			RETURNING updated_at
		`, employeeID, dateKey,
			rec.LoginTime, rec.LogoutTime, rec.BreakStartedAt, breaksJSON,
		).Scan(&rec.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to update session row: %w", err)
		}

		out = rec
		return nil
	})
	if err != nil {
		return session.Record{}, err
	}

	return out, nil
}

// ListByEmployee implements session.SessionRepository.
func (r *sessionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]session.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		ORDER BY work_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}
	defer rows.Close()

	records := make([]session.Record, 0)
	for rows.Next() {
		rec, err := scanSessionRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session rows iteration: %w", err)
	}

	return records, nil
}

func scanSessionRecord(row pgx.Row) (session.Record, error) {
	var rec session.Record
	var breaksRaw []byte

	err := row.Scan(
		&rec.EmployeeID, &rec.DateKey,
		&rec.LoginTime, &rec.LogoutTime, &rec.BreakStartedAt, &breaksRaw,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return session.Record{}, err
	}

	breaks, err := decodeBreaks(breaksRaw)
	if err != nil {
		return session.Record{}, err
	}
	rec.Breaks = breaks

	return rec, nil
}

// decodeBreaks accepts the canonical interval array, plus the legacy
// document shape where a day held an array of sessions each carrying its
// own breaks (first session wins). Business logic above this boundary only
// ever sees the flat shape.
func decodeBreaks(raw []byte) ([]session.BreakInterval, error) {
	if len(raw) == 0 {
		return []session.BreakInterval{}, nil
	}

	var breaks []session.BreakInterval
	if err := json.Unmarshal(raw, &breaks); err == nil {
		return breaks, nil
	}

	var legacy struct {
		Sessions []struct {
			Breaks []session.BreakInterval `json:"breaks"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("failed to decode breaks payload: %w", err)
	}
	if len(legacy.Sessions) == 0 {
		return []session.BreakInterval{}, nil
	}
	if legacy.Sessions[0].Breaks == nil {
		return []session.BreakInterval{}, nil
	}
	return legacy.Sessions[0].Breaks, nil
}
