package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
)

// SessionServiceImpl is the break/session lifecycle manager. All mutation
// goes through the repository's per-key Upsert, which serializes concurrent
// events for the same employee-day.
type SessionServiceImpl struct {
	session.SessionRepository
	loc *time.Location
	now func() time.Time
}

func NewSessionService(repo session.SessionRepository, loc *time.Location) session.SessionService {
	return &SessionServiceImpl{
		SessionRepository: repo,
		loc:               loc,
		now:               time.Now,
	}
}

func (s *SessionServiceImpl) todayKey() string {
	return session.DateKeyFor(s.now(), s.loc)
}

// Login implements session.SessionService. First login of the day creates
// the record; any later call returns the stored login time unchanged, so a
// client may re-login across page reloads without moving its clock-in.
func (s *SessionServiceImpl) Login(ctx context.Context, employeeID string) (session.SessionResponse, error) {
	now := s.now()

	rec, err := s.SessionRepository.Upsert(ctx, employeeID, s.todayKey(), func(rec *session.Record, exists bool) error {
		if exists && rec.LoginTime != nil {
			return session.ErrSkipWrite
		}
		rec.LoginTime = &now
		return nil
	})
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to record login: %w", err)
	}

	return session.ToResponse(rec), nil
}

// Logout implements session.SessionService. Logging out with no session
// record, or one that is already closed, succeeds without mutating the
// store; client and server state can diverge across reloads and the UI must
// degrade gracefully.
func (s *SessionServiceImpl) Logout(ctx context.Context, employeeID string) (session.SessionResponse, error) {
	now := s.now()

	rec, err := s.SessionRepository.Upsert(ctx, employeeID, s.todayKey(), func(rec *session.Record, exists bool) error {
		if !exists || rec.LoginTime == nil {
			return session.ErrSkipWrite
		}
		if rec.LogoutTime != nil {
			return session.ErrSkipWrite
		}
		rec.LogoutTime = &now
		return nil
	})
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to record logout: %w", err)
	}

	return session.ToResponse(rec), nil
}

// ToggleBreak implements session.SessionService. The open-break marker and
// the closed-interval list are updated in one atomic mutation, so two
// racing toggles can never leave two breaks open or drop a break-end.
func (s *SessionServiceImpl) ToggleBreak(ctx context.Context, employeeID string) (session.SessionResponse, error) {
	now := s.now()

	rec, err := s.SessionRepository.Upsert(ctx, employeeID, s.todayKey(), func(rec *session.Record, exists bool) error {
		if !exists || rec.LoginTime == nil {
			return session.ErrSkipWrite
		}

		state := rec.BreakState()
		if !state.Open {
			rec.BreakStartedAt = &now
			return nil
		}

		rec.Breaks = append(rec.Breaks, session.BreakInterval{
			Start: state.StartedAt,
			End:   now,
		})
		rec.BreakStartedAt = nil
		return nil
	})
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to toggle break: %w", err)
	}

	return session.ToResponse(rec), nil
}

// Today implements session.SessionService.
func (s *SessionServiceImpl) Today(ctx context.Context, employeeID string) (session.SessionResponse, error) {
	rec, err := s.SessionRepository.Get(ctx, employeeID, s.todayKey())
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.SessionResponse{}, session.ErrSessionNotFound
		}
		return session.SessionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}

	return session.ToResponse(rec), nil
}
