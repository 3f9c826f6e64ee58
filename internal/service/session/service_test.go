package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
)

// fakeSessionRepo applies mutators in memory with the same skip-write
// contract as the real store.
type fakeSessionRepo struct {
	records map[string]session.Record
	getErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{records: make(map[string]session.Record)}
}

func sessionKey(employeeID, dateKey string) string {
	return employeeID + "|" + dateKey
}

func (f *fakeSessionRepo) Get(_ context.Context, employeeID string, dateKey string) (session.Record, error) {
	if f.getErr != nil {
		return session.Record{}, f.getErr
	}
	rec, ok := f.records[sessionKey(employeeID, dateKey)]
	if !ok {
		return session.Record{}, session.ErrSessionNotFound
	}
	return rec, nil
}

func (f *fakeSessionRepo) Upsert(_ context.Context, employeeID string, dateKey string, fn session.Mutator) (session.Record, error) {
	key := sessionKey(employeeID, dateKey)
	rec, exists := f.records[key]
	if !exists {
		rec = session.Record{EmployeeID: employeeID, DateKey: dateKey, Breaks: []session.BreakInterval{}}
	}

	if err := fn(&rec, exists); err != nil {
		if errors.Is(err, session.ErrSkipWrite) {
			return rec, nil
		}
		return session.Record{}, err
	}

	f.records[key] = rec
	return rec, nil
}

func (f *fakeSessionRepo) ListByEmployee(_ context.Context, employeeID string) ([]session.Record, error) {
	records := make([]session.Record, 0)
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func newTestSessionService(repo session.SessionRepository, now time.Time) *SessionServiceImpl {
	return &SessionServiceImpl{
		SessionRepository: repo,
		loc:               time.UTC,
		now:               func() time.Time { return now },
	}
}

func TestSessionService_Login_CreatesRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 30, 0, 0, time.UTC)
	svc := newTestSessionService(repo, loginAt)

	resp, err := svc.Login(ctx, "9876543210")

	require.NoError(t, err)
	assert.Equal(t, "9876543210", resp.EmployeeID)
	assert.Equal(t, "2025-09-01", resp.Date)
	require.NotNil(t, resp.LoginTime)
	assert.Equal(t, loginAt.Format(time.RFC3339), *resp.LoginTime)
	assert.Nil(t, resp.LogoutTime)
	assert.Empty(t, resp.Breaks)
}

func TestSessionService_Login_SecondLoginKeepsOriginalTime(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	firstLogin := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestSessionService(repo, firstLogin)
	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	// Re-login later the same day, e.g. after a page reload.
	svc.now = func() time.Time { return firstLogin.Add(2 * time.Hour) }
	resp, err := svc.Login(ctx, "9876543210")

	require.NoError(t, err)
	require.NotNil(t, resp.LoginTime)
	assert.Equal(t, firstLogin.Format(time.RFC3339), *resp.LoginTime)
}

func TestSessionService_Logout_ClosesSession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestSessionService(repo, loginAt)
	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	logoutAt := loginAt.Add(8 * time.Hour)
	svc.now = func() time.Time { return logoutAt }
	resp, err := svc.Logout(ctx, "9876543210")

	require.NoError(t, err)
	require.NotNil(t, resp.LogoutTime)
	assert.Equal(t, logoutAt.Format(time.RFC3339), *resp.LogoutTime)
}

func TestSessionService_Logout_WithoutLoginIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	now := time.Date(2025, time.September, 1, 18, 0, 0, 0, time.UTC)
	svc := newTestSessionService(repo, now)

	resp, err := svc.Logout(ctx, "9876543210")

	require.NoError(t, err)
	assert.Nil(t, resp.LoginTime)
	assert.Nil(t, resp.LogoutTime)
	assert.Empty(t, repo.records)
}

func TestSessionService_Logout_AlreadyLoggedOutIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestSessionService(repo, loginAt)
	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	firstLogout := loginAt.Add(8 * time.Hour)
	svc.now = func() time.Time { return firstLogout }
	_, err = svc.Logout(ctx, "9876543210")
	require.NoError(t, err)

	svc.now = func() time.Time { return firstLogout.Add(time.Hour) }
	resp, err := svc.Logout(ctx, "9876543210")

	require.NoError(t, err)
	require.NotNil(t, resp.LogoutTime)
	assert.Equal(t, firstLogout.Format(time.RFC3339), *resp.LogoutTime)
}

func TestSessionService_ToggleBreak_OpensThenCloses(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestSessionService(repo, loginAt)
	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	breakStart := loginAt.Add(3 * time.Hour)
	svc.now = func() time.Time { return breakStart }
	resp, err := svc.ToggleBreak(ctx, "9876543210")
	require.NoError(t, err)
	require.NotNil(t, resp.OnBreak)
	assert.Equal(t, breakStart.Format(time.RFC3339), *resp.OnBreak)
	assert.Empty(t, resp.Breaks)

	breakEnd := breakStart.Add(55 * time.Minute)
	svc.now = func() time.Time { return breakEnd }
	resp, err = svc.ToggleBreak(ctx, "9876543210")
	require.NoError(t, err)
	assert.Nil(t, resp.OnBreak)
	require.Len(t, resp.Breaks, 1)
	assert.Equal(t, breakStart.Format(time.RFC3339), resp.Breaks[0].Start)
	assert.Equal(t, breakEnd.Format(time.RFC3339), resp.Breaks[0].End)
	assert.Equal(t, "0 hr 55 min", resp.TotalBreak)
}

func TestSessionService_ToggleBreak_WithoutLoginIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestSessionService(repo, now)

	resp, err := svc.ToggleBreak(ctx, "9876543210")

	require.NoError(t, err)
	assert.Nil(t, resp.OnBreak)
	assert.Empty(t, repo.records)
}

func TestSessionService_ToggleBreak_AccumulatesIntervals(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	svc := newTestSessionService(repo, loginAt)
	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	steps := []struct {
		at      time.Time
		open    bool
		closedN int
	}{
		{loginAt.Add(1 * time.Hour), true, 0},
		{loginAt.Add(1*time.Hour + 30*time.Minute), false, 1},
		{loginAt.Add(4 * time.Hour), true, 1},
		{loginAt.Add(4*time.Hour + 45*time.Minute), false, 2},
	}

	var resp session.SessionResponse
	for _, step := range steps {
		svc.now = func() time.Time { return step.at }
		resp, err = svc.ToggleBreak(ctx, "9876543210")
		require.NoError(t, err)
		assert.Equal(t, step.open, resp.OnBreak != nil)
		assert.Len(t, resp.Breaks, step.closedN)
	}

	assert.Equal(t, "1 hr 15 min", resp.TotalBreak)
}

func TestSessionService_Today_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC))

	_, err := svc.Today(ctx, "9876543210")

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionService_Today_WrapsStoreError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	repo.getErr = errors.New("connection reset")
	svc := newTestSessionService(repo, time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC))

	_, err := svc.Today(ctx, "9876543210")

	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionService_Today_ReturnsCurrentRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSessionRepo()
	loginAt := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionService(repo, loginAt)

	_, err := svc.Login(ctx, "9876543210")
	require.NoError(t, err)

	resp, err := svc.Today(ctx, "9876543210")

	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", resp.Date)
	require.NotNil(t, resp.LoginTime)
}

func TestFormatBreakDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 hr 0 min"},
		{55 * time.Minute, "0 hr 55 min"},
		{90 * time.Minute, "1 hr 30 min"},
		{2*time.Hour + 59*time.Second, "2 hr 0 min"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, session.FormatBreakDuration(c.d))
	}
}
