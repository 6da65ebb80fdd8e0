package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance // keyed by shift id
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) UpsertClockIn(ctx context.Context, a *attendance.Attendance) error {
	// The conflicting row keeps its id, matching ON CONFLICT ... RETURNING id.
	if existing, ok := f.records[a.ShiftID]; ok {
		a.ID = existing.ID
	}
	cp := *a
	f.records[a.ShiftID] = &cp
	return nil
}

func (f *fakeAttendanceRepo) GetByShiftID(ctx context.Context, shiftID string) (*attendance.Attendance, error) {
	a, ok := f.records[shiftID]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendanceRepo) Complete(ctx context.Context, shiftID string, at time.Time) error {
	a, ok := f.records[shiftID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	a.ClockOut = &at
	a.Status = attendance.StatusCompleted
	return nil
}

func (f *fakeAttendanceRepo) MarkMissed(ctx context.Context, id, shiftID string) error {
	f.records[shiftID] = &attendance.Attendance{ID: id, ShiftID: shiftID, Status: attendance.StatusMissed}
	return nil
}

func (f *fakeAttendanceRepo) ListForShifts(ctx context.Context, shiftIDs []string) (map[string]*attendance.Attendance, error) {
	out := make(map[string]*attendance.Attendance)
	for _, id := range shiftIDs {
		if a, ok := f.records[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

type fakeShiftReader struct {
	shifts map[string]*shift.Shift
}

func newFakeShiftReader() *fakeShiftReader {
	return &fakeShiftReader{shifts: make(map[string]*shift.Shift)}
}

func (f *fakeShiftReader) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShiftReader) ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error) {
	var out []*shift.Detail
	for _, s := range f.shifts {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, &shift.Detail{Shift: *s})
		}
	}
	return out, nil
}

func (f *fakeShiftReader) CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error) {
	s, ok := f.shifts[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func seedShift(reader *fakeShiftReader, userID string, start time.Time) *shift.Shift {
	s := &shift.Shift{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoleID:    uuid.New().String(),
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Status:    shift.StatusPublished,
	}
	reader.shifts[s.ID] = s
	return s
}

func TestClockInNotOwner(t *testing.T) {
	reader := newFakeShiftReader()
	svc := NewAttendanceService(newFakeAttendanceRepo(), reader, fakeTx{})

	s := seedShift(reader, uuid.New().String(), time.Now())
	stranger := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}

	_, err := svc.ClockIn(context.Background(), stranger, attendance.ClockInRequest{ShiftID: s.ID})
	assert.ErrorIs(t, err, user.ErrNotResourceOwner)
}

func TestClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	reader := newFakeShiftReader()
	svc := NewAttendanceService(repo, reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	s := seedShift(reader, owner.UserID, time.Now())

	lat, lng := 40.7128, -74.006
	resp, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{
		ShiftID:  s.ID,
		Latitude: &lat, Longitude: &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnShift, resp.Status)
	require.NotNil(t, resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
}

func TestClockInTwiceLastWriteWins(t *testing.T) {
	repo := newFakeAttendanceRepo()
	reader := newFakeShiftReader()
	svc := NewAttendanceService(repo, reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	s := seedShift(reader, owner.UserID, time.Now())

	first, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{ShiftID: s.ID})
	require.NoError(t, err)
	second, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{ShiftID: s.ID})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, first.ID, repo.records[s.ID].ID)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	reader := newFakeShiftReader()
	svc := NewAttendanceService(newFakeAttendanceRepo(), reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	s := seedShift(reader, owner.UserID, time.Now())

	_, err := svc.ClockOut(context.Background(), owner, attendance.ClockOutRequest{ShiftID: s.ID})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutCompletesShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	reader := newFakeShiftReader()
	svc := NewAttendanceService(repo, reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	s := seedShift(reader, owner.UserID, time.Now())

	_, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{ShiftID: s.ID})
	require.NoError(t, err)

	resp, err := svc.ClockOut(context.Background(), owner, attendance.ClockOutRequest{ShiftID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, resp.Status)
	require.NotNil(t, resp.ClockOut)

	assert.Equal(t, shift.StatusCompleted, reader.shifts[s.ID].Status)
}

func TestTodayBoardEmployeeForbidden(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeShiftReader(), fakeTx{})

	employee := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	_, err := svc.TodayBoard(context.Background(), employee)
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestTodayBoardPairsAttendance(t *testing.T) {
	repo := newFakeAttendanceRepo()
	reader := newFakeShiftReader()
	svc := NewAttendanceService(repo, reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	clockedIn := seedShift(reader, owner.UserID, time.Now())
	seedShift(reader, uuid.New().String(), time.Now())

	_, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{ShiftID: clockedIn.ID})
	require.NoError(t, err)

	operator := user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	board, err := svc.TodayBoard(context.Background(), operator)
	require.NoError(t, err)
	require.Len(t, board, 2)

	withRecord := 0
	for _, entry := range board {
		if entry.Attendance != nil {
			withRecord++
			assert.Equal(t, clockedIn.ID, entry.Shift.ID)
		}
	}
	assert.Equal(t, 1, withRecord)
}

func TestGetForShiftOwnership(t *testing.T) {
	repo := newFakeAttendanceRepo()
	reader := newFakeShiftReader()
	svc := NewAttendanceService(repo, reader, fakeTx{})

	owner := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	s := seedShift(reader, owner.UserID, time.Now())
	_, err := svc.ClockIn(context.Background(), owner, attendance.ClockInRequest{ShiftID: s.ID})
	require.NoError(t, err)

	stranger := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	_, err = svc.GetForShift(context.Background(), stranger, s.ID)
	assert.ErrorIs(t, err, user.ErrNotResourceOwner)

	operator := user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	resp, err := svc.GetForShift(context.Background(), operator, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, resp.ShiftID)
}
