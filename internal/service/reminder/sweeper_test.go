package reminder

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type fakeShiftRepo struct {
	shifts map[string]*shift.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s *shift.Shift) error { return nil }

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s *shift.Shift) error { return nil }
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error      { return nil }

func (f *fakeShiftRepo) Publish(ctx context.Context, ids []string, now time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeShiftRepo) CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error) {
	return false, nil
}

func (f *fakeShiftRepo) ReassignOwner(ctx context.Context, id, newUserID string, now time.Time) error {
	return nil
}

func (f *fakeShiftRepo) ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftRepo) ListByUser(ctx context.Context, userID string, statuses []shift.Status) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftRepo) NextForUser(ctx context.Context, userID string, after time.Time) (*shift.Detail, error) {
	return nil, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) AddHistory(ctx context.Context, h *shift.HistoryEntry) error { return nil }

func (f *fakeShiftRepo) ListHistory(ctx context.Context, shiftID string) ([]*shift.HistoryEntry, error) {
	return nil, nil
}

func (f *fakeShiftRepo) ListReminderDue(ctx context.Context, now, until time.Time) ([]*shift.Detail, error) {
	var out []*shift.Detail
	for _, s := range f.shifts {
		if s.Status != shift.StatusPublished || s.ReminderSentAt != nil {
			continue
		}
		if s.StartTime.After(now) && !s.StartTime.After(until) {
			out = append(out, &shift.Detail{Shift: *s, RoleName: "Server"})
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	s, ok := f.shifts[id]
	if !ok || s.ReminderSentAt != nil {
		return false, nil
	}
	s.ReminderSentAt = &now
	return true, nil
}

func (f *fakeShiftRepo) ListMissedClockIn(ctx context.Context, cutoff time.Time) ([]*shift.Detail, error) {
	var out []*shift.Detail
	for _, s := range f.shifts {
		if s.Status != shift.StatusPublished || s.MissedFlaggedAt != nil {
			continue
		}
		if s.StartTime.Before(cutoff) {
			out = append(out, &shift.Detail{Shift: *s})
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) MarkMissedFlagged(ctx context.Context, id string, now time.Time) (bool, error) {
	s, ok := f.shifts[id]
	if !ok || s.MissedFlaggedAt != nil {
		return false, nil
	}
	s.MissedFlaggedAt = &now
	return true, nil
}

type fakeAttendanceRepo struct {
	missed []string
}

func (f *fakeAttendanceRepo) UpsertClockIn(ctx context.Context, a *attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByShiftID(ctx context.Context, shiftID string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Complete(ctx context.Context, shiftID string, at time.Time) error {
	return nil
}

func (f *fakeAttendanceRepo) MarkMissed(ctx context.Context, id, shiftID string) error {
	f.missed = append(f.missed, shiftID)
	return nil
}

func (f *fakeAttendanceRepo) ListForShifts(ctx context.Context, shiftIDs []string) (map[string]*attendance.Attendance, error) {
	return nil, nil
}

type fakeUserRepo struct {
	operators []*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, role *user.Role) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListOperators(ctx context.Context) ([]*user.User, error) {
	return f.operators, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) UpdateAvailability(ctx context.Context, userID string, avail user.Availability) error {
	return nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type notifyCall struct {
	userIDs []string
	typ     notification.Type
}

type fakeNotifier struct {
	notifies []notifyCall
	sms      [][]string
}

func (f *fakeNotifier) Notify(ctx context.Context, userIDs []string, typ notification.Type, message string) error {
	f.notifies = append(f.notifies, notifyCall{userIDs: userIDs, typ: typ})
	return nil
}

func (f *fakeNotifier) EscalateSMS(userIDs []string, body string) {
	f.sms = append(f.sms, userIDs)
}

func (f *fakeNotifier) List(ctx context.Context, actor user.Actor, unreadOnly bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) UnreadCount(ctx context.Context, actor user.Actor) (int, error) {
	return 0, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, actor user.Actor, id string) error { return nil }
func (f *fakeNotifier) MarkAllRead(ctx context.Context, actor user.Actor) error         { return nil }
func (f *fakeNotifier) Delete(ctx context.Context, actor user.Actor, id string) error   { return nil }
func (f *fakeNotifier) Stop()                                                           {}

func fixedNow() time.Time {
	return time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
}

func publishedShift(start time.Time, ownerID string) *shift.Shift {
	publishedAt := start.Add(-48 * time.Hour)
	return &shift.Shift{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		RoleID:      uuid.New().String(),
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
		Status:      shift.StatusPublished,
		PublishedAt: &publishedAt,
	}
}

func newTestSweeper(shifts *fakeShiftRepo, att *fakeAttendanceRepo, users *fakeUserRepo, notifier *fakeNotifier) *Sweeper {
	s := NewSweeper(shifts, att, users, notifier, slog.New(slog.DiscardHandler))
	s.now = fixedNow
	return s
}

func TestSweepRemindersNotifiesOnce(t *testing.T) {
	shifts := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	s := newTestSweeper(shifts, &fakeAttendanceRepo{}, &fakeUserRepo{}, notifier)

	ownerID := uuid.New().String()
	due := publishedShift(fixedNow().Add(20*time.Minute), ownerID)
	farOut := publishedShift(fixedNow().Add(2*time.Hour), uuid.New().String())
	shifts.shifts[due.ID] = due
	shifts.shifts[farOut.ID] = farOut

	require.NoError(t, s.SweepReminders(context.Background()))

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeReminder, notifier.notifies[0].typ)
	assert.Equal(t, []string{ownerID}, notifier.notifies[0].userIDs)
	assert.Len(t, notifier.sms, 1)
	assert.NotNil(t, due.ReminderSentAt)
	assert.Nil(t, farOut.ReminderSentAt)

	// A second sweep finds the stamp and stays quiet.
	require.NoError(t, s.SweepReminders(context.Background()))
	assert.Len(t, notifier.notifies, 1)
}

func TestSweepMissedClockIns(t *testing.T) {
	shifts := newFakeShiftRepo()
	att := &fakeAttendanceRepo{}
	notifier := &fakeNotifier{}
	op1 := &user.User{ID: uuid.New().String(), Role: user.RoleOperator}
	op2 := &user.User{ID: uuid.New().String(), Role: user.RoleOperator}
	users := &fakeUserRepo{operators: []*user.User{op1, op2}}
	s := newTestSweeper(shifts, att, users, notifier)

	late := publishedShift(fixedNow().Add(-15*time.Minute), uuid.New().String())
	inGrace := publishedShift(fixedNow().Add(-5*time.Minute), uuid.New().String())
	shifts.shifts[late.ID] = late
	shifts.shifts[inGrace.ID] = inGrace

	require.NoError(t, s.SweepMissedClockIns(context.Background()))

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeMissedClockIn, notifier.notifies[0].typ)
	assert.ElementsMatch(t, []string{op1.ID, op2.ID}, notifier.notifies[0].userIDs)

	assert.Equal(t, []string{late.ID}, att.missed)
	assert.NotNil(t, late.MissedFlaggedAt)
	assert.Nil(t, inGrace.MissedFlaggedAt)
}

func TestSweepMissedClockInsNothingDue(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestSweeper(newFakeShiftRepo(), &fakeAttendanceRepo{}, &fakeUserRepo{}, notifier)

	require.NoError(t, s.SweepMissedClockIns(context.Background()))
	assert.Empty(t, notifier.notifies)
}
