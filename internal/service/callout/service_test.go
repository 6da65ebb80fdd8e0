package callout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/shiftline-backend-go/internal/domain/callout"
	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/domain/workrole"
)

type fakeCalloutRepo struct {
	callouts []*callout.Callout
}

func (f *fakeCalloutRepo) Create(ctx context.Context, c *callout.Callout) error {
	cp := *c
	f.callouts = append(f.callouts, &cp)
	return nil
}

func (f *fakeCalloutRepo) ListOpen(ctx context.Context, now time.Time) ([]*callout.Detail, error) {
	var out []*callout.Detail
	for _, c := range f.callouts {
		out = append(out, &callout.Detail{Callout: *c})
	}
	return out, nil
}

func (f *fakeCalloutRepo) ListByUser(ctx context.Context, userID string) ([]*callout.Detail, error) {
	var out []*callout.Detail
	for _, c := range f.callouts {
		if c.UserID == userID {
			out = append(out, &callout.Detail{Callout: *c})
		}
	}
	return out, nil
}

type fakeShiftStore struct {
	shifts map[string]*shift.Shift
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{shifts: make(map[string]*shift.Shift)}
}

func (f *fakeShiftStore) Create(ctx context.Context, s *shift.Shift) error {
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeShiftStore) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShiftStore) Update(ctx context.Context, s *shift.Shift) error { return nil }
func (f *fakeShiftStore) Delete(ctx context.Context, id string) error      { return nil }

func (f *fakeShiftStore) Publish(ctx context.Context, ids []string, now time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeShiftStore) CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error) {
	s, ok := f.shifts[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (f *fakeShiftStore) ReassignOwner(ctx context.Context, id, newUserID string, now time.Time) error {
	return nil
}

func (f *fakeShiftStore) ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftStore) ListByUser(ctx context.Context, userID string, statuses []shift.Status) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftStore) NextForUser(ctx context.Context, userID string, after time.Time) (*shift.Detail, error) {
	return nil, shift.ErrShiftNotFound
}

func (f *fakeShiftStore) AddHistory(ctx context.Context, h *shift.HistoryEntry) error { return nil }

func (f *fakeShiftStore) ListHistory(ctx context.Context, shiftID string) ([]*shift.HistoryEntry, error) {
	return nil, nil
}

func (f *fakeShiftStore) ListReminderDue(ctx context.Context, now, until time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftStore) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	return false, nil
}

func (f *fakeShiftStore) ListMissedClockIn(ctx context.Context, cutoff time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftStore) MarkMissedFlagged(ctx context.Context, id string, now time.Time) (bool, error) {
	return false, nil
}

type fakeRoleRepo struct {
	roles map[string]*workrole.WorkRole
}

func (f *fakeRoleRepo) Create(ctx context.Context, r *workrole.WorkRole) error { return nil }

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (*workrole.WorkRole, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, workrole.ErrWorkRoleNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*workrole.WorkRole, error) {
	return nil, workrole.ErrWorkRoleNotFound
}

func (f *fakeRoleRepo) List(ctx context.Context) ([]*workrole.WorkRole, error) { return nil, nil }
func (f *fakeRoleRepo) Update(ctx context.Context, r *workrole.WorkRole) error { return nil }
func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error            { return nil }

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
	smsBody  string
}

func (f *fakeNotifier) Notify(ctx context.Context, userIDs []string, typ notification.Type, message string) error {
	f.notifies = append(f.notifies, notifyCall{userIDs: userIDs, typ: typ})
	return nil
}

func (f *fakeNotifier) EscalateSMS(userIDs []string, body string) {
	f.sms = append(f.sms, userIDs)
	f.smsBody = body
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

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	repo     *fakeCalloutRepo
	shifts   *fakeShiftStore
	notifier *fakeNotifier
	svc      callout.Service

	employee user.Actor
	op1, op2 *user.User
	shiftID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     &fakeCalloutRepo{},
		shifts:   newFakeShiftStore(),
		notifier: &fakeNotifier{},
		employee: user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee},
		op1:      &user.User{ID: uuid.New().String(), Role: user.RoleOperator},
		op2:      &user.User{ID: uuid.New().String(), Role: user.RoleOperator},
	}

	roleID := uuid.New().String()
	roles := &fakeRoleRepo{roles: map[string]*workrole.WorkRole{
		roleID: {ID: roleID, Name: "Server"},
	}}
	users := &fakeUserRepo{operators: []*user.User{f.op1, f.op2}}
	f.svc = NewCalloutService(f.repo, f.shifts, roles, users, f.notifier, fakeTx{})

	start := time.Now().Add(30 * time.Hour)
	publishedAt := start.Add(-72 * time.Hour)
	sh := &shift.Shift{
		ID:          uuid.New().String(),
		UserID:      f.employee.UserID,
		RoleID:      roleID,
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
		Status:      shift.StatusPublished,
		PublishedAt: &publishedAt,
	}
	f.shifts.shifts[sh.ID] = sh
	f.shiftID = sh.ID
	return f
}

func TestCreateNotOwner(t *testing.T) {
	f := newFixture(t)
	stranger := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}

	_, err := f.svc.Create(context.Background(), stranger, callout.CreateCalloutRequest{
		ShiftID: f.shiftID, Reason: "sick",
	})
	assert.ErrorIs(t, err, user.ErrNotResourceOwner)
	assert.Empty(t, f.repo.callouts)
}

func TestCreateCancelsShiftAndAlertsOperators(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), f.employee, callout.CreateCalloutRequest{
		ShiftID: f.shiftID, Reason: "sick",
	})
	require.NoError(t, err)
	assert.Equal(t, f.employee.UserID, resp.UserID)
	assert.Equal(t, "sick", resp.Reason)

	sh, err := f.shifts.GetByID(context.Background(), f.shiftID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusCancelled, sh.Status)

	require.Len(t, f.notifier.notifies, 1)
	assert.Equal(t, notification.TypeCallout, f.notifier.notifies[0].typ)
	assert.ElementsMatch(t, []string{f.op1.ID, f.op2.ID}, f.notifier.notifies[0].userIDs)

	require.Len(t, f.notifier.sms, 1)
	assert.ElementsMatch(t, []string{f.op1.ID, f.op2.ID}, f.notifier.sms[0])
	assert.Contains(t, f.notifier.smsBody, "Server")
}

func TestCreateShiftAlreadyResolved(t *testing.T) {
	f := newFixture(t)
	f.shifts.shifts[f.shiftID].Status = shift.StatusCancelled

	_, err := f.svc.Create(context.Background(), f.employee, callout.CreateCalloutRequest{
		ShiftID: f.shiftID, Reason: "sick",
	})
	assert.ErrorIs(t, err, shift.ErrShiftStateChanged)
	assert.Empty(t, f.notifier.sms)
}

func TestCreateUnpublishedShift(t *testing.T) {
	f := newFixture(t)
	f.shifts.shifts[f.shiftID].Status = shift.StatusDraft

	_, err := f.svc.Create(context.Background(), f.employee, callout.CreateCalloutRequest{
		ShiftID: f.shiftID, Reason: "sick",
	})
	assert.ErrorIs(t, err, shift.ErrShiftStateChanged)
}

func TestListOpenEmployeeForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListOpen(context.Background(), f.employee)
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestListByUserScoped(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.employee, callout.CreateCalloutRequest{
		ShiftID: f.shiftID, Reason: "sick",
	})
	require.NoError(t, err)

	stranger := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	_, err = f.svc.ListByUser(context.Background(), stranger, f.employee.UserID)
	assert.ErrorIs(t, err, user.ErrNotResourceOwner)

	own, err := f.svc.ListByUser(context.Background(), f.employee, f.employee.UserID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	operator := user.Actor{UserID: f.op1.ID, Role: user.RoleOperator}
	asOperator, err := f.svc.ListByUser(context.Background(), operator, f.employee.UserID)
	require.NoError(t, err)
	assert.Len(t, asOperator, 1)
}
