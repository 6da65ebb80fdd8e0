package shift

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type fakeShiftRepo struct {
	shifts  map[string]*shift.Shift
	history []*shift.HistoryEntry
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s *shift.Shift) error {
	cp := *s
	f.shifts[s.ID] = &cp
	return nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s *shift.Shift) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	cp := *s
	f.shifts[s.ID] = &cp
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) Publish(ctx context.Context, ids []string, now time.Time) ([]string, error) {
	var owners []string
	for _, id := range ids {
		s, ok := f.shifts[id]
		if !ok || s.PublishedAt != nil {
			continue
		}
		published := now
		s.PublishedAt = &published
		s.Status = shift.StatusPublished
		owners = append(owners, s.UserID)
	}
	return owners, nil
}

func (f *fakeShiftRepo) CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error) {
	s, ok := f.shifts[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (f *fakeShiftRepo) ReassignOwner(ctx context.Context, id, newUserID string, now time.Time) error {
	s, ok := f.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	s.UserID = newUserID
	return nil
}

func (f *fakeShiftRepo) ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error) {
	var out []*shift.Detail
	for _, s := range f.shifts {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, &shift.Detail{Shift: *s})
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByUser(ctx context.Context, userID string, statuses []shift.Status) ([]*shift.Detail, error) {
	var out []*shift.Detail
	for _, s := range f.shifts {
		if s.UserID != userID {
			continue
		}
		for _, st := range statuses {
			if s.Status == st {
				out = append(out, &shift.Detail{Shift: *s})
				break
			}
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) NextForUser(ctx context.Context, userID string, after time.Time) (*shift.Detail, error) {
	var next *shift.Shift
	for _, s := range f.shifts {
		if s.UserID != userID || s.Status != shift.StatusPublished || !s.StartTime.After(after) {
			continue
		}
		if next == nil || s.StartTime.Before(next.StartTime) {
			next = s
		}
	}
	if next == nil {
		return nil, shift.ErrShiftNotFound
	}
	return &shift.Detail{Shift: *next}, nil
}

func (f *fakeShiftRepo) AddHistory(ctx context.Context, h *shift.HistoryEntry) error {
	f.history = append(f.history, h)
	return nil
}

func (f *fakeShiftRepo) ListHistory(ctx context.Context, shiftID string) ([]*shift.HistoryEntry, error) {
	var out []*shift.HistoryEntry
	for _, h := range f.history {
		if h.ShiftID == shiftID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListReminderDue(ctx context.Context, now, until time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftRepo) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	return false, nil
}

func (f *fakeShiftRepo) ListMissedClockIn(ctx context.Context, cutoff time.Time) ([]*shift.Detail, error) {
	return nil, nil
}

func (f *fakeShiftRepo) MarkMissedFlagged(ctx context.Context, id string, now time.Time) (bool, error) {
	return false, nil
}

type notifyCall struct {
	userIDs []string
	typ     notification.Type
	message string
}

type smsCall struct {
	userIDs []string
	body    string
}

type fakeNotifier struct {
	notifies []notifyCall
	sms      []smsCall
}

func (f *fakeNotifier) Notify(ctx context.Context, userIDs []string, typ notification.Type, message string) error {
	f.notifies = append(f.notifies, notifyCall{userIDs: userIDs, typ: typ, message: message})
	return nil
}

func (f *fakeNotifier) EscalateSMS(userIDs []string, body string) {
	f.sms = append(f.sms, smsCall{userIDs: userIDs, body: body})
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

var (
	operator = user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	employee = user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
)

func newTestService(repo *fakeShiftRepo, notifier *fakeNotifier) shift.Service {
	return NewShiftService(repo, notifier, fakeTx{})
}

func seedShift(repo *fakeShiftRepo, userID string, start time.Time, status shift.Status, published bool) *shift.Shift {
	s := &shift.Shift{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoleID:    uuid.New().String(),
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Status:    status,
	}
	if published {
		publishedAt := start.Add(-24 * time.Hour)
		s.PublishedAt = &publishedAt
	}
	repo.shifts[s.ID] = s
	return s
}

func TestCreateShift(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := newTestService(repo, &fakeNotifier{})

	start := time.Now().Add(24 * time.Hour)
	req := shift.CreateShiftRequest{
		UserID:    uuid.New().String(),
		RoleID:    uuid.New().String(),
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
	}

	resp, err := svc.Create(ctx, operator, req)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusDraft, resp.Status)
	assert.Nil(t, resp.PublishedAt)
	assert.Len(t, repo.shifts, 1)
}

func TestCreateShiftEmployeeForbidden(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), &fakeNotifier{})

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), employee, shift.CreateShiftRequest{
		UserID:    uuid.New().String(),
		RoleID:    uuid.New().String(),
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
	})
	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestCreateShiftInvalidTimeRange(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), &fakeNotifier{})

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), operator, shift.CreateShiftRequest{
		UserID:    uuid.New().String(),
		RoleID:    uuid.New().String(),
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, shift.ErrInvalidTimeRange)
}

func TestUpdateDraftIsSilent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	s := seedShift(repo, uuid.New().String(), time.Now().Add(24*time.Hour), shift.StatusDraft, false)

	_, err := svc.Update(ctx, operator, s.ID, shift.UpdateShiftRequest{
		UserID:    s.UserID,
		RoleID:    s.RoleID,
		StartTime: s.StartTime.Add(time.Hour),
		EndTime:   s.EndTime.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.notifies)
	assert.Empty(t, repo.history)
}

func TestUpdatePublishedRecordsHistoryAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	ownerID := uuid.New().String()
	s := seedShift(repo, ownerID, time.Now().Add(24*time.Hour), shift.StatusPublished, true)

	_, err := svc.Update(ctx, operator, s.ID, shift.UpdateShiftRequest{
		UserID:    s.UserID,
		RoleID:    s.RoleID,
		StartTime: s.StartTime.Add(2 * time.Hour),
		EndTime:   s.EndTime.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	require.Len(t, repo.history, 1)
	assert.Equal(t, s.ID, repo.history[0].ShiftID)
	assert.Equal(t, operator.UserID, repo.history[0].ChangedBy)

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeUpdate, notifier.notifies[0].typ)
	assert.Equal(t, []string{ownerID}, notifier.notifies[0].userIDs)
	assert.Len(t, notifier.sms, 1)
}

func TestUpdatePublishedToCancelled(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	s := seedShift(repo, uuid.New().String(), time.Now().Add(24*time.Hour), shift.StatusPublished, true)

	cancelled := shift.StatusCancelled
	resp, err := svc.Update(ctx, operator, s.ID, shift.UpdateShiftRequest{
		UserID:    s.UserID,
		RoleID:    s.RoleID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    &cancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, shift.StatusCancelled, resp.Status)

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeCancel, notifier.notifies[0].typ)
	assert.Empty(t, notifier.sms)
}

func TestDeletePublishedNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	ownerID := uuid.New().String()
	s := seedShift(repo, ownerID, time.Now().Add(24*time.Hour), shift.StatusPublished, true)

	require.NoError(t, svc.Delete(ctx, operator, s.ID))
	assert.Empty(t, repo.shifts)

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeCancel, notifier.notifies[0].typ)
	assert.Equal(t, []string{ownerID}, notifier.notifies[0].userIDs)
}

func TestDeleteDraftStillNotifiesOwner(t *testing.T) {
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	ownerID := uuid.New().String()
	s := seedShift(repo, ownerID, time.Now().Add(24*time.Hour), shift.StatusDraft, false)

	require.NoError(t, svc.Delete(context.Background(), operator, s.ID))

	require.Len(t, notifier.notifies, 1)
	assert.Equal(t, notification.TypeCancel, notifier.notifies[0].typ)
	assert.Equal(t, []string{ownerID}, notifier.notifies[0].userIDs)
}

func TestPublishNotifiesDistinctOwnersOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	alice := uuid.New().String()
	bob := uuid.New().String()
	s1 := seedShift(repo, alice, time.Now().Add(24*time.Hour), shift.StatusDraft, false)
	s2 := seedShift(repo, alice, time.Now().Add(48*time.Hour), shift.StatusDraft, false)
	s3 := seedShift(repo, bob, time.Now().Add(24*time.Hour), shift.StatusDraft, false)

	result, err := svc.Publish(ctx, operator, shift.PublishShiftsRequest{
		ShiftIDs: []string{s1.ID, s2.ID, s3.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Published)
	assert.Equal(t, 2, result.Notified)

	require.Len(t, notifier.notifies, 1)
	assert.ElementsMatch(t, []string{alice, bob}, notifier.notifies[0].userIDs)
	assert.Equal(t, notification.TypePublish, notifier.notifies[0].typ)

	// One SMS per owner, counting their shifts.
	assert.Len(t, notifier.sms, 2)
}

func TestPublishSkipsAlreadyPublished(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	s := seedShift(repo, uuid.New().String(), time.Now().Add(24*time.Hour), shift.StatusPublished, true)

	result, err := svc.Publish(ctx, operator, shift.PublishShiftsRequest{ShiftIDs: []string{s.ID}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Published)
	assert.Equal(t, 0, result.Notified)

	require.Len(t, notifier.notifies, 1)
	assert.Empty(t, notifier.notifies[0].userIDs)
}

func TestWeekBoardHidesDraftsFromEmployees(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepo()
	svc := newTestService(repo, &fakeNotifier{})

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedShift(repo, uuid.New().String(), weekStart.Add(9*time.Hour), shift.StatusDraft, false)
	seedShift(repo, uuid.New().String(), weekStart.Add(33*time.Hour), shift.StatusPublished, true)

	board, err := svc.WeekBoard(ctx, employee, weekStart)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, shift.StatusPublished, board[0].Status)

	board, err = svc.WeekBoard(ctx, operator, weekStart)
	require.NoError(t, err)
	assert.Len(t, board, 2)
}

func TestNextShiftNoneUpcoming(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), &fakeNotifier{})

	resp, err := svc.NextShift(context.Background(), employee)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestNextShiftReturnsEarliest(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo, &fakeNotifier{})

	soon := seedShift(repo, employee.UserID, time.Now().Add(2*time.Hour), shift.StatusPublished, true)
	seedShift(repo, employee.UserID, time.Now().Add(48*time.Hour), shift.StatusPublished, true)

	resp, err := svc.NextShift(context.Background(), employee)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, soon.ID, resp.ID)
}
