package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/shiftline-backend-go/internal/domain/availability"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type fakeRequestRepo struct {
	requests map[string]*availability.ChangeRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*availability.ChangeRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *availability.ChangeRequest) error {
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*availability.ChangeRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, availability.ErrChangeRequestNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) Review(ctx context.Context, id string, to availability.Status, reviewedBy string, reason *string, now time.Time) (bool, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != availability.StatusPending {
		return false, nil
	}
	r.Status = to
	r.ReviewedBy = &reviewedBy
	r.ReviewedAt = &now
	r.DenialReason = reason
	return true, nil
}

func (f *fakeRequestRepo) Cancel(ctx context.Context, id string) (bool, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != availability.StatusPending {
		return false, nil
	}
	r.Status = availability.StatusCancelled
	return true, nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]*availability.Detail, error) {
	var out []*availability.Detail
	for _, r := range f.requests {
		out = append(out, &availability.Detail{ChangeRequest: *r})
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByUser(ctx context.Context, userID string) ([]*availability.Detail, error) {
	var out []*availability.Detail
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, &availability.Detail{ChangeRequest: *r})
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, role *user.Role) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListOperators(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error          { return nil }

func (f *fakeUserRepo) UpdateAvailability(ctx context.Context, userID string, avail user.Availability) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Availability = avail
	return nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func weekdays(available bool) user.Availability {
	return user.Availability{
		"monday": {Day: "monday", StartTime: "09:00", EndTime: "17:00", Available: available},
	}
}

func TestSubmitFirstTimeAppliesDirectly(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeRequestRepo()
	svc := NewAvailabilityService(repo, users, fakeTx{})

	actor := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	users.users[actor.UserID] = &user.User{ID: actor.UserID}

	result, err := svc.Submit(context.Background(), actor, availability.SubmitRequest{
		Availability: weekdays(true),
	})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Nil(t, result.Request)

	assert.NotNil(t, users.users[actor.UserID].Availability)
	assert.Empty(t, repo.requests)
}

func TestSubmitChangeQueuesRequest(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeRequestRepo()
	svc := NewAvailabilityService(repo, users, fakeTx{})

	actor := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	users.users[actor.UserID] = &user.User{ID: actor.UserID, Availability: weekdays(true)}

	result, err := svc.Submit(context.Background(), actor, availability.SubmitRequest{
		Availability: weekdays(false),
		Reason:       "school schedule changed",
	})
	require.NoError(t, err)
	assert.False(t, result.Applied)
	require.NotNil(t, result.Request)
	assert.Equal(t, availability.StatusPending, result.Request.Status)

	// The user row stays untouched until an operator approves.
	assert.True(t, users.users[actor.UserID].Availability["monday"].Available)
}

func TestApproveOverwritesAvailability(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeRequestRepo()
	svc := NewAvailabilityService(repo, users, fakeTx{})

	actor := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	users.users[actor.UserID] = &user.User{ID: actor.UserID, Availability: weekdays(true)}

	result, err := svc.Submit(context.Background(), actor, availability.SubmitRequest{
		Availability: weekdays(false),
	})
	require.NoError(t, err)

	operator := user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	approved, err := svc.Approve(context.Background(), operator, result.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, availability.StatusApproved, approved.Status)

	assert.False(t, users.users[actor.UserID].Availability["monday"].Available)
}

func TestApproveAlreadyReviewed(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeRequestRepo()
	svc := NewAvailabilityService(repo, users, fakeTx{})

	actor := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	users.users[actor.UserID] = &user.User{ID: actor.UserID, Availability: weekdays(true)}

	result, err := svc.Submit(context.Background(), actor, availability.SubmitRequest{
		Availability: weekdays(false),
	})
	require.NoError(t, err)

	operator := user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	_, err = svc.Approve(context.Background(), operator, result.Request.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), operator, result.Request.ID)
	assert.ErrorIs(t, err, availability.ErrChangeRequestAlreadyReviewed)
}

func TestDenyRequiresReason(t *testing.T) {
	svc := NewAvailabilityService(newFakeRequestRepo(), newFakeUserRepo(), fakeTx{})

	operator := user.Actor{UserID: uuid.New().String(), Role: user.RoleOperator}
	_, err := svc.Deny(context.Background(), operator, uuid.New().String(), availability.DenyRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "reason")
}

func TestCancelOnlyOwn(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeRequestRepo()
	svc := NewAvailabilityService(repo, users, fakeTx{})

	actor := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	users.users[actor.UserID] = &user.User{ID: actor.UserID, Availability: weekdays(true)}

	result, err := svc.Submit(context.Background(), actor, availability.SubmitRequest{
		Availability: weekdays(false),
	})
	require.NoError(t, err)

	stranger := user.Actor{UserID: uuid.New().String(), Role: user.RoleEmployee}
	err = svc.Cancel(context.Background(), stranger, result.Request.ID)
	assert.ErrorIs(t, err, user.ErrNotResourceOwner)

	require.NoError(t, svc.Cancel(context.Background(), actor, result.Request.ID))
}
