package shift

import (
	"context"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, actor user.Actor, req CreateShiftRequest) (*ShiftResponse, error)
	Update(ctx context.Context, actor user.Actor, id string, req UpdateShiftRequest) (*ShiftResponse, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
	Publish(ctx context.Context, actor user.Actor, req PublishShiftsRequest) (*PublishResult, error)
	WeekBoard(ctx context.Context, actor user.Actor, weekStart time.Time) ([]ShiftResponse, error)
	MyShifts(ctx context.Context, actor user.Actor) ([]ShiftResponse, error)
	NextShift(ctx context.Context, actor user.Actor) (*ShiftResponse, error)
}
