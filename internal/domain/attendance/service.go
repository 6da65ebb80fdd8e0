package attendance

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	ClockIn(ctx context.Context, actor user.Actor, req ClockInRequest) (*AttendanceResponse, error)
	ClockOut(ctx context.Context, actor user.Actor, req ClockOutRequest) (*AttendanceResponse, error)
	TodayBoard(ctx context.Context, actor user.Actor) ([]BoardEntry, error)
	GetForShift(ctx context.Context, actor user.Actor, shiftID string) (*AttendanceResponse, error)
}
