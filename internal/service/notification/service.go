package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
)

// Config holds dispatcher tuning knobs.
type Config struct {
	WorkerCount int // default: 2
	QueueSize   int // default: 256
}

type smsJob struct {
	userIDs []string
	body    string
}

type service struct {
	repo    notification.Repository
	users   user.Repository
	gateway sms.Gateway
	logger  *slog.Logger
	now     func() time.Time

	queue  chan smsJob
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates the dispatcher and starts the SMS workers.
func NewNotificationService(repo notification.Repository, users user.Repository, gateway sms.Gateway, logger *slog.Logger, cfg Config) notification.Service {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 256
	}

	s := &service{
		repo:    repo,
		users:   users,
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
		queue:   make(chan smsJob, cfg.QueueSize),
		stopCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

// Notify writes one notification row per recipient in a single batch insert.
func (s *service) Notify(ctx context.Context, userIDs []string, typ notification.Type, message string) error {
	if len(userIDs) == 0 {
		return nil
	}
	if message == "" {
		message = notification.DefaultMessage(typ)
	}

	rows := make([]*notification.Notification, len(userIDs))
	for i, userID := range userIDs {
		rows[i] = &notification.Notification{
			ID:      uuid.New().String(),
			UserID:  userID,
			Type:    typ,
			Message: message,
			Read:    false,
			SentAt:  s.now(),
		}
	}

	return s.repo.CreateBatch(ctx, rows)
}

// EscalateSMS queues a best-effort text. A full queue drops the job rather
// than blocking the request path.
func (s *service) EscalateSMS(userIDs []string, body string) {
	if len(userIDs) == 0 || body == "" {
		return
	}

	select {
	case s.queue <- smsJob{userIDs: userIDs, body: body}:
	default:
		s.logger.Warn("sms queue full, dropping escalation", "recipients", len(userIDs))
	}
}

func (s *service) worker() {
	defer s.wg.Done()

	for {
		select {
		case job := <-s.queue:
			s.process(job)
		case <-s.stopCh:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case job := <-s.queue:
					s.process(job)
				default:
					return
				}
			}
		}
	}
}

func (s *service) process(job smsJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, userID := range job.userIDs {
		s.sendOne(ctx, userID, job.body)
	}
}

// sendOne delivers a single text. Gateway and logging failures are recorded
// but never propagated.
func (s *service) sendOne(ctx context.Context, userID, body string) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("sms recipient lookup failed", "user_id", userID, "error", err)
		return
	}
	if u.PhoneNumber == nil || !u.SMSOptIn {
		return
	}

	entry := &notification.SMSLog{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		PhoneNumber: *u.PhoneNumber,
		Message:     body,
		CreatedAt:   s.now(),
	}

	if sms.WithinQuietHours(s.now()) {
		entry.Status = notification.SMSStatusSuppressed
	} else if err := s.gateway.Send(ctx, *u.PhoneNumber, body); err != nil {
		msg := err.Error()
		entry.Status = notification.SMSStatusFailed
		entry.ErrorMessage = &msg
		s.logger.Warn("sms send failed", "user_id", u.ID, "error", err)
	} else {
		entry.Status = notification.SMSStatusSent
	}

	if err := s.repo.CreateSMSLog(ctx, entry); err != nil {
		s.logger.Warn("sms log write failed", "user_id", u.ID, "error", err)
	}
}

func (s *service) List(ctx context.Context, actor user.Actor, unreadOnly bool) ([]notification.NotificationResponse, error) {
	const listLimit = 50

	rows, err := s.repo.ListByUser(ctx, actor.UserID, unreadOnly, listLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(rows))
	for i, n := range rows {
		responses[i] = notification.ToResponse(n)
	}
	return responses, nil
}

func (s *service) UnreadCount(ctx context.Context, actor user.Actor) (int, error) {
	return s.repo.UnreadCount(ctx, actor.UserID)
}

func (s *service) MarkRead(ctx context.Context, actor user.Actor, id string) error {
	ok, err := s.repo.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, actor user.Actor) error {
	return s.repo.MarkAllRead(ctx, actor.UserID)
}

func (s *service) Delete(ctx context.Context, actor user.Actor, id string) error {
	ok, err := s.repo.Delete(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return notification.ErrNotificationNotFound
	}
	return nil
}

// Stop drains the SMS queue and waits for the workers to finish.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}
