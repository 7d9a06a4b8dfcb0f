package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/jobs"
)

// NotificationJobType tags queue jobs carrying a notification.
const NotificationJobType = "notification"

type notificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
}

type notificationDispatcher interface {
	TryEnqueue(job jobs.Job) error
}

// Notifier is the best-effort emitter used by workflows that notify users.
type Notifier interface {
	Emit(ctx context.Context, recipientID, title, message string)
}

// NotificationService emits and lists user notifications.
type NotificationService struct {
	repo       notificationRepository
	dispatcher notificationDispatcher
	metrics    *MetricsService
	logger     *zap.Logger
	now        func() time.Time
}

// NewNotificationService constructs the service. Without a dispatcher, Emit persists inline.
func NewNotificationService(repo notificationRepository, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, metrics: metrics, logger: logger, now: time.Now}
}

// UseDispatcher routes future emits through the given queue.
func (s *NotificationService) UseDispatcher(dispatcher notificationDispatcher) {
	s.dispatcher = dispatcher
}

// Emit records a notification for the recipient. Failures are logged and counted, never returned.
func (s *NotificationService) Emit(ctx context.Context, recipientID, title, message string) {
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserID:    recipientID,
		Title:     title,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	if s.dispatcher == nil {
		if err := s.persist(ctx, notification); err != nil {
			s.recordFailure(notification, NotificationFailed, err)
		}
		return
	}

	job := jobs.Job{ID: notification.ID, Type: NotificationJobType, Payload: notification}
	if err := s.dispatcher.TryEnqueue(job); err != nil {
		s.recordFailure(notification, NotificationDropped, err)
	}
}

// Deliver is the queue handler persisting an emitted notification.
func (s *NotificationService) Deliver(ctx context.Context, job jobs.Job) error {
	notification, ok := job.Payload.(models.Notification)
	if !ok {
		return fmt.Errorf("unexpected notification payload %T", job.Payload)
	}
	return s.persist(ctx, notification)
}

// HandleFailure is the queue failure hook for jobs that exhausted their attempts.
func (s *NotificationService) HandleFailure(job jobs.Job, err error) {
	notification, _ := job.Payload.(models.Notification)
	s.recordFailure(notification, NotificationFailed, err)
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "usuario_id is required")
	}
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to list notifications")
	}
	return notifications, nil
}

func (s *NotificationService) persist(ctx context.Context, notification models.Notification) error {
	if err := s.repo.Create(ctx, &notification); err != nil {
		return err
	}
	s.metrics.RecordNotification(NotificationDelivered)
	return nil
}

func (s *NotificationService) recordFailure(notification models.Notification, outcome string, err error) {
	s.metrics.RecordNotification(outcome)
	s.logger.Error("notification not delivered",
		zap.String("outcome", outcome),
		zap.String("recipient_id", notification.UserID),
		zap.String("title", notification.Title),
		zap.Error(err),
	)
}
