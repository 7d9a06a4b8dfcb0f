package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/jobs"
)

type fakeNotificationRepo struct {
	mu        sync.Mutex
	stored    []models.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.stored = append(f.stored, *notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for i := len(f.stored) - 1; i >= 0; i-- {
		if f.stored[i].UserID == userID {
			out = append(out, f.stored[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stored)
}

type rejectingDispatcher struct{}

func (rejectingDispatcher) TryEnqueue(jobs.Job) error { return jobs.ErrQueueFull }

func notificationCount(m *MetricsService, outcome string) float64 {
	return testutil.ToFloat64(m.notifications.WithLabelValues(outcome))
}

func TestNotificationServiceEmitInline(t *testing.T) {
	repo := &fakeNotificationRepo{}
	metrics := NewMetricsService()
	svc := NewNotificationService(repo, metrics, nil)

	svc.Emit(context.Background(), "stu-1", "New Grade", "You received a grade of 9 in Algebra.")

	require.Equal(t, 1, repo.count())
	stored := repo.stored[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "stu-1", stored.UserID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, 1.0, notificationCount(metrics, NotificationDelivered))
}

func TestNotificationServiceEmitSwallowsPersistenceErrors(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("insert failed")}
	metrics := NewMetricsService()
	svc := NewNotificationService(repo, metrics, nil)

	assert.NotPanics(t, func() {
		svc.Emit(context.Background(), "stu-1", "New Grade", "msg")
	})
	assert.Zero(t, repo.count())
	assert.Equal(t, 1.0, notificationCount(metrics, NotificationFailed))
}

func TestNotificationServiceEmitCountsDroppedJobs(t *testing.T) {
	repo := &fakeNotificationRepo{}
	metrics := NewMetricsService()
	svc := NewNotificationService(repo, metrics, nil)
	svc.UseDispatcher(rejectingDispatcher{})

	svc.Emit(context.Background(), "stu-1", "New Grade", "msg")

	assert.Zero(t, repo.count())
	assert.Equal(t, 1.0, notificationCount(metrics, NotificationDropped))
}

func TestNotificationServiceDeliversThroughQueue(t *testing.T) {
	repo := &fakeNotificationRepo{}
	metrics := NewMetricsService()
	svc := NewNotificationService(repo, metrics, nil)
	queue := jobs.NewQueue("notifications", svc.Deliver, jobs.QueueConfig{Workers: 1, BufferSize: 4, OnFailure: svc.HandleFailure})
	svc.UseDispatcher(queue)

	queue.Start(context.Background())
	svc.Emit(context.Background(), "stu-1", "Grade Updated", "a")
	svc.Emit(context.Background(), "stu-1", "Grade Updated", "b")
	queue.Stop()

	assert.Equal(t, 2, repo.count())
	assert.Equal(t, 2.0, notificationCount(metrics, NotificationDelivered))
}

func TestNotificationServiceQueueFailureIsCounted(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("insert failed")}
	metrics := NewMetricsService()
	svc := NewNotificationService(repo, metrics, nil)
	queue := jobs.NewQueue("notifications", svc.Deliver, jobs.QueueConfig{Workers: 1, OnFailure: svc.HandleFailure})
	svc.UseDispatcher(queue)

	queue.Start(context.Background())
	svc.Emit(context.Background(), "stu-1", "New Grade", "msg")
	require.Eventually(t, func() bool {
		return notificationCount(metrics, NotificationFailed) == 1
	}, time.Second, 10*time.Millisecond)
	queue.Stop()
}

func TestNotificationServiceDeliverRejectsForeignPayload(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil, nil)
	err := svc.Deliver(context.Background(), jobs.Job{Payload: "nope"})
	assert.Error(t, err)
}

func TestNotificationServiceListNewestFirst(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil)
	ctx := context.Background()

	svc.Emit(ctx, "stu-1", "first", "a")
	svc.Emit(ctx, "stu-2", "other", "b")
	svc.Emit(ctx, "stu-1", "second", "c")

	notifications, err := svc.List(ctx, "stu-1")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Title)

	_, err = svc.List(ctx, " ")
	assert.True(t, errors.Is(err, appErrors.ErrMissingFields))
}
