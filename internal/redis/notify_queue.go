package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// NotifyQueue is the queue-backed Dispatcher implementation. Enqueueing is
// the synchronous part of fan-out; the push sender drains the other end.
type NotifyQueue struct {
	client *goredis.Client
	key    string
}

func NewNotifyQueue(client *goredis.Client, key string) *NotifyQueue {
	return &NotifyQueue{client: client, key: key}
}

func (q *NotifyQueue) NotifyAll(ctx context.Context, title, body string, p domain.NotificationPayload) error {
	return q.enqueue(ctx, domain.NotificationJob{
		ID:         uuid.New(),
		Title:      title,
		Body:       body,
		Payload:    p,
		EnqueuedAt: time.Now().UTC(),
	})
}

func (q *NotifyQueue) NotifyAllExcept(ctx context.Context, identity, title, body string, p domain.NotificationPayload) error {
	return q.enqueue(ctx, domain.NotificationJob{
		ID:         uuid.New(),
		Title:      title,
		Body:       body,
		Exclude:    identity,
		Payload:    p,
		EnqueuedAt: time.Now().UTC(),
	})
}

func (q *NotifyQueue) enqueue(ctx context.Context, job domain.NotificationJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotifyQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error) {
	var job domain.NotificationJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return job, e.ErrQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, err
	}
	return job, nil
}
