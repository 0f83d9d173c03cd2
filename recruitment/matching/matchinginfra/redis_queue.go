package matchinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/go-redis/redis/v8"
)

// RedisQueue implements matching.RunQueue using a Redis list as the ready
// queue and a sorted set, scored by due time, as the delayed queue
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisQueue creates a new Redis-based run queue
func NewRedisQueue(client *redis.Client, queueName string) matching.RunQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a task to the ready queue
func (q *RedisQueue) Enqueue(ctx context.Context, runID kernel.RunID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for run %s: %w", runID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue run %s: %w", runID, err)
	}

	return nil
}

// Dequeue gets a task from the queue (blocking with timeout)
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses with no tasks
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue task: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// EnqueueDelayed schedules a task for later processing. Poll reschedules
// and the notify countdown both ride this path.
func (q *RedisQueue) EnqueueDelayed(ctx context.Context, runID kernel.RunID, payload any, delay time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal delayed payload for run %s: %w", runID, err)
	}

	score := float64(time.Now().Add(delay).UnixMilli())
	delayedQueue := q.queueName + ":delayed"

	if err := q.client.ZAdd(ctx, delayedQueue, &redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed run %s: %w", runID, err)
	}

	return nil
}

// MoveDelayedToReady moves delayed tasks that are due to the main queue
func (q *RedisQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	delayedQueue := q.queueName + ":delayed"
	now := float64(time.Now().UnixMilli())

	tasks, err := q.client.ZRangeByScore(ctx, delayedQueue, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed tasks: %w", err)
	}

	if len(tasks) == 0 {
		return 0, nil
	}

	// Pipeline keeps the move atomic per batch
	pipe := q.client.Pipeline()
	for _, task := range tasks {
		pipe.LPush(ctx, q.queueName, task)
		pipe.ZRem(ctx, delayedQueue, task)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed tasks to ready: %w", err)
	}

	return len(tasks), nil
}

// GetQueueSize returns the number of ready tasks
func (q *RedisQueue) GetQueueSize(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// GetDelayedQueueSize returns the number of delayed tasks
func (q *RedisQueue) GetDelayedQueueSize(ctx context.Context) (int64, error) {
	size, err := q.client.ZCard(ctx, q.queueName+":delayed").Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed queue size: %w", err)
	}
	return size, nil
}

// Clear removes all tasks from both queues (testing/maintenance)
func (q *RedisQueue) Clear(ctx context.Context) error {
	pipe := q.client.Pipeline()
	pipe.Del(ctx, q.queueName)
	pipe.Del(ctx, q.queueName+":delayed")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}

	return nil
}
