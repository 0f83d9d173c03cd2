package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/ajcportal/careerhub/recruitment/matching/matchingsrv"
)

// The delayed mover must tick well under the shortest scheduled delay so
// poll reschedules and the notify countdown fire close to their due time.
const moveInterval = time.Second

type RunWorker struct {
	service *matchingsrv.MatchingService
	queue   matching.RunQueue
	workers int
}

func NewRunWorker(service *matchingsrv.MatchingService, queue matching.RunQueue, workers int) *RunWorker {
	return &RunWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *RunWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d match run workers", w.workers)

	go w.moveDelayedTasks(ctx)

	for i := 0; i < w.workers; i++ {
		go w.processTasks(ctx, i)
	}
}

func (w *RunWorker) processTasks(ctx context.Context, workerID int) {
	logx.Infof("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Empty data means the dequeue timed out with nothing ready
			if len(data) == 0 {
				continue
			}

			var task matching.Task
			if err := json.Unmarshal(data, &task); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Debugf("Worker %d processing run %s step %s", workerID, task.RunID, task.Step)
			if err := w.service.ProcessRunTask(ctx, task); err != nil {
				logx.Errorf("Worker %d run %s step %s failed: %v", workerID, task.RunID, task.Step, err)
			}
		}
	}
}

func (w *RunWorker) moveDelayedTasks(ctx context.Context) {
	ticker := time.NewTicker(moveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed tasks: %v", err)
			} else if count > 0 {
				logx.Debugf("Moved %d delayed tasks to ready queue", count)
			}
		}
	}
}
