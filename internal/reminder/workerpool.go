package reminder

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one reminder delivery.
type Task func() error

// WorkerPool bounds concurrent reminder deliveries. The queue is deeper than
// the worker count so a sweep burst does not stall the sweeper.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, workers*4)}

	for i := 0; i < workers; i++ {
		go wp.deliver()
	}
	return wp
}

func (wp *WorkerPool) deliver() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Reminder delivery failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
