// Package runtime holds the realtime layer: who is connected, presence,
// typing indicators and message fan-out. All of its state is owned by a
// single Dispatcher goroutine.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"zenchat/contract"
	"zenchat/errors"
)

const drainPollInterval = 10 * time.Millisecond

// Dispatcher is the single logical worker of the realtime layer.
// Tasks run one at a time, to completion, in submission order.
// Collaborator I/O never runs on the dispatcher: Await hands it to a
// goroutine and posts the continuation back, so state read in a
// continuation may have changed since the I/O started.
type Dispatcher struct {
	log   *slog.Logger
	tasks chan contract.Task
	done  chan struct{}
	once  sync.Once
	// collaborator calls whose continuation has not run yet
	inflight atomic.Int64
}

func NewDispatcher(log *slog.Logger, bufferSize int) *Dispatcher {
	return &Dispatcher{
		log:   log,
		tasks: make(chan contract.Task, bufferSize),
		done:  make(chan struct{}),
	}
}

// Run drains the task queue until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info("Starting dispatcher", "buffer", cap(d.tasks))
	for {
		select {
		case <-ctx.Done():
			d.once.Do(func() { close(d.done) })
			return ctx.Err()
		case task := <-d.tasks:
			d.execute(ctx, task)
		}
	}
}

// execute isolates a task: a panic is logged and the loop keeps going.
func (d *Dispatcher) execute(ctx context.Context, task contract.Task) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Dispatcher task panicked", "panic", fmt.Sprint(r))
		}
	}()
	task(ctx)
}

// Post blocks while the queue is full and returns false once the
// dispatcher stopped.
func (d *Dispatcher) Post(task contract.Task) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.tasks <- task:
		return true
	case <-d.done:
		return false
	}
}

func (d *Dispatcher) Await(ctx context.Context,
	io func(ctx context.Context) error,
	then func(ctx context.Context, err error)) {
	d.inflight.Add(1)
	go func() {
		err := io(ctx)
		posted := d.Post(func(ctx context.Context) {
			defer d.inflight.Add(-1)
			then(ctx, err)
		})
		if !posted {
			d.inflight.Add(-1)
			d.log.Debug("Continuation dropped, dispatcher stopped", "error", err)
		}
	}()
}

func (d *Dispatcher) AfterFunc(delay time.Duration, task contract.Task) contract.Timer {
	return time.AfterFunc(delay, func() { d.Post(task) })
}

// Drain returns once every task queued so far ran and no collaborator
// call is pending, continuations included.
func (d *Dispatcher) Drain(ctx context.Context) error {
	for {
		idle := make(chan bool, 1)
		if !d.Post(func(context.Context) { idle <- d.inflight.Load() == 0 }) {
			return errors.ErrLoopStopped
		}
		select {
		case done := <-idle:
			if done {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-time.After(drainPollInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Pending returns the number of queued tasks.
func (d *Dispatcher) Pending() int {
	return len(d.tasks)
}
