//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"
	"zenchat/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Task is a unit of work executed by the dispatcher goroutine.
// Every read or write of realtime state happens inside a Task.
type Task func(ctx context.Context)

// Timer is a cancellable delayed Task.
type Timer interface {
	Stop() bool
}

// Loop is the single logical worker owning realtime state.
//   - Post enqueues a task, false once the loop stopped
//   - Await runs io off the loop then posts then(err) back onto it
//   - AfterFunc posts task onto the loop once d elapsed
type Loop interface {
	Post(task Task) bool
	Await(ctx context.Context, io func(ctx context.Context) error, then func(ctx context.Context, err error))
	AfterFunc(d time.Duration, task Task) Timer
}

// IRegistry maps a user to the sessions currently open for it.
// Implementations are confined to the Loop and need no locking.
type IRegistry interface {
	Register(userID domain.UserID, sessionID domain.SessionID, sink EventSink) bool
	Deregister(userID domain.UserID, sessionID domain.SessionID) bool
	SessionsFor(userID domain.UserID) []domain.SessionID
	Sink(sessionID domain.SessionID) (EventSink, bool)
	IsOnline(userID domain.UserID) bool
}
