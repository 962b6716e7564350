package runtime

import (
	"context"
	"log/slog"
	"time"
	"zenchat/contract"
	"zenchat/observability"
)

// Orchestrator assembles the realtime layer around one Dispatcher and
// runs it, with the background workers, under the supervisor.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	dispatcher *Dispatcher
	gateway    *Gateway
	done       chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	presenceStore contract.PresenceStore, messageStore contract.MessageStore,
	metrics *observability.Metrics, bufferSize int, typingTimeout time.Duration) *Orchestrator {
	dispatcher := NewDispatcher(log, bufferSize)
	metrics.WithPending(dispatcher.Pending)

	registry := NewRegistry(metrics)
	sessions := NewSessionTable()
	router := NewMessageFanoutRouter(log, registry, metrics)
	presence := NewPresenceTracker(log, dispatcher, registry, sessions, presenceStore, metrics)
	typing := NewTypingCoordinator(log, dispatcher, registry, router, typingTimeout)
	lifecycle := NewSessionLifecycleManager(log, sessions, registry, presence, typing, time.Now)

	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		dispatcher: dispatcher,
		gateway:    NewGateway(log, dispatcher, lifecycle, presence, typing, router, messageStore, metrics),
		done:       make(chan struct{}),
	}
}

func (o *Orchestrator) Gateway() *Gateway {
	return o.gateway
}

// Start runs the dispatcher and the given workers in the background.
// It returns immediately, Done is closed once every worker returned.
func (o *Orchestrator) Start(ctx context.Context, workers ...contract.Worker) {
	o.supervisor.Add(o.dispatcher)
	o.supervisor.Add(workers...)
	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(workers)+1)
	go func() {
		defer close(o.done)
		o.supervisor.Run(ctx)
	}()
}

// Drain waits for the queued tasks and the pending collaborator calls,
// presence writes of sessions closed during shutdown included.
func (o *Orchestrator) Drain(ctx context.Context) error {
	return o.dispatcher.Drain(ctx)
}

// Stop cancels every supervised worker, the dispatcher included.
func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}

func (o *Orchestrator) Done() <-chan struct{} {
	return o.done
}
