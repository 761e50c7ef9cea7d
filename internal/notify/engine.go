package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/pkg/e"
)

// Engine is the boundary the API layer calls after an entity mutation is
// persisted. Both entry points enqueue a job and return immediately; the
// caller never blocks on dispatch and never sees a notification failure.
// Outcomes are observable only through the delivery ledger.
type Engine struct {
	queue       JobQueue
	dispatcher  *Dispatcher
	logger      *slog.Logger
	pollTimeout time.Duration
}

func NewEngine(queue JobQueue, dispatcher *Dispatcher, logger *slog.Logger, pollTimeout time.Duration) *Engine {
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &Engine{
		queue:       queue,
		dispatcher:  dispatcher,
		logger:      logger,
		pollTimeout: pollTimeout,
	}
}

// OnIncidentCreated must be invoked exactly once after an incident is
// durably persisted. Returns immediately.
func (en *Engine) OnIncidentCreated(incident domain.Incident) {
	en.submit(domain.NotificationJob{
		Kind:       domain.JobProximity,
		Incident:   incident,
		EnqueuedAt: time.Now().UTC(),
	})
}

// OnIncidentStatusChanged must be invoked exactly once after a status
// mutation is persisted. An unchanged status is dropped here, before any
// job exists. Returns immediately.
func (en *Engine) OnIncidentStatusChanged(incident domain.Incident, oldStatus domain.IncidentStatus) {
	if oldStatus == incident.Status {
		return
	}
	en.submit(domain.NotificationJob{
		Kind:       domain.JobStatusChange,
		Incident:   incident,
		OldStatus:  oldStatus,
		EnqueuedAt: time.Now().UTC(),
	})
}

// submit enqueues the job under its own short deadline so a slow queue can
// not stall the request path. If the queue is down the job runs in-process
// instead; the caller contract holds either way.
func (en *Engine) submit(job domain.NotificationJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := en.queue.Enqueue(ctx, job); err != nil {
		en.logger.Error("enqueue failed, running dispatch in-process",
			slog.String("kind", string(job.Kind)),
			slog.String("incident_id", job.Incident.ID.String()),
			slog.Any("error", err),
		)
		go en.process(context.Background(), job)
		return
	}

	en.logger.Info("notification job enqueued",
		slog.String("kind", string(job.Kind)),
		slog.String("incident_id", job.Incident.ID.String()),
	)
}

// Run drains the queue until the context is canceled. One job is processed
// at a time; concurrency lives inside the dispatcher's fan-out.
func (en *Engine) Run(ctx context.Context) {
	en.logger.Info("notification engine STARTED")

	for {
		select {
		case <-ctx.Done():
			en.logger.Info("notification engine STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := en.queue.Dequeue(ctx, en.pollTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			en.logger.Error("dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		en.process(ctx, job)
	}
}

func (en *Engine) process(ctx context.Context, job domain.NotificationJob) {
	switch job.Kind {
	case domain.JobProximity:
		en.dispatcher.NotifyProximity(ctx, job.Incident)
	case domain.JobStatusChange:
		en.dispatcher.NotifyStatusChange(ctx, job.Incident, job.OldStatus)
	default:
		en.logger.Warn("unknown job kind dropped", slog.String("kind", string(job.Kind)))
	}
}
