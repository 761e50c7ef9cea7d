package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Options bounds the dispatcher's fan-out. Workers caps in-flight sends,
// SendRatePerSec/SendBurst cap provider throughput across all workers.
type Options struct {
	Workers             int
	SendRatePerSec      float64
	SendBurst           int
	BaseURL             string
	DefaultRadiusMeters float64
}

// Dispatcher runs the proximity and status-change notification flows.
// Both are best-effort: every failure ends in a log line or a ledger row,
// never in an error returned to the caller.
type Dispatcher struct {
	directory SubscriberDirectory
	ledger    Ledger
	channels  map[domain.Channel]DeliveryChannel
	logger    *slog.Logger
	limiter   *rate.Limiter

	workers             int
	baseURL             string
	defaultRadiusMeters float64
}

func NewDispatcher(
	directory SubscriberDirectory,
	ledger Ledger,
	channels []DeliveryChannel,
	logger *slog.Logger,
	opts Options,
) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.SendRatePerSec <= 0 {
		opts.SendRatePerSec = 10
	}
	if opts.SendBurst < 1 {
		opts.SendBurst = 1
	}
	if opts.DefaultRadiusMeters <= 0 {
		opts.DefaultRadiusMeters = 5000
	}

	byKind := make(map[domain.Channel]DeliveryChannel, len(channels))
	for _, ch := range channels {
		byKind[ch.Kind()] = ch
	}

	return &Dispatcher{
		directory:           directory,
		ledger:              ledger,
		channels:            byKind,
		logger:              logger,
		limiter:             rate.NewLimiter(rate.Limit(opts.SendRatePerSec), opts.SendBurst),
		workers:             opts.Workers,
		baseURL:             opts.BaseURL,
		defaultRadiusMeters: opts.DefaultRadiusMeters,
	}
}

// NotifyProximity alerts every eligible subscriber about a newly created
// incident. A directory failure aborts the whole dispatch with no ledger
// rows; per-recipient failures are recorded and do not affect siblings.
func (d *Dispatcher) NotifyProximity(ctx context.Context, incident domain.Incident) {
	log := d.logger.With(slog.String("incident_id", incident.ID.String()))

	subscribers, err := d.directory.ListSubscribers(ctx)
	if err != nil {
		log.Error("subscriber lookup failed, dispatch aborted", slog.Any("error", err))
		return
	}

	recipients := SelectRecipients(incident, subscribers, d.defaultRadiusMeters)
	log.Info("proximity dispatch",
		slog.Int("subscribers", len(subscribers)),
		slog.Int("eligible", len(recipients)),
	)
	if len(recipients) == 0 {
		return
	}

	jobs := make(chan Recipient)
	var wg sync.WaitGroup

	workers := d.workers
	if workers > len(recipients) {
		workers = len(recipients)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				ch, to := d.channelFor(r.Subscriber)
				msg := buildProximityMessage(incident, r, d.baseURL, to)
				d.deliver(ctx, incident.ID, r.Subscriber.ID, ch, msg)
			}
		}()
	}

	for _, r := range recipients {
		jobs <- r
	}
	close(jobs)

	// Wait for every attempt to settle; outcomes land in the ledger.
	wg.Wait()
	log.Info("proximity dispatch complete", slog.Int("attempted", len(recipients)))
}

// deliver runs one send attempt end to end and appends exactly one outcome
// record, whatever happens.
func (d *Dispatcher) deliver(ctx context.Context, incidentID, userID uuid.UUID, ch DeliveryChannel, msg Message) {
	var result domain.DeliveryResult

	if err := d.limiter.Wait(ctx); err != nil {
		result = domain.DeliveryResult{Success: false, Error: err.Error()}
	} else {
		result = ch.Send(ctx, msg)
	}

	rec := &domain.NotificationRecord{
		ID:         uuid.New(),
		IncidentID: incidentID,
		UserID:     userID,
		Channel:    ch.Kind(),
		RetryCount: 0,
		CreatedAt:  time.Now().UTC(),
	}
	if result.Success {
		now := time.Now().UTC()
		rec.Status = domain.DeliverySent
		rec.SentAt = &now
	} else {
		rec.Status = domain.DeliveryFailed
		rec.ErrorMessage = result.Error
		d.logger.Warn("delivery failed",
			slog.String("incident_id", incidentID.String()),
			slog.String("user_id", userID.String()),
			slog.String("channel", string(ch.Kind())),
			slog.String("reason", result.Error),
		)
	}

	if err := d.ledger.Append(ctx, rec); err != nil {
		d.logger.Error("ledger append failed",
			slog.String("incident_id", incidentID.String()),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}

// channelFor picks SMS when the subscriber has a phone number and the SMS
// channel is wired; everyone else gets email.
func (d *Dispatcher) channelFor(sub domain.Subscriber) (DeliveryChannel, string) {
	if sms, ok := d.channels[domain.ChannelSMS]; ok && sub.Phone != "" {
		return sms, sub.Phone
	}
	return d.channels[domain.ChannelEmail], sub.Email
}
