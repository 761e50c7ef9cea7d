package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/pkg/e"
)

// NotifyStatusChange alerts the incident's original reporter about a status
// transition. Not proximity-based: the reporter is notified regardless of
// distance. A missing or disabled reporter skips the flow entirely.
func (d *Dispatcher) NotifyStatusChange(ctx context.Context, incident domain.Incident, oldStatus domain.IncidentStatus) {
	log := d.logger.With(slog.String("incident_id", incident.ID.String()))

	if oldStatus == incident.Status {
		return
	}

	reporter, err := d.directory.GetSubscriber(ctx, incident.ReportedBy)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			log.Info("reporter not found, status notification skipped",
				slog.String("reporter_id", incident.ReportedBy.String()))
			return
		}
		log.Error("reporter lookup failed, status notification skipped", slog.Any("error", err))
		return
	}
	if reporter == nil || !reporter.Preferences.Enabled {
		log.Debug("reporter has notifications disabled, skipped")
		return
	}

	ch, to := d.channelFor(*reporter)
	msg := buildStatusMessage(incident, oldStatus, d.baseURL, to)
	d.deliver(ctx, incident.ID, reporter.ID, ch, msg)

	log.Info("status change notification attempted",
		slog.String("old_status", string(oldStatus)),
		slog.String("new_status", string(incident.Status)),
	)
}
