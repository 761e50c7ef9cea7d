package admin

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/ProTechPh/GeoPulse/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// LedgerReader exposes the delivery ledger to operators. Read-only: the
// ledger has no update or delete path.
type LedgerReader interface {
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]domain.NotificationRecord, error)
}

// IncidentReader checks that an incident exists before its ledger rows are
// listed, so an unknown id reads as 404 rather than an empty ledger.
type IncidentReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
}

type Handler struct {
	logger    *slog.Logger
	Ledger    LedgerReader
	Incidents IncidentReader
}

func NewHandler(logger *slog.Logger, ledger LedgerReader, incidents IncidentReader) *Handler {
	return &Handler{
		logger:    logger,
		Ledger:    ledger,
		Incidents: incidents,
	}
}

// IncidentNotifications lists every delivery outcome recorded for one
// incident, newest first.
func (h *Handler) IncidentNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid incident id"})
		return
	}

	if _, err := h.Incidents.Get(r.Context(), id); err != nil {
		h.log(r).Error("incident lookup failed", slog.Any("error", err), slog.String("incident_id", id.String()))
		h.handleError(w, err)
		return
	}

	records, err := h.Ledger.ListByIncident(r.Context(), id)
	if err != nil {
		h.log(r).Error("ledger list failed", slog.Any("error", err), slog.String("incident_id", id.String()))
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.LedgerListResponse{
		Notifications: records,
		Total:         len(records),
	})
}
