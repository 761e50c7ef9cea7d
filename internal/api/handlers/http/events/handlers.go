package events

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/pkg/validator"
)

// Notifier is the engine boundary the ingest endpoints forward to. Both
// calls return immediately; dispatch happens in the background.
//
//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Notifier interface {
	OnIncidentCreated(incident domain.Incident)
	OnIncidentStatusChanged(incident domain.Incident, oldStatus domain.IncidentStatus)
}

type Handler struct {
	logger   *slog.Logger
	Notifier Notifier
}

func NewHandler(logger *slog.Logger, notifier Notifier) *Handler {
	return &Handler{
		logger:   logger,
		Notifier: notifier,
	}
}

// IncidentCreated accepts the post-persist event for a new incident and
// kicks off proximity dispatch. Always 202 on valid input: the caller must
// never wait for, or observe, notification outcomes.
func (h *Handler) IncidentCreated(w http.ResponseWriter, r *http.Request) {
	var req domain.IncidentCreatedRequest

	if !h.decode(w, r, &req) {
		return
	}

	h.Notifier.OnIncidentCreated(req.Incident)

	h.log(r).Info("incident-created event accepted",
		slog.String("incident_id", req.Incident.ID.String()),
		slog.String("category", string(req.Incident.Category)),
	)
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// IncidentStatusChanged accepts the post-persist event for a status
// mutation. An unchanged status is still 202: the engine drops it silently.
func (h *Handler) IncidentStatusChanged(w http.ResponseWriter, r *http.Request) {
	var req domain.IncidentStatusChangedRequest

	if !h.decode(w, r, &req) {
		return
	}

	h.Notifier.OnIncidentStatusChanged(req.Incident, req.OldStatus)

	h.log(r).Info("status-changed event accepted",
		slog.String("incident_id", req.Incident.ID.String()),
		slog.String("old_status", string(req.OldStatus)),
		slog.String("new_status", string(req.Incident.Status)),
	)
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
