package domain

// IncidentCreatedRequest is posted by the API layer once an incident is
// durably persisted.
type IncidentCreatedRequest struct {
	Incident Incident `json:"incident" validate:"required"`
}

// IncidentStatusChangedRequest is posted by the API layer after a status
// mutation is persisted. OldStatus equal to the incident's current status
// makes the event a no-op.
type IncidentStatusChangedRequest struct {
	Incident  Incident       `json:"incident" validate:"required"`
	OldStatus IncidentStatus `json:"old_status" validate:"required,oneof=pending acknowledged in-progress resolved closed"`
}

type LedgerListResponse struct {
	Notifications []NotificationRecord `json:"notifications"`
	Total         int                  `json:"total"`
}
