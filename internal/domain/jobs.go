package domain

import "time"

type JobKind string

const (
	JobProximity    JobKind = "proximity"
	JobStatusChange JobKind = "status_change"
)

// NotificationJob is the unit of work the entity-mutation path enqueues.
// It carries a snapshot of the incident so the consumer does not depend on
// the incident still existing when the job is drained.
type NotificationJob struct {
	Kind       JobKind        `json:"kind"`
	Incident   Incident       `json:"incident"`
	OldStatus  IncidentStatus `json:"old_status,omitempty"`
	EnqueuedAt time.Time      `json:"enqueued_at"`
}
