package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryFire           Category = "fire"
	CategoryFlood          Category = "flood"
	CategoryCrime          Category = "crime"
	CategoryAccident       Category = "accident"
	CategoryInfrastructure Category = "infrastructure"
	CategoryOther          Category = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type IncidentStatus string

const (
	StatusPending      IncidentStatus = "pending"
	StatusAcknowledged IncidentStatus = "acknowledged"
	StatusInProgress   IncidentStatus = "in-progress"
	StatusResolved     IncidentStatus = "resolved"
	StatusClosed       IncidentStatus = "closed"
)

// Location is a lat/lng pair in decimal degrees. The zero value (0,0)
// is the "no known location" sentinel and never matches proximity rules.
type Location struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

func (l Location) IsSentinel() bool {
	return l.Lat == 0 && l.Lng == 0
}

type Incident struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title" validate:"required,max=100"`
	Category   Category       `json:"category" validate:"required,oneof=fire flood crime accident infrastructure other"`
	Severity   Severity       `json:"severity" validate:"required,oneof=low medium high critical"`
	Location   Location       `json:"location"`
	Status     IncidentStatus `json:"status" validate:"omitempty,oneof=pending acknowledged in-progress resolved closed"`
	ReportedBy uuid.UUID      `json:"reported_by"`
	CreatedAt  time.Time      `json:"created_at"`
}
