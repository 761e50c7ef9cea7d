package notify

import (
	"fmt"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/geo"
)

type MessageKind string

const (
	MessageProximityAlert MessageKind = "proximity_alert"
	MessageStatusUpdate   MessageKind = "status_update"
)

// Message holds the template data a delivery channel needs. Distance is
// pre-formatted ("850m" / "3.94km") and only set on proximity alerts;
// OldStatus/NewStatus only on status updates.
type Message struct {
	Kind      MessageKind
	To        string
	Title     string
	Category  domain.Category
	Severity  domain.Severity
	Distance  string
	OldStatus domain.IncidentStatus
	NewStatus domain.IncidentStatus
	Link      string
}

func buildProximityMessage(incident domain.Incident, r Recipient, baseURL string, to string) Message {
	return Message{
		Kind:     MessageProximityAlert,
		To:       to,
		Title:    incident.Title,
		Category: incident.Category,
		Severity: incident.Severity,
		Distance: geo.FormatDistance(r.DistanceMeters),
		Link:     incidentLink(baseURL, incident),
	}
}

func buildStatusMessage(incident domain.Incident, oldStatus domain.IncidentStatus, baseURL string, to string) Message {
	return Message{
		Kind:      MessageStatusUpdate,
		To:        to,
		Title:     incident.Title,
		Category:  incident.Category,
		Severity:  incident.Severity,
		OldStatus: oldStatus,
		NewStatus: incident.Status,
		Link:      incidentLink(baseURL, incident),
	}
}

func incidentLink(baseURL string, incident domain.Incident) string {
	return fmt.Sprintf("%s/incidents/%s", baseURL, incident.ID)
}
