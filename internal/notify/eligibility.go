package notify

import (
	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/geo"
)

// Recipient is a subscriber that passed eligibility, with the computed
// distance to the incident.
type Recipient struct {
	Subscriber     domain.Subscriber
	DistanceMeters float64
}

// SelectRecipients narrows the full subscriber set down to those who should
// be alerted about the incident:
//
//   - disabled preferences are skipped
//   - a non-empty incident-type list must contain the incident's category
//   - the sentinel location (0,0) on either side disqualifies the pair
//   - the distance must be within the subscriber's radius (inclusive)
//
// defaultRadiusMeters substitutes for a missing or non-positive preference
// radius. Pure function of its inputs; result order follows input order.
func SelectRecipients(incident domain.Incident, subscribers []domain.Subscriber, defaultRadiusMeters float64) []Recipient {
	if incident.Location.IsSentinel() {
		return nil
	}

	recipients := make([]Recipient, 0, len(subscribers))
	for _, sub := range subscribers {
		if !sub.Preferences.Enabled {
			continue
		}
		if !sub.Preferences.Wants(incident.Category) {
			continue
		}
		if sub.Location.IsSentinel() {
			continue
		}

		radius := sub.Preferences.RadiusMeters
		if radius <= 0 {
			radius = defaultRadiusMeters
		}

		dist := geo.DistanceMeters(sub.Location, incident.Location)
		if dist <= radius {
			recipients = append(recipients, Recipient{Subscriber: sub, DistanceMeters: dist})
		}
	}
	return recipients
}
