package domain

import "github.com/google/uuid"

type NotificationPreferences struct {
	Enabled       bool       `json:"enabled"`
	RadiusMeters  float64    `json:"radius_m"`
	IncidentTypes []Category `json:"incident_types"`
}

// Wants reports whether the preference set covers the given category.
// An empty IncidentTypes list means "all categories".
func (p NotificationPreferences) Wants(c Category) bool {
	if len(p.IncidentTypes) == 0 {
		return true
	}
	for _, t := range p.IncidentTypes {
		if t == c {
			return true
		}
	}
	return false
}

type Subscriber struct {
	ID          uuid.UUID               `json:"id"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone,omitempty"`
	Location    Location                `json:"location"`
	Preferences NotificationPreferences `json:"notification_preferences"`
}
