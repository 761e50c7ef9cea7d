package notify_test

import (
	"testing"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/geo"
	"github.com/ProTechPh/GeoPulse/internal/notify"

	"github.com/google/uuid"
)

const defaultRadius = 5000.0

func testIncident(category domain.Category) domain.Incident {
	return domain.Incident{
		ID:       uuid.New(),
		Title:    "Fire near the park",
		Category: category,
		Severity: domain.SeverityHigh,
		Location: domain.Location{Lat: 40.7128, Lng: -74.0060},
		Status:   domain.StatusPending,
	}
}

func testSubscriber(lat, lng float64, prefs domain.NotificationPreferences) domain.Subscriber {
	return domain.Subscriber{
		ID:          uuid.New(),
		Email:       "user@example.com",
		Location:    domain.Location{Lat: lat, Lng: lng},
		Preferences: prefs,
	}
}

func TestSelectRecipients_RadiusBoundaryInclusive(t *testing.T) {
	t.Parallel()

	incident := testIncident(domain.CategoryFire)
	sub := testSubscriber(40.72, -74.01, domain.NotificationPreferences{Enabled: true})

	dist := geo.DistanceMeters(sub.Location, incident.Location)

	sub.Preferences.RadiusMeters = dist
	got := notify.SelectRecipients(incident, []domain.Subscriber{sub}, defaultRadius)
	if len(got) != 1 {
		t.Fatalf("distance exactly equal to radius must be included, got %d recipients", len(got))
	}
	if got[0].DistanceMeters != dist {
		t.Fatalf("recipient distance = %f, want %f", got[0].DistanceMeters, dist)
	}

	sub.Preferences.RadiusMeters = dist - 0.001
	got = notify.SelectRecipients(incident, []domain.Subscriber{sub}, defaultRadius)
	if len(got) != 0 {
		t.Fatalf("distance beyond radius must be excluded, got %d recipients", len(got))
	}
}

func TestSelectRecipients_TypeFilter(t *testing.T) {
	t.Parallel()

	flood := testIncident(domain.CategoryFlood)

	matchAll := testSubscriber(40.713, -74.006, domain.NotificationPreferences{
		Enabled:      true,
		RadiusMeters: 10_000,
	})
	fireOnly := testSubscriber(40.713, -74.006, domain.NotificationPreferences{
		Enabled:       true,
		RadiusMeters:  10_000,
		IncidentTypes: []domain.Category{domain.CategoryFire},
	})
	fireAndFlood := testSubscriber(40.713, -74.006, domain.NotificationPreferences{
		Enabled:       true,
		RadiusMeters:  10_000,
		IncidentTypes: []domain.Category{domain.CategoryFire, domain.CategoryFlood},
	})

	got := notify.SelectRecipients(flood, []domain.Subscriber{matchAll, fireOnly, fireAndFlood}, defaultRadius)
	if len(got) != 2 {
		t.Fatalf("expected 2 recipients (empty list + explicit flood), got %d", len(got))
	}
	for _, r := range got {
		if r.Subscriber.ID == fireOnly.ID {
			t.Fatal("fire-only subscriber must not match a flood incident")
		}
	}
}

func TestSelectRecipients_DisabledNeverSelected(t *testing.T) {
	t.Parallel()

	incident := testIncident(domain.CategoryCrime)
	sub := testSubscriber(incident.Location.Lat, incident.Location.Lng, domain.NotificationPreferences{
		Enabled:      false,
		RadiusMeters: 1_000_000,
	})

	if got := notify.SelectRecipients(incident, []domain.Subscriber{sub}, defaultRadius); len(got) != 0 {
		t.Fatalf("disabled subscriber selected: %+v", got)
	}
}

func TestSelectRecipients_SentinelLocations(t *testing.T) {
	t.Parallel()

	incident := testIncident(domain.CategoryAccident)

	atSentinel := testSubscriber(0, 0, domain.NotificationPreferences{
		Enabled:      true,
		RadiusMeters: 100_000_000,
	})
	if got := notify.SelectRecipients(incident, []domain.Subscriber{atSentinel}, defaultRadius); len(got) != 0 {
		t.Fatalf("subscriber at (0,0) selected: %+v", got)
	}

	nearby := testSubscriber(0.001, 0.001, domain.NotificationPreferences{
		Enabled:      true,
		RadiusMeters: 100_000_000,
	})
	sentinelIncident := incident
	sentinelIncident.Location = domain.Location{}
	if got := notify.SelectRecipients(sentinelIncident, []domain.Subscriber{nearby}, defaultRadius); len(got) != 0 {
		t.Fatalf("incident at (0,0) selected recipients: %+v", got)
	}
}

func TestSelectRecipients_DefaultRadiusApplied(t *testing.T) {
	t.Parallel()

	incident := testIncident(domain.CategoryOther)

	// ~1.2km away, no radius configured: covered by the 5km default.
	sub := testSubscriber(40.7236, -74.0060, domain.NotificationPreferences{Enabled: true})

	got := notify.SelectRecipients(incident, []domain.Subscriber{sub}, defaultRadius)
	if len(got) != 1 {
		t.Fatalf("expected default radius to apply, got %d recipients", len(got))
	}
}

func TestSelectRecipients_Deterministic(t *testing.T) {
	t.Parallel()

	incident := testIncident(domain.CategoryFire)
	subs := []domain.Subscriber{
		testSubscriber(40.713, -74.007, domain.NotificationPreferences{Enabled: true, RadiusMeters: 2000}),
		testSubscriber(40.714, -74.005, domain.NotificationPreferences{Enabled: true, RadiusMeters: 2000}),
		testSubscriber(40.715, -74.004, domain.NotificationPreferences{Enabled: false}),
	}

	first := notify.SelectRecipients(incident, subs, defaultRadius)
	second := notify.SelectRecipients(incident, subs, defaultRadius)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic result size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Subscriber.ID != second[i].Subscriber.ID || first[i].DistanceMeters != second[i].DistanceMeters {
			t.Fatalf("non-deterministic result at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
