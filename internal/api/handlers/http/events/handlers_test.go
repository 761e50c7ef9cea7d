package events_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/ProTechPh/GeoPulse/internal/api/handlers/http/events"
	mock_events "github.com/ProTechPh/GeoPulse/internal/api/handlers/http/events/mocks"
	"github.com/ProTechPh/GeoPulse/internal/domain"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestIncidentCreated_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidentID := uuid.New()
	reporterID := uuid.New()

	notifier := mock_events.NewMockNotifier(ctrl)
	notifier.EXPECT().
		OnIncidentCreated(gomock.Any()).
		Do(func(inc domain.Incident) {
			if inc.ID != incidentID {
				t.Errorf("incident id = %s, want %s", inc.ID, incidentID)
			}
			if inc.Category != domain.CategoryFire {
				t.Errorf("category = %s, want fire", inc.Category)
			}
		}).
		Times(1)

	h := events.NewHandler(testLogger(), notifier)

	body := `{"incident":{"id":"` + incidentID.String() + `","title":"Fire near the park","category":"fire","severity":"high","location":{"lat":40.7128,"lng":-74.006},"status":"pending","reported_by":"` + reporterID.String() + `","created_at":"2025-06-01T12:00:00Z"}}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/incident-created", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.IncidentCreated(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body=%s", rec.Code, rec.Body.String())
	}
}

func TestIncidentCreated_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_events.NewMockNotifier(ctrl)
	// No expectation: malformed input must never reach the engine.

	h := events.NewHandler(testLogger(), notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/incident-created", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.IncidentCreated(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIncidentCreated_ValidationRejectsBadCategory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_events.NewMockNotifier(ctrl)

	h := events.NewHandler(testLogger(), notifier)

	body := `{"incident":{"id":"` + uuid.NewString() + `","title":"x","category":"earthquake","severity":"high","location":{"lat":1,"lng":1},"status":"pending","reported_by":"` + uuid.NewString() + `","created_at":"2025-06-01T12:00:00Z"}}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/incident-created", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.IncidentCreated(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body=%s", rec.Code, rec.Body.String())
	}
}

func TestIncidentStatusChanged_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_events.NewMockNotifier(ctrl)
	notifier.EXPECT().
		OnIncidentStatusChanged(gomock.Any(), domain.StatusPending).
		Times(1)

	h := events.NewHandler(testLogger(), notifier)

	body := `{"incident":{"id":"` + uuid.NewString() + `","title":"Blocked road","category":"infrastructure","severity":"medium","location":{"lat":40.7,"lng":-74},"status":"resolved","reported_by":"` + uuid.NewString() + `","created_at":"2025-06-01T12:00:00Z"},"old_status":"pending"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/incident-status-changed", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.IncidentStatusChanged(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body=%s", rec.Code, rec.Body.String())
	}
}

func TestIncidentStatusChanged_RejectsUnknownOldStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock_events.NewMockNotifier(ctrl)

	h := events.NewHandler(testLogger(), notifier)

	body := `{"incident":{"id":"` + uuid.NewString() + `","title":"x","category":"other","severity":"low","location":{"lat":1,"lng":1},"status":"resolved","reported_by":"` + uuid.NewString() + `","created_at":"2025-06-01T12:00:00Z"},"old_status":"archived"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/incident-status-changed", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.IncidentStatusChanged(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body=%s", rec.Code, rec.Body.String())
	}
}
