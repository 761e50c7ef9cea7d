package notify_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"
	mock_notify "github.com/ProTechPh/GeoPulse/internal/notify/mocks"
)

func TestEngine_OnIncidentCreated_Enqueues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incident := testIncident(domain.CategoryFire)

	queue := mock_notify.NewMockJobQueue(ctrl)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, job domain.NotificationJob) error {
			if job.Kind != domain.JobProximity {
				t.Errorf("job kind = %s, want %s", job.Kind, domain.JobProximity)
			}
			if job.Incident.ID != incident.ID {
				t.Errorf("job incident = %s, want %s", job.Incident.ID, incident.ID)
			}
			if job.EnqueuedAt.IsZero() {
				t.Error("job missing enqueued_at")
			}
			return nil
		}).
		Times(1)

	en := notify.NewEngine(queue, nil, discardLogger(), time.Second)
	en.OnIncidentCreated(incident)
}

func TestEngine_OnIncidentStatusChanged_Enqueues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incident := testIncident(domain.CategoryFlood)
	incident.Status = domain.StatusResolved

	queue := mock_notify.NewMockJobQueue(ctrl)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, job domain.NotificationJob) error {
			if job.Kind != domain.JobStatusChange {
				t.Errorf("job kind = %s, want %s", job.Kind, domain.JobStatusChange)
			}
			if job.OldStatus != domain.StatusPending {
				t.Errorf("job old_status = %s, want pending", job.OldStatus)
			}
			return nil
		}).
		Times(1)

	en := notify.NewEngine(queue, nil, discardLogger(), time.Second)
	en.OnIncidentStatusChanged(incident, domain.StatusPending)
}

func TestEngine_OnIncidentStatusChanged_UnchangedStatusDropped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incident := testIncident(domain.CategoryCrime)
	incident.Status = domain.StatusPending

	queue := mock_notify.NewMockJobQueue(ctrl)
	// No Enqueue expectation: the unchanged transition never becomes a job.

	en := notify.NewEngine(queue, nil, discardLogger(), time.Second)
	en.OnIncidentStatusChanged(incident, domain.StatusPending)
}
