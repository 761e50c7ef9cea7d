package mail

import (
	"strings"
	"testing"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"
)

func TestRenderer_ProximityAlert(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	msg := notify.Message{
		Kind:     notify.MessageProximityAlert,
		To:       "user@example.com",
		Title:    "Fire near the park",
		Category: domain.CategoryFire,
		Severity: domain.SeverityCritical,
		Distance: "850m",
		Link:     "https://geopulse.example.com/incidents/abc",
	}

	body, err := r.Render(msg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Fire near the park",
		"850m",
		"#dc2626", // critical severity color
		"https://geopulse.example.com/incidents/abc",
		"Incident Alert",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("alert body missing %q", want)
		}
	}

	if got := Subject(msg); !strings.Contains(got, "New Incident Near You: Fire near the park") {
		t.Errorf("unexpected alert subject %q", got)
	}
}

func TestRenderer_StatusUpdate(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	msg := notify.Message{
		Kind:      notify.MessageStatusUpdate,
		Title:     "Blocked road",
		OldStatus: domain.StatusPending,
		NewStatus: domain.StatusResolved,
		Link:      "https://geopulse.example.com/incidents/def",
	}

	body, err := r.Render(msg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{"Blocked road", "pending", "resolved", "Status Update"} {
		if !strings.Contains(body, want) {
			t.Errorf("status body missing %q", want)
		}
	}

	if got := Subject(msg); got != "Update: Blocked road" {
		t.Errorf("unexpected status subject %q", got)
	}
}

func TestRenderer_EscapesHTMLInTitle(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	body, err := r.Render(notify.Message{
		Kind:  notify.MessageProximityAlert,
		Title: `<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatal("title not HTML-escaped")
	}
}

func TestEnvelopeFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"GeoPulse System <alerts@geopulse.local>", "alerts@geopulse.local"},
		{"alerts@geopulse.local", "alerts@geopulse.local"},
	}
	for _, c := range cases {
		if got := envelopeFrom(c.in); got != c.want {
			t.Errorf("envelopeFrom(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
