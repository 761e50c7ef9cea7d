package mail

import (
	"bytes"
	"html/template"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"
)

var severityColors = map[domain.Severity]string{
	domain.SeverityLow:      "#10b981",
	domain.SeverityMedium:   "#f59e0b",
	domain.SeverityHigh:     "#ef4444",
	domain.SeverityCritical: "#dc2626",
}

const alertTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">
      <h1>🚨 Incident Alert</h1>
    </div>
    <div style="padding: 20px;">
      <p>A new incident has been reported in your area:</p>
      <h2>{{.Title}}</h2>
      <p><strong>Category:</strong> {{.Category}}</p>
      <p><strong>Severity:</strong> <span style="display: inline-block; padding: 5px 15px; border-radius: 20px; color: white; font-weight: bold; text-transform: uppercase; background-color: {{.SeverityColor}};">{{.Severity}}</span></p>
      <p><strong>Distance:</strong> Approximately {{.Distance}} away</p>
      <center><a href="{{.Link}}" style="display: inline-block; padding: 12px 30px; background-color: #667eea; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0;">View on Map</a></center>
      <p style="margin-top: 30px; font-size: 14px; color: #666;">Stay safe and follow instructions from authorities.</p>
    </div>
    <div style="text-align: center; padding: 20px; color: #666; font-size: 12px; border-top: 1px solid #ddd;">
      <p>This is an automated alert from GeoPulse Incident Reporting System.</p>
      <p>You're receiving this because incident notifications are enabled in your account.</p>
    </div>
  </div>
</body>
</html>`

const statusTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">
      <h1>📋 Status Update</h1>
    </div>
    <div style="padding: 20px;">
      <p>The incident you're following has been updated:</p>
      <h2>{{.Title}}</h2>
      <div style="background-color: #f0f9ff; border-left: 4px solid #667eea; padding: 15px; margin: 20px 0;">
        <p><strong>Status Changed:</strong></p>
        <p>{{.OldStatus}} → {{.NewStatus}}</p>
      </div>
      <center><a href="{{.Link}}" style="display: inline-block; padding: 12px 30px; background-color: #667eea; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0;">View Details</a></center>
    </div>
    <div style="text-align: center; padding: 20px; color: #666; font-size: 12px; border-top: 1px solid #ddd;">
      <p>GeoPulse Incident Reporting System</p>
    </div>
  </div>
</body>
</html>`

type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t := template.New("alert")
	if _, err := t.Parse(alertTemplate); err != nil {
		return nil, err
	}
	if _, err := t.New("status").Parse(statusTemplate); err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

type templateData struct {
	Title         string
	Category      domain.Category
	Severity      domain.Severity
	SeverityColor string
	Distance      string
	OldStatus     domain.IncidentStatus
	NewStatus     domain.IncidentStatus
	Link          string
}

func (r *Renderer) Render(msg notify.Message) (string, error) {
	color, ok := severityColors[msg.Severity]
	if !ok {
		color = "#6b7280"
	}

	data := templateData{
		Title:         msg.Title,
		Category:      msg.Category,
		Severity:      msg.Severity,
		SeverityColor: color,
		Distance:      msg.Distance,
		OldStatus:     msg.OldStatus,
		NewStatus:     msg.NewStatus,
		Link:          msg.Link,
	}

	name := "alert"
	if msg.Kind == notify.MessageStatusUpdate {
		name = "status"
	}

	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Subject mirrors the subjects the client apps expect.
func Subject(msg notify.Message) string {
	if msg.Kind == notify.MessageStatusUpdate {
		return "Update: " + msg.Title
	}
	return "🚨 New Incident Near You: " + msg.Title
}
