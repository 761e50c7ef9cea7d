package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ProTechPh/GeoPulse/internal/config"
	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSChannel delivers plain-text alerts through the Twilio REST API.
type SMSChannel struct {
	client *twilio.RestClient
	from   string
	logger *slog.Logger
}

func NewSMSChannel(cfg config.TwilioConfig, logger *slog.Logger) *SMSChannel {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMSChannel{client: client, from: cfg.FromNumber, logger: logger}
}

func (c *SMSChannel) Kind() domain.Channel {
	return domain.ChannelSMS
}

func (c *SMSChannel) Send(ctx context.Context, msg notify.Message) domain.DeliveryResult {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryResult{Success: false, Error: err.Error()}
	}
	if msg.To == "" {
		return domain.DeliveryResult{Success: false, Error: "recipient phone number is empty"}
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(c.from)
	params.SetBody(smsBody(msg))

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return domain.DeliveryResult{Success: false, Error: err.Error()}
	}
	return domain.DeliveryResult{Success: true}
}

func smsBody(msg notify.Message) string {
	if msg.Kind == notify.MessageStatusUpdate {
		return fmt.Sprintf("GeoPulse update: %q changed %s -> %s. %s",
			msg.Title, msg.OldStatus, msg.NewStatus, msg.Link)
	}
	return fmt.Sprintf("GeoPulse alert: %s (%s, %s severity) reported ~%s from you. %s",
		msg.Title, msg.Category, msg.Severity, msg.Distance, msg.Link)
}
