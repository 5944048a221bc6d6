package notification

import (
	"context"
	"fmt"
	"log"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier sends a short text copy of the notification through Twilio.
type SMSNotifier struct {
	api  messageCreator
	from string
}

func NewSMSNotifier(cfg config.TwilioConfig) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMSNotifier{api: client.Api, from: cfg.From}
}

func (n *SMSNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	if msg.Phone == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := msg.Text
	if body == "" {
		body = msg.Subject
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.Phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		log.Printf("[notification][sms] send failed to=%s err=%v", msg.Phone, err)
		return fmt.Errorf("send sms: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("[notification][sms] sent to=%s sid=%s", msg.Phone, *resp.Sid)
	}
	return nil
}
