package notification

import (
	"context"
	"log"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"
)

// Notifier sends the email and, when a phone number and an SMS channel are
// available, a text copy. Only the email result is reported.
type Notifier struct {
	email interfaces.INotifier
	sms   interfaces.INotifier
}

var _ interfaces.INotifier = (*Notifier)(nil)

func NewNotifier(email, sms interfaces.INotifier) *Notifier {
	return &Notifier{email: email, sms: sms}
}

// New returns nil when SMTP is not configured.
func New(smtpCfg config.SMTPConfig, twilioCfg config.TwilioConfig) interfaces.INotifier {
	if !smtpCfg.Enabled() {
		log.Printf("[notification] smtp not configured, quotes will be sent without notification")
		return nil
	}
	var sms interfaces.INotifier
	if twilioCfg.Enabled() {
		sms = NewSMSNotifier(twilioCfg)
	}
	return NewNotifier(NewEmailNotifier(smtpCfg), sms)
}

func (n *Notifier) Notify(ctx context.Context, msg entities.Notification) error {
	if err := n.email.Notify(ctx, msg); err != nil {
		return err
	}
	if n.sms != nil && msg.Phone != "" {
		if err := n.sms.Notify(ctx, msg); err != nil {
			log.Printf("[notification] sms copy failed phone=%s err=%v", msg.Phone, err)
		}
	}
	return nil
}
