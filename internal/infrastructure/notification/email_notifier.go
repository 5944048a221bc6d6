package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"

	"github.com/domodwyer/mailyak/v3"
)

var ErrMissingRecipient = errors.New("notification has no recipient")

// EmailNotifier delivers quotes over SMTP.
type EmailNotifier struct {
	cfg     config.SMTPConfig
	newMail func() *mailyak.MailYak
	send    func(m *mailyak.MailYak) error
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &EmailNotifier{
		cfg:     cfg,
		newMail: func() *mailyak.MailYak { return mailyak.New(addr, auth) },
		send:    func(m *mailyak.MailYak) error { return m.Send() },
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := n.newMail()
	m.To(msg.To)
	m.From(n.cfg.From)
	if n.cfg.FromName != "" {
		m.FromName(n.cfg.FromName)
	}
	m.Subject(msg.Subject)
	if msg.HTML != "" {
		m.HTML().Set(msg.HTML)
	}
	if msg.Text != "" {
		m.Plain().Set(msg.Text)
	}
	if a := msg.Attachment; a != nil {
		m.AttachWithMimeType(a.Filename, bytes.NewReader(a.Content), a.ContentType)
	}

	if err := n.send(m); err != nil {
		log.Printf("[notification][email] send failed to=%s err=%v", msg.To, err)
		return fmt.Errorf("send email: %w", err)
	}
	log.Printf("[notification][email] sent to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
