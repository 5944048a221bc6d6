package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interiorquote/internal/config"
	"interiorquote/internal/domain/entities"
	mock_interfaces "interiorquote/internal/usecase/interfaces/mocks"

	"github.com/domodwyer/mailyak/v3"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/mock/gomock"
)

func quoteNotification() entities.Notification {
	return entities.Notification{
		To:      "asha@example.com",
		Phone:   "+919800000000",
		Subject: "Your quote",
		HTML:    "<p>Total INR 48,120.00</p>",
		Text:    "Total INR 48,120.00",
		Attachment: &entities.NotificationAttachment{
			Filename:    "living-room-1-abcd1234.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		},
	}
}

func TestEmailNotifier_Notify(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "quotes@example.com", FromName: "Studio"}

	t.Run("builds the message with the attachment", func(t *testing.T) {
		n := NewEmailNotifier(cfg)
		var sent *mailyak.MailYak
		n.send = func(m *mailyak.MailYak) error {
			sent = m
			return nil
		}

		require.NoError(t, n.Notify(context.Background(), quoteNotification()))
		require.NotNil(t, sent)

		buf, err := sent.MimeBuf()
		require.NoError(t, err)
		raw := buf.String()
		require.Contains(t, raw, "Subject: Your quote")
		require.Contains(t, raw, "asha@example.com")
		require.Contains(t, raw, "living-room-1-abcd1234.pdf")
	})

	t.Run("send errors are returned", func(t *testing.T) {
		n := NewEmailNotifier(cfg)
		n.send = func(*mailyak.MailYak) error { return errors.New("connection refused") }

		err := n.Notify(context.Background(), quoteNotification())
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "connection refused"))
	})

	t.Run("missing recipient", func(t *testing.T) {
		n := NewEmailNotifier(cfg)
		msg := quoteNotification()
		msg.To = ""
		require.ErrorIs(t, n.Notify(context.Background(), msg), ErrMissingRecipient)
	})

	t.Run("cancelled context", func(t *testing.T) {
		n := NewEmailNotifier(cfg)
		n.send = func(*mailyak.MailYak) error {
			t.Fatal("send must not be called")
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, n.Notify(ctx, quoteNotification()), context.Canceled)
	})
}

type messageCreatorStub struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (s *messageCreatorStub) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSNotifier_Notify(t *testing.T) {
	t.Run("sends the text body", func(t *testing.T) {
		stub := &messageCreatorStub{}
		n := &SMSNotifier{api: stub, from: "+15550001111"}

		require.NoError(t, n.Notify(context.Background(), quoteNotification()))
		require.Equal(t, "+919800000000", *stub.params.To)
		require.Equal(t, "+15550001111", *stub.params.From)
		require.Equal(t, "Total INR 48,120.00", *stub.params.Body)
	})

	t.Run("falls back to the subject", func(t *testing.T) {
		stub := &messageCreatorStub{}
		n := &SMSNotifier{api: stub, from: "+15550001111"}
		msg := quoteNotification()
		msg.Text = ""

		require.NoError(t, n.Notify(context.Background(), msg))
		require.Equal(t, "Your quote", *stub.params.Body)
	})

	t.Run("missing phone", func(t *testing.T) {
		n := &SMSNotifier{api: &messageCreatorStub{}}
		msg := quoteNotification()
		msg.Phone = ""
		require.ErrorIs(t, n.Notify(context.Background(), msg), ErrMissingRecipient)
	})

	t.Run("provider error", func(t *testing.T) {
		n := &SMSNotifier{api: &messageCreatorStub{err: errors.New("unverified number")}}
		require.Error(t, n.Notify(context.Background(), quoteNotification()))
	})
}

func TestNotifier_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("email and sms copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		email := mock_interfaces.NewMockINotifier(ctrl)
		sms := mock_interfaces.NewMockINotifier(ctrl)
		msg := quoteNotification()

		email.EXPECT().Notify(ctx, msg).Return(nil)
		sms.EXPECT().Notify(ctx, msg).Return(nil)

		require.NoError(t, NewNotifier(email, sms).Notify(ctx, msg))
	})

	t.Run("sms failure is not reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		email := mock_interfaces.NewMockINotifier(ctrl)
		sms := mock_interfaces.NewMockINotifier(ctrl)
		msg := quoteNotification()

		email.EXPECT().Notify(ctx, msg).Return(nil)
		sms.EXPECT().Notify(ctx, msg).Return(errors.New("twilio down"))

		require.NoError(t, NewNotifier(email, sms).Notify(ctx, msg))
	})

	t.Run("email failure skips sms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		email := mock_interfaces.NewMockINotifier(ctrl)
		sms := mock_interfaces.NewMockINotifier(ctrl)
		msg := quoteNotification()

		email.EXPECT().Notify(ctx, msg).Return(errors.New("smtp down"))

		require.Error(t, NewNotifier(email, sms).Notify(ctx, msg))
	})

	t.Run("no phone means no sms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		email := mock_interfaces.NewMockINotifier(ctrl)
		sms := mock_interfaces.NewMockINotifier(ctrl)
		msg := quoteNotification()
		msg.Phone = ""

		email.EXPECT().Notify(ctx, msg).Return(nil)

		require.NoError(t, NewNotifier(email, sms).Notify(ctx, msg))
	})
}

func TestNew(t *testing.T) {
	t.Run("nil without smtp", func(t *testing.T) {
		require.Nil(t, New(config.SMTPConfig{}, config.TwilioConfig{}))
	})

	t.Run("email only", func(t *testing.T) {
		n := New(config.SMTPConfig{Host: "smtp.example.com", Port: 25, From: "a@b.c"}, config.TwilioConfig{})
		fan, ok := n.(*Notifier)
		require.True(t, ok)
		require.Nil(t, fan.sms)
	})

	t.Run("email and sms", func(t *testing.T) {
		n := New(
			config.SMTPConfig{Host: "smtp.example.com", Port: 25, From: "a@b.c"},
			config.TwilioConfig{AccountSID: "AC1", AuthToken: "tok", From: "+1555"},
		)
		fan, ok := n.(*Notifier)
		require.True(t, ok)
		require.NotNil(t, fan.sms)
	})
}
