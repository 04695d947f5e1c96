package mailer

import (
	"context"
	"fmt"
	"io"

	"gatetogether/pkg/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Payload is one renderable notification. BookingID identifies the booking
// the payload belongs to, so a retry queue can be keyed on it without
// changing any caller.
type Payload struct {
	BookingID string
	To        string
	Subject   string
	HTML      string
	Text      string
	ImageCID  string
	ImagePNG  []byte
}

// Dispatcher delivers a payload to the attendee's address. Delivery is
// best-effort: a failed send never invalidates the booking it belongs to.
type Dispatcher interface {
	Send(ctx context.Context, payload *Payload) error
}

type smtpDispatcher struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPDispatcher(config utils.EmailConfig, log *zap.Logger) Dispatcher {
	return &smtpDispatcher{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

// Send delivers the payload over SMTP, bounded by the context deadline
func (d *smtpDispatcher) Send(ctx context.Context, payload *Payload) error {
	m := gomail.NewMessage()
	m.SetHeader("From", d.config.From)
	m.SetHeader("To", payload.To)
	m.SetHeader("Subject", payload.Subject)

	if payload.Text != "" {
		m.SetBody("text/plain", payload.Text)
		m.AddAlternative("text/html", payload.HTML)
	} else {
		m.SetBody("text/html", payload.HTML)
	}

	if len(payload.ImagePNG) > 0 {
		m.Embed(payload.ImageCID, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(payload.ImagePNG)
			return err
		}))
	}

	dialer := gomail.NewDialer(d.config.Host, d.config.Port, d.config.User, d.config.Password)

	// gomail has no context support; run the send in a goroutine so a hung
	// SMTP connection cannot block the registration response past its budget
	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			d.log.Error("Failed to send email",
				zap.Error(err),
				zap.String("booking_id", payload.BookingID),
				zap.String("to", payload.To),
			)
			return fmt.Errorf("send email to %s: %w", payload.To, err)
		}
	case <-ctx.Done():
		d.log.Error("Email send timed out",
			zap.String("booking_id", payload.BookingID),
			zap.String("to", payload.To),
		)
		return fmt.Errorf("send email to %s: %w", payload.To, ctx.Err())
	}

	d.log.Info("Email sent",
		zap.String("booking_id", payload.BookingID),
		zap.String("to", payload.To),
	)

	return nil
}
