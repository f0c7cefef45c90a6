// Package mailer sends the relay's transactional HTML email and owns the
// templates that produce it.
package mailer

import (
	"errors"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// ErrDisabled is returned by the no-op mailer installed at startup when
// SMTP credentials are absent.
var ErrDisabled = errors.New("mailer disabled: no SMTP credentials configured")

// Message is one outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers transactional email. Implementations must be safe for
// concurrent use; each Send is an independent outbound call.
type Mailer interface {
	Send(m Message) error
}

// SMTP delivers mail through a gomail dialer bound to a single account.
// The account identity is always the From header.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP returns an SMTP mailer for the given account.
func NewSMTP(host string, port int, user, pass string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// Send dials and delivers a single message in its own SMTP session.
func (s *SMTP) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

// Disabled is the mailer used when no credentials were configured.
// Every send fails with ErrDisabled.
type Disabled struct{}

func (Disabled) Send(Message) error { return ErrDisabled }
