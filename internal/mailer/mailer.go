package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. It implements the dispatcher
// interfaces of the reset flow and the contact endpoint.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	contactTo string
}

func New(host string, port int, user, pass, from, contactTo string) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(host, port, user, pass),
		from:      from,
		contactTo: contactTo,
	}
}

// SendResetLink delivers the password-reset link, plain text plus HTML.
func (m *Mailer) SendResetLink(ctx context.Context, to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your Intervue password")
	msg.SetBody("text/plain", fmt.Sprintf("Reset your password using the link below:\n\n%s\n\nIf you did not request this, you can ignore this email.", link))
	msg.AddAlternative("text/html", fmt.Sprintf("<p>Reset your password using the link below:</p><p><a href=%q>Reset password</a></p><p>If you did not request this, you can ignore this email.</p>", link))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// SendContact forwards a contact-form submission to the configured inbox.
func (m *Mailer) SendContact(ctx context.Context, name, replyTo, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("Reply-To", replyTo)
	msg.SetHeader("To", m.contactTo)
	msg.SetHeader("Subject", fmt.Sprintf("Contact Form Submission from %s", name))
	msg.SetBody("text/plain", message)
	msg.AddAlternative("text/html", fmt.Sprintf("<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong> %s</p>", name, replyTo, message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
