package notifier

import (
	"fmt"
	"net/smtp"
	"strings"
)

// EmailNotifier sends HTML mail over SMTP with STARTTLS.
type EmailNotifier struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NewEmailNotifier creates an EmailNotifier.
func NewEmailNotifier(host string, port int, user, password, from string) *EmailNotifier {
	if from == "" {
		from = user
	}
	return &EmailNotifier{Host: host, Port: port, User: user, Password: password, From: from}
}

// Configured reports whether SMTP credentials are present.
func (e *EmailNotifier) Configured() bool {
	return e.User != "" && e.Password != ""
}

// Send delivers one HTML email.
func (e *EmailNotifier) Send(to, subject, htmlBody string) error {
	if !e.Configured() {
		return fmt.Errorf("smtp not configured")
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", e.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", e.Host, e.Port)
	auth := smtp.PlainAuth("", e.User, e.Password, e.Host)
	if err := smtp.SendMail(addr, auth, e.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
