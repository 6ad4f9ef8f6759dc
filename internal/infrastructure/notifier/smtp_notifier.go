package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// SMTPNotifier implements usecase.Notifier by delivering notifications over
// SMTP with implicit TLS.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	metrics  *metrics.Metrics
}

// NewSMTPNotifier creates a new SMTPNotifier.
func NewSMTPNotifier(host string, port int, username, password, from string, m *metrics.Metrics) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		metrics:  m,
	}
}

// Notify delivers the notification as an email.
func (n *SMTPNotifier) Notify(_ context.Context, notification domain.Notification) error {
	err := n.send(notification.Recipient, notification.Subject, notification.Body)
	if n.metrics != nil {
		if err != nil {
			n.metrics.NotificationsFailed.Inc()
		} else {
			n.metrics.NotificationsSent.Inc()
		}
	}

	return err
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", n.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := n.host + ":" + strconv.Itoa(n.port)

	tlsConfig := &tls.Config{
		ServerName: n.host,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", n.username, n.password, n.host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(n.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}

	return w.Close()
}
