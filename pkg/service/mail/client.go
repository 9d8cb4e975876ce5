package mail

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	gomail "github.com/wneessen/go-mail"
)

// Service delivers a plain-text email. Deliveries are best effort; the caller
// decides whether a failure matters.
type Service interface {
	Deliver(ctx context.Context, to, subject, body string) error
}

// client implements Service over SMTP with implicit TLS
type client struct {
	host     string
	port     int
	sender   string
	password string
}

// New creates a new mail relay. Sender doubles as the SMTP username.
func New(host string, port int, sender, password string) (Service, error) {
	if host == "" {
		return nil, goerr.New("SMTP host is required")
	}
	if sender == "" || password == "" {
		return nil, goerr.New("SMTP sender and password are required")
	}

	return &client{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}, nil
}

func (c *client) Deliver(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(c.sender); err != nil {
		return goerr.Wrap(err, "invalid sender address", goerr.V("sender", c.sender))
	}
	if err := msg.To(to); err != nil {
		return goerr.Wrap(err, "invalid recipient address", goerr.V("to", to))
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	mc, err := gomail.NewClient(c.host,
		gomail.WithPort(c.port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.sender),
		gomail.WithPassword(c.password),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create SMTP client", goerr.V("host", c.host))
	}

	if err := mc.DialAndSendWithContext(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to deliver email", goerr.V("to", to), goerr.V("subject", subject))
	}

	return nil
}
