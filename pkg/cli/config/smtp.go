package config

import (
	"log/slog"

	"github.com/folio-lab/portfolio-backend/pkg/service/mail"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// SMTP holds configuration for the outbound mail relay
type SMTP struct {
	host       string
	port       int
	sender     string
	password   string `masq:"secret"`
	adminEmail string
}

// Flags returns CLI flags for SMTP configuration
func (x *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server for outbound notifications",
			Value:       "smtp.gmail.com",
			Sources:     cli.EnvVars("PORTFOLIO_SMTP_HOST"),
			Destination: &x.host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP submission port (implicit TLS)",
			Value:       465,
			Sources:     cli.EnvVars("PORTFOLIO_SMTP_PORT"),
			Destination: &x.port,
		},
		&cli.StringFlag{
			Name:        "email-sender",
			Usage:       "Sender address, also used as the SMTP username",
			Sources:     cli.EnvVars("PORTFOLIO_EMAIL_SENDER"),
			Destination: &x.sender,
		},
		&cli.StringFlag{
			Name:        "email-password",
			Usage:       "SMTP password for the sender account",
			Sources:     cli.EnvVars("PORTFOLIO_EMAIL_PASSWORD"),
			Destination: &x.password,
		},
		&cli.StringFlag{
			Name:        "admin-email",
			Usage:       "Address notified on each contact-form submission (optional)",
			Sources:     cli.EnvVars("PORTFOLIO_ADMIN_EMAIL"),
			Destination: &x.adminEmail,
		},
	}
}

// LogValue returns log attributes for the SMTP configuration. The password is
// never logged.
func (x *SMTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", x.host),
		slog.Int("port", x.port),
		slog.String("sender", x.sender),
		slog.String("admin_email", x.adminEmail),
	)
}

// AdminEmail returns the configured admin notification address
func (x *SMTP) AdminEmail() string {
	return x.adminEmail
}

// Configure creates the mail relay. Returns nil if sender credentials are not
// configured (contact-form notifications will be skipped).
func (x *SMTP) Configure() (mail.Service, error) {
	if x.sender == "" || x.password == "" {
		return nil, nil
	}

	svc, err := mail.New(x.host, x.port, x.sender, x.password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create mail relay")
	}

	return svc, nil
}
