package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ContactInput is one decoded contact-form submission
type ContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
}

// ContactUseCase validates, persists and announces contact-form submissions
type ContactUseCase struct {
	uc *UseCases
}

func newContactUseCase(uc *UseCases) *ContactUseCase {
	return &ContactUseCase{uc: uc}
}

// Submit validates the input, stores the submission and attempts two
// best-effort notifications: a confirmation to the submitter and an alert to
// the configured admin address. Delivery failures are logged only; the insert
// alone decides the outcome.
func (x *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*model.ContactSubmission, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	subject := input.Subject
	if subject == "" {
		subject = model.DefaultSubject
	}

	submission := &model.ContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
		IPAddress: input.IPAddress,
		Status:    model.ContactStatusNew,
	}

	id, err := x.uc.repo.Contact().Insert(ctx, submission)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert contact submission")
	}
	submission.ID = id

	x.notify(ctx, submission)

	return submission, nil
}

func (x *ContactUseCase) notify(ctx context.Context, submission *model.ContactSubmission) {
	if x.uc.mailer == nil {
		logging.From(ctx).Info("mail relay not configured, skipping notifications")
		return
	}

	logger := logging.From(ctx)

	if err := x.uc.mailer.Deliver(ctx, submission.Email,
		"Thanks for contacting us!",
		"We will get back to you soon.",
	); err != nil {
		logger.Error("failed to send confirmation email",
			"to", submission.Email,
			"error", err.Error(),
		)
	}

	if x.uc.adminEmail == "" {
		return
	}

	if err := x.uc.mailer.Deliver(ctx, x.uc.adminEmail,
		"New Contact Form Submission",
		adminNotificationBody(submission),
	); err != nil {
		logger.Error("failed to send admin notification",
			"to", x.uc.adminEmail,
			"error", err.Error(),
		)
	}
}

func adminNotificationBody(submission *model.ContactSubmission) string {
	return fmt.Sprintf(
		"New contact form submission:\nName: %s\nEmail: %s\nSubject: %s\nMessage: %s\n",
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
	)
}
