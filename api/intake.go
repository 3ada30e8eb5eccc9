package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/metrics"
	"github.com/rpupo63/constructco-site-backend/models"
	"github.com/rpupo63/constructco-site-backend/services"
)

const notifyTimeout = 30 * time.Second

// inquiryIntake stores contact inquiries from the API and the site form and announces them
type inquiryIntake struct {
	logger   zerolog.Logger
	repo     *database.ContactInquiryRepo
	notifier services.Notifier
}

func newInquiryIntake(repo *database.ContactInquiryRepo, notifier services.Notifier) inquiryIntake {
	return inquiryIntake{
		logger:   log.With().Str("handlerName", "inquiryIntake").Logger(),
		repo:     repo,
		notifier: notifier,
	}
}

// submit validates and stores a new inquiry. It is always stored with status new.
func (i inquiryIntake) submit(ctx context.Context, inquiry *models.ContactInquiry, source string) error {
	inquiry.Normalize()
	inquiry.Status = models.InquiryStatusNew
	if field, reason := inquiry.Validate(); field != "" {
		return errs.NewValidationError(field, reason)
	}

	if err := i.repo.Add(ctx, inquiry); err != nil {
		return wrapDatabaseError("create", "contact inquiry", err)
	}
	metrics.RecordInquirySubmission(source)
	i.logger.Info().Str("inquiryID", inquiry.ID.String()).Str("source", source).Msg("Stored contact inquiry")

	i.notifyAsync(*inquiry)
	return nil
}

// notifyAsync sends notifications off the request path; failures are only logged
func (i inquiryIntake) notifyAsync(inquiry models.ContactInquiry) {
	if i.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := i.notifier.NotifyInquiry(ctx, &inquiry); err != nil {
			metrics.RecordNotificationFailure()
			i.logger.Error().Err(err).Str("inquiryID", inquiry.ID.String()).Msg("Failed to send inquiry notification")
		}
	}()
}
