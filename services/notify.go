package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/models"
)

// Notifier tells the business about a new contact inquiry
type Notifier interface {
	NotifyInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
}

// NotifySettings configures the inquiry notification channels. A channel with
// missing settings is left out.
type NotifySettings struct {
	ResendAPIKey     string   `env:"RESEND_API_KEY"`
	ResendFromEmail  string   `env:"RESEND_FROM_EMAIL"`
	ResendBaseURL    string   `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	NotifyEmails     []string `env:"INQUIRY_NOTIFY_EMAILS" envSeparator:","`
	TwilioAccountSID string   `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string   `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string   `env:"TWILIO_FROM_NUMBER"`
	NotifyPhone      string   `env:"INQUIRY_NOTIFY_PHONE"`
}

// Notifiers fans a notification out to every channel
type Notifiers []Notifier

// NewNotifiers builds the channels the settings enable
func NewNotifiers(settings NotifySettings) Notifiers {
	var notifiers Notifiers

	if settings.ResendAPIKey != "" && settings.ResendFromEmail != "" && len(settings.NotifyEmails) > 0 {
		notifiers = append(notifiers, NewEmailNotifier(NewResendClient(settings.ResendAPIKey, settings.ResendFromEmail, settings.ResendBaseURL), settings.NotifyEmails))
		log.Info().Strs("recipients", settings.NotifyEmails).Msg("Inquiry email notifications enabled")
	}

	if settings.TwilioAccountSID != "" && settings.TwilioAuthToken != "" && settings.TwilioFromNumber != "" && settings.NotifyPhone != "" {
		notifiers = append(notifiers, NewTwilioNotifier(settings.TwilioAccountSID, settings.TwilioAuthToken, settings.TwilioFromNumber, settings.NotifyPhone))
		log.Info().Str("phone", settings.NotifyPhone).Msg("Inquiry SMS notifications enabled")
	}

	if len(notifiers) == 0 {
		log.Warn().Msg("No inquiry notification channel configured; inquiries will only be stored")
	}
	return notifiers
}

// NotifyInquiry calls every notifier and joins their errors
func (n Notifiers) NotifyInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	var errList []error
	for _, notifier := range n {
		if err := notifier.NotifyInquiry(ctx, inquiry); err != nil {
			errList = append(errList, fmt.Errorf("%T: %w", notifier, err))
		}
	}
	return errors.Join(errList...)
}

func inquirySummary(inquiry *models.ContactInquiry) string {
	summary := fmt.Sprintf("New inquiry from %s <%s>", inquiry.Name, inquiry.Email)
	if inquiry.ServiceType != "" {
		summary += " about " + models.ServiceTypeLabel(inquiry.ServiceType)
	}
	if inquiry.Phone != nil {
		summary += ", phone " + *inquiry.Phone
	}
	return summary
}
