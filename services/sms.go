package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/constructco-site-backend/models"
)

const maxSMSLength = 320

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier texts a short inquiry summary to the office phone
type TwilioNotifier struct {
	api  messageCreator
	from string
	to   string
}

func NewTwilioNotifier(accountSID, authToken, from, to string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, from: from, to: normalizePhone(to)}
}

func (n *TwilioNotifier) NotifyInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	body := inquirySummary(inquiry) + ": " + inquiry.Message
	body = truncateBody(body, maxSMSLength)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Info().Str("messageSid", *resp.Sid).Msg("Successfully sent inquiry SMS via Twilio")
	}
	return nil
}

// normalizePhone makes sure the number carries a country code, assuming US numbers otherwise
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	if strings.HasPrefix(phone, "1") {
		return "+" + phone
	}
	return "+1" + phone
}

// truncateBody cuts body to at most limit bytes on a rune boundary, marking the cut with "..."
func truncateBody(body string, limit int) string {
	if len(body) <= limit {
		return body
	}
	cut := limit - 3
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
