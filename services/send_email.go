package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendClient sends mail through the Resend HTTP API
type ResendClient struct {
	apiKey     string
	fromEmail  string
	baseURL    string
	httpClient *http.Client
}

func NewResendClient(apiKey, fromEmail, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &ResendClient{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SendEmail sends an HTML email to the recipients
func (c *ResendClient) SendEmail(ctx context.Context, email ResendEmailRequest) error {
	if len(email.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	email.From = c.fromEmail

	jsonPayload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}
	return nil
}

// EmailNotifier mails each new inquiry to the office
type EmailNotifier struct {
	client     *ResendClient
	recipients []string
}

func NewEmailNotifier(client *ResendClient, recipients []string) *EmailNotifier {
	return &EmailNotifier{client: client, recipients: recipients}
}

func (n *EmailNotifier) NotifyInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	var body bytes.Buffer
	if err := inquiryEmail(inquiry).Render(ctx, &body); err != nil {
		return fmt.Errorf("failed to render inquiry email: %w", err)
	}

	return n.client.SendEmail(ctx, ResendEmailRequest{
		To:      n.recipients,
		Subject: "New inquiry: " + inquiry.Subject,
		Html:    body.String(),
		Text:    inquirySummary(inquiry) + "\n\n" + inquiry.Message,
		ReplyTo: inquiry.Email,
	})
}

func inquiryEmail(inquiry *models.ContactInquiry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rows := [][2]string{
			{"Name", inquiry.Name},
			{"Email", inquiry.Email},
			{"Service", models.ServiceTypeLabel(inquiry.ServiceType)},
			{"Subject", inquiry.Subject},
		}
		if inquiry.Phone != nil {
			rows = append(rows, [2]string{"Phone", *inquiry.Phone})
		}

		var b strings.Builder
		b.WriteString("<h2>New contact inquiry</h2><table>")
		for _, row := range rows {
			fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", row[0], templ.EscapeString(row[1]))
		}
		b.WriteString("</table><p>")
		b.WriteString(strings.ReplaceAll(templ.EscapeString(inquiry.Message), "\n", "<br>"))
		b.WriteString("</p>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
