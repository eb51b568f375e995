package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var sendgridURL = "https://api.sendgrid.com/v3/mail/send"

const (
	senderEmail = "info@nblkconsulting.com"
	senderName  = "NBLK"
)

// Mail is a rendered email ready for submission.
type Mail struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender submits a rendered email to a delivery provider.
type Sender interface {
	Send(ctx context.Context, mail Mail) error
}

// SendGridSender implements Sender against the SendGrid v3 mail API.
type SendGridSender struct {
	apiKey     string
	httpClient *http.Client
}

// NewSendGridSender constructs a SendGridSender.
func NewSendGridSender(apiKey string, timeout time.Duration) (*SendGridSender, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SendGridSender{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To      []sgAddress `json:"to"`
	Subject string      `json:"subject"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	ReplyTo          sgAddress           `json:"reply_to"`
	Content          []sgContent         `json:"content"`
}

// Send posts the mail to SendGrid. Non-2xx responses return an error with
// the provider's status and body excerpt.
func (s *SendGridSender) Send(ctx context.Context, mail Mail) error {
	payload, err := json.Marshal(sgRequest{
		Personalizations: []sgPersonalization{
			{To: []sgAddress{{Email: mail.To, Name: mail.ToName}}, Subject: mail.Subject},
		},
		From:    sgAddress{Email: senderEmail, Name: senderName},
		ReplyTo: sgAddress{Email: senderEmail, Name: senderName},
		Content: []sgContent{{Type: "text/html", Value: mail.HTML}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

var _ Sender = (*SendGridSender)(nil)
