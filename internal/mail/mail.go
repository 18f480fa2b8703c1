// Package mail delivers verification codes through an EmailJS-compatible
// endpoint. Delivery is best-effort: callers fall back to showing the
// code on-screen when Send fails.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sender delivers a verification code to a recipient address.
type Sender interface {
	Send(ctx context.Context, recipient, code string) error
}

// Options configures the EmailJS sender.
type Options struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

// DefaultEndpoint is the public EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSender sends codes via the EmailJS HTTP API.
type EmailJSSender struct {
	opts   Options
	client *http.Client
}

// NewEmailJS creates a sender for the given account options.
func NewEmailJS(opts Options) *EmailJSSender {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &EmailJSSender{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// sendRequest is the EmailJS send payload.
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	ToEmail          string `json:"to_email"`
	VerificationCode string `json:"verification_code"`
}

// Send posts the code to the configured template. Any non-2xx response
// is an error.
func (s *EmailJSSender) Send(ctx context.Context, recipient, code string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:  s.opts.ServiceID,
		TemplateID: s.opts.TemplateID,
		UserID:     s.opts.PublicKey,
		TemplateParams: templateParams{
			ToEmail:          recipient,
			VerificationCode: code,
		},
	})
	if err != nil {
		return fmt.Errorf("encoding send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending verification email: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email send failed: status %d", resp.StatusCode)
	}
	return nil
}
