package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/config"
)

// ResendEmailRequest represents the request payload for the Resend API.
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API.
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends subscriber confirmation mail through the Resend API. With no
// API key configured it logs and stays silent, so local setups work without
// outbound mail.
type Mailer struct {
	apiKey  string
	from    string
	apiURL  string
	siteURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewMailer(c map[string]string) *Mailer {
	return &Mailer{
		apiKey:  config.GetString(c, "RESEND_API_KEY", ""),
		from:    config.GetString(c, "RESEND_FROM_EMAIL", "Columna <no-reply@localhost>"),
		apiURL:  config.GetString(c, "RESEND_API_URL", "https://api.resend.com/emails"),
		siteURL: config.GetString(c, "SITE_URL", "http://localhost:8080"),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  log.With().Str("service", "mailer").Logger(),
	}
}

// SendConfirmation mails the double-opt-in link for a newly registered
// subscriber.
func (m *Mailer) SendConfirmation(email, token string) error {
	if m.apiKey == "" {
		m.logger.Debug().Str("email", email).Msg("no mail API key configured, skipping confirmation mail")
		return nil
	}

	link := fmt.Sprintf("%s/subscribers/confirm?token=%s", m.siteURL, token)
	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Confirma tu suscripcion",
		Html: fmt.Sprintf(
			`<p>Gracias por suscribirte. Confirma tu correo haciendo clic <a href="%s">aqui</a>.</p>`, link),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling confirmation mail: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building confirmation mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending confirmation mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var apiErr ResendErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("mail API returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("mail API returned %d", resp.StatusCode)
	}

	m.logger.Info().Str("email", email).Msg("confirmation mail sent")
	return nil
}
