package gservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	mailgunEndpoint   = "https://api.mailgun.net/v3"
	mailgunEUEndpoint = "https://api.eu.mailgun.net/v3"
)

// MailgunEndpoint returns the API base URL for a Mailgun region ("us" or "eu").
func MailgunEndpoint(region string) string {
	if strings.ToLower(region) == "eu" {
		return mailgunEUEndpoint
	}
	return mailgunEndpoint
}

// Message is an outgoing email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// DomainInfo is the part of Mailgun's domain description the mailer checks.
type DomainInfo struct {
	Name       string `json:"name"`
	State      string `json:"state"`
	IsDisabled bool   `json:"is_disabled"`
}

// Mailgun sends messages through one Mailgun sending domain.
type Mailgun struct {
	clt      *http.Client
	endpoint string
	domain   string
	apiKey   string
}

// NewMailgun creates a Mailgun client for the given API base URL.
func NewMailgun(clt *http.Client, endpoint, domain, apiKey string) *Mailgun {
	return &Mailgun{
		clt:      clt,
		endpoint: strings.TrimSuffix(endpoint, "/"),
		domain:   domain,
		apiKey:   apiKey,
	}
}

// SendingDomain returns the domain messages are sent from.
func (m *Mailgun) SendingDomain() string {
	return m.domain
}

// Send posts a message to the domain's messages endpoint.
func (m *Mailgun) Send(ctx context.Context, msg Message) error {
	form := url.Values{}
	form.Set("from", msg.From)
	for _, to := range msg.To {
		form.Add("to", to)
	}
	form.Set("subject", msg.Subject)
	form.Set("text", msg.Text)
	if msg.HTML != "" {
		form.Set("html", msg.HTML)
	}
	if msg.ReplyTo != "" {
		form.Set("h:Reply-To", msg.ReplyTo)
	}

	apiURL := fmt.Sprintf("%s/%s/messages", m.endpoint, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.clt.Do(req)
	if err != nil {
		return fmt.Errorf("clt.Do failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mailgunError(resp)
	}

	return nil
}

// Domain fetches the state of the sending domain.
func (m *Mailgun) Domain(ctx context.Context) (*DomainInfo, error) {
	apiURL := fmt.Sprintf("%s/domains/%s", m.endpoint, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext failed: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.clt.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clt.Do failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mailgunError(resp)
	}

	var body struct {
		Domain DomainInfo `json:"domain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("json.Decode failed: %w", err)
	}

	return &body.Domain, nil
}

func mailgunError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := strings.TrimSpace(string(raw))
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		msg = body.Message
	}

	return &APIError{
		Service: "mailgun",
		Kind:    kindOf(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: msg,
	}
}
