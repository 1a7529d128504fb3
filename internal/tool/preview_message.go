package tool

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/sponsor-emails/internal/config"
	"github.com/hal9000y/sponsor-emails/internal/sender"
	"github.com/hal9000y/sponsor-emails/internal/template"
)

// PreviewMessageRequest holds the values substituted into the template.
type PreviewMessageRequest struct {
	Company      string `json:"company" jsonschema:"company name"`
	ContactName  string `json:"contact_name" jsonschema:"name of the contact person at the company"`
	ContactEmail string `json:"contact_email,omitempty" jsonschema:"optional contact email cell, comma or semicolon separated"`
	SenderName   string `json:"sender_name" jsonschema:"full name of the organizer sending the email"`
}

// PreviewMessageResponse is the message as it would be sent.
type PreviewMessageResponse struct {
	From    string   `json:"from" jsonschema:"sender address"`
	To      []string `json:"to,omitempty" jsonschema:"recipients"`
	ReplyTo string   `json:"reply_to" jsonschema:"reply-to address"`
	Subject string   `json:"subject" jsonschema:"email subject"`
	Text    string   `json:"text" jsonschema:"plaintext body"`
	HTML    string   `json:"html" jsonschema:"html body"`
}

// NewPreviewMessage creates a new PreviewMessage tool.
func NewPreviewMessage(cfg *config.Config, docs sender.DocumentFetcher, domain string) *PreviewMessage {
	return &PreviewMessage{
		cfg:    cfg,
		docs:   docs,
		domain: domain,
	}
}

// PreviewMessage renders the template for a single recipient.
type PreviewMessage struct {
	cfg    *config.Config
	docs   sender.DocumentFetcher
	domain string
}

// PreviewMessage fetches the template document and renders it with the request values.
func (t *PreviewMessage) PreviewMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PreviewMessageRequest,
) (*mcp.CallToolResult, PreviewMessageResponse, error) {
	if input.SenderName == "" {
		return nil, PreviewMessageResponse{}, fmt.Errorf("sender_name is required")
	}

	doc, err := t.docs.GetDocument(ctx, t.cfg.Template.URL, t.cfg.Template.ViewMode)
	if err != nil {
		return nil, PreviewMessageResponse{}, fmt.Errorf("get template failed: %w", err)
	}

	values := template.Placeholders{
		Company: input.Company,
		Contact: input.ContactName,
		Sender:  input.SenderName,
	}
	markers := t.cfg.Template.Placeholders

	from := mail.Address{Name: input.SenderName, Address: sender.SenderAddress(input.SenderName, t.domain)}

	resp := PreviewMessageResponse{
		From:    from.String(),
		ReplyTo: t.cfg.Senders.ReplyTo,
		Subject: t.cfg.Template.Subject,
		Text:    template.Render(doc.Text(), markers, values),
		HTML:    template.Render(doc.HTML(), markers.Escaped(), values.Escaped()),
	}

	if input.ContactEmail != "" {
		to, err := sender.Recipients(input.ContactName, input.ContactEmail)
		if err != nil {
			return nil, PreviewMessageResponse{}, err
		}
		resp.To = to
	}

	return nil, resp, nil
}
