package sender

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hal9000y/sponsor-emails/internal/auth"
	"github.com/hal9000y/sponsor-emails/internal/config"
	"github.com/hal9000y/sponsor-emails/internal/gdoc"
	"github.com/hal9000y/sponsor-emails/internal/gservice"
	"github.com/hal9000y/sponsor-emails/internal/sheet"
)

//go:generate moq -out mocks_test.go -pkg sender_test . DocumentFetcher WorksheetOpener Worksheet Mailer Confirmer

// DocumentFetcher fetches a template document by URL.
type DocumentFetcher interface {
	GetDocument(ctx context.Context, docURL string, mode gdoc.SuggestionsViewMode) (*gdoc.Document, error)
}

// Worksheet is a spreadsheet tab that can be read column-wise and written cell-wise.
type Worksheet interface {
	sheet.Worksheet
	Update(ctx context.Context, cell, value string) error
}

// WorksheetOpener opens a worksheet by spreadsheet URL and tab title.
type WorksheetOpener interface {
	OpenWorksheet(ctx context.Context, sheetURL, title string) (Worksheet, error)
}

// Mailer delivers messages from a single sending domain.
type Mailer interface {
	Send(ctx context.Context, msg gservice.Message) error
	SendingDomain() string
}

// Google groups the Google API clients.
type Google struct {
	Docs   DocumentFetcher
	Sheets WorksheetOpener
}

// Services are the remote collaborators of a run.
type Services struct {
	Google
	Mailer Mailer
}

// Connector authenticates and returns ready-to-use services.
type Connector func(ctx context.Context) (*Services, error)

var errMailgunCredentials = errors.New("mailgun domain and api key must be set")

type sheetsOpener struct {
	s *gservice.Sheets
}

func (o sheetsOpener) OpenWorksheet(ctx context.Context, sheetURL, title string) (Worksheet, error) {
	ws, err := o.s.Worksheet(ctx, sheetURL, title)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// ConnectGoogle loads the service account and creates the Docs and Sheets clients.
func ConnectGoogle(ctx context.Context, creds config.Credentials) (*Google, error) {
	sa, err := auth.NewServiceAccount(creds.ServiceAccountFile, gservice.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("auth.NewServiceAccount failed: %w", err)
	}

	return NewGoogle(ctx, sa.Client(ctx), "", "")
}

// NewGoogle creates the Docs and Sheets clients on top of an authorized HTTP
// client. Empty endpoints select the public APIs.
func NewGoogle(ctx context.Context, clt *http.Client, docsEndpoint, sheetsEndpoint string) (*Google, error) {
	sh, err := gservice.NewSheets(ctx, clt, sheetsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("gservice.NewSheets failed: %w", err)
	}

	return &Google{
		Docs:   gservice.NewDocs(clt, docsEndpoint),
		Sheets: sheetsOpener{s: sh},
	}, nil
}

// NewMailgun creates the Mailgun client for the configured domain and region.
func NewMailgun(creds config.Credentials) *gservice.Mailgun {
	return gservice.NewMailgun(http.DefaultClient, gservice.MailgunEndpoint(creds.MailgunRegion), creds.MailgunDomain, creds.MailgunAPIKey)
}

// Connect is the production Connector for a configuration.
func Connect(creds config.Credentials) Connector {
	return func(ctx context.Context) (*Services, error) {
		if creds.MailgunDomain == "" || creds.MailgunAPIKey == "" {
			return nil, errMailgunCredentials
		}

		g, err := ConnectGoogle(ctx, creds)
		if err != nil {
			return nil, err
		}

		return &Services{Google: *g, Mailer: NewMailgun(creds)}, nil
	}
}
