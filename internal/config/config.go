// Package config loads the mailer configuration file.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"net/url"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"

	"github.com/hal9000y/sponsor-emails/internal/gdoc"
	"github.com/hal9000y/sponsor-emails/internal/sheet"
	"github.com/hal9000y/sponsor-emails/internal/template"
)

// EnvPrefix prefixes environment variables overriding file values, e.g.
// SPONSOR_EMAILS_CREDENTIALS_MAILGUN_API_KEY.
const EnvPrefix = "SPONSOR_EMAILS"

var googleDriveRe = regexp.MustCompile(`^/(document|spreadsheets)/d/[a-zA-Z0-9-_]+(/\w+)?$`)

type Config struct {
	Credentials Credentials
	Senders     Senders
	Sponsors    Sponsors
	Template    Template
	DryRunDir   string
}

type Credentials struct {
	ServiceAccountFile string
	MailgunDomain      string
	MailgunAPIKey      string
	MailgunRegion      string
}

type Senders struct {
	URL     string
	Sheet   string
	ReplyTo string
	Header  string
}

type Sponsors struct {
	URL      string
	Sheet    string
	Headers  SponsorHeaders
	Statuses Statuses
}

type SponsorHeaders struct {
	CompanyName  string
	ContactName  string
	ContactEmail string
	SentStatus   string
}

// Wanted lists the sponsor headers in column order of use.
func (h SponsorHeaders) Wanted() []sheet.Wanted {
	return []sheet.Wanted{
		{Name: "company_name", Header: h.CompanyName},
		{Name: "contact_name", Header: h.ContactName},
		{Name: "contact_email", Header: h.ContactEmail},
		{Name: "sent_status", Header: h.SentStatus},
	}
}

// Statuses are the sent-status cell values. A row is sent only when its
// status equals Pending.
type Statuses struct {
	Pending string
	Sent    string
}

type Template struct {
	URL          string
	Subject      string
	ViewMode     gdoc.SuggestionsViewMode
	Placeholders template.Placeholders
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("credentials.gcp_service_account", "./service-account.json")
	v.SetDefault("credentials.mailgun_domain", "")
	v.SetDefault("credentials.mailgun_api_key", "")
	v.SetDefault("credentials.mailgun_region", "us")

	v.SetDefault("senders.url", "https://docs.google.com/spreadsheets/d/your-senders-sheet/edit")
	v.SetDefault("senders.sheet", "Organizers")
	v.SetDefault("senders.reply_to", "sponsors@your.domain")
	v.SetDefault("senders.header", "Name")

	v.SetDefault("sponsors.url", "https://docs.google.com/spreadsheets/d/your-sponsors-sheet/edit")
	v.SetDefault("sponsors.sheet", "Sponsorship Database")
	v.SetDefault("sponsors.headers.company_name", "Company Name")
	v.SetDefault("sponsors.headers.contact_name", "Contact Name")
	v.SetDefault("sponsors.headers.contact_email", "Contact Email")
	v.SetDefault("sponsors.headers.sent_status", "Status")
	v.SetDefault("sponsors.statuses.pending", "Pending")
	v.SetDefault("sponsors.statuses.sent", "Sent")

	v.SetDefault("template.url", "https://docs.google.com/document/d/your-document/edit")
	v.SetDefault("template.subject", "Sponsorship Opportunity")
	v.SetDefault("template.view_mode", string(gdoc.ViewPreviewWithoutSuggestions))
	v.SetDefault("template.placeholders.company_name", "{COMPANY}")
	v.SetDefault("template.placeholders.contact_name", "{RECIPIENT}")
	v.SetDefault("template.placeholders.sender_name", "{SENDER}")

	v.SetDefault("dry_run_dir", "./dry-run-out")
}

// Load reads the JSON configuration at path. A missing file is first written
// with the default configuration. Environment variables prefixed with
// EnvPrefix override file values. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("json")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := v.SafeWriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("v.SafeWriteConfigAs failed: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig failed: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Credentials: Credentials{
			ServiceAccountFile: v.GetString("credentials.gcp_service_account"),
			MailgunDomain:      v.GetString("credentials.mailgun_domain"),
			MailgunAPIKey:      v.GetString("credentials.mailgun_api_key"),
			MailgunRegion:      v.GetString("credentials.mailgun_region"),
		},
		Senders: Senders{
			URL:     v.GetString("senders.url"),
			Sheet:   v.GetString("senders.sheet"),
			ReplyTo: v.GetString("senders.reply_to"),
			Header:  v.GetString("senders.header"),
		},
		Sponsors: Sponsors{
			URL:   v.GetString("sponsors.url"),
			Sheet: v.GetString("sponsors.sheet"),
			Headers: SponsorHeaders{
				CompanyName:  v.GetString("sponsors.headers.company_name"),
				ContactName:  v.GetString("sponsors.headers.contact_name"),
				ContactEmail: v.GetString("sponsors.headers.contact_email"),
				SentStatus:   v.GetString("sponsors.headers.sent_status"),
			},
			Statuses: Statuses{
				Pending: v.GetString("sponsors.statuses.pending"),
				Sent:    v.GetString("sponsors.statuses.sent"),
			},
		},
		Template: Template{
			URL:      v.GetString("template.url"),
			Subject:  v.GetString("template.subject"),
			ViewMode: gdoc.SuggestionsViewMode(v.GetString("template.view_mode")),
			Placeholders: template.Placeholders{
				Company: v.GetString("template.placeholders.company_name"),
				Contact: v.GetString("template.placeholders.contact_name"),
				Sender:  v.GetString("template.placeholders.sender_name"),
			},
		},
		DryRunDir: v.GetString("dry_run_dir"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FieldError is a single invalid configuration value.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every invalid value of a configuration.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Validate checks required values, email addresses and document URLs.
func (c *Config) Validate() error {
	var fields []FieldError
	fail := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	present := map[string]string{
		"credentials.gcp_service_account":    c.Credentials.ServiceAccountFile,
		"credentials.mailgun_domain":         c.Credentials.MailgunDomain,
		"credentials.mailgun_api_key":        c.Credentials.MailgunAPIKey,
		"senders.sheet":                      c.Senders.Sheet,
		"senders.header":                     c.Senders.Header,
		"sponsors.sheet":                     c.Sponsors.Sheet,
		"sponsors.headers.company_name":      c.Sponsors.Headers.CompanyName,
		"sponsors.headers.contact_name":      c.Sponsors.Headers.ContactName,
		"sponsors.headers.contact_email":     c.Sponsors.Headers.ContactEmail,
		"sponsors.headers.sent_status":       c.Sponsors.Headers.SentStatus,
		"sponsors.statuses.pending":          c.Sponsors.Statuses.Pending,
		"template.placeholders.company_name": c.Template.Placeholders.Company,
		"template.placeholders.contact_name": c.Template.Placeholders.Contact,
		"template.placeholders.sender_name":  c.Template.Placeholders.Sender,
	}
	for _, field := range slices.Sorted(maps.Keys(present)) {
		if present[field] == "" {
			fail(field, "must be present")
		}
	}

	switch strings.ToLower(c.Credentials.MailgunRegion) {
	case "", "us", "eu":
	default:
		fail("credentials.mailgun_region", `must be "us" or "eu"`)
	}

	if !govalidator.IsEmail(c.Senders.ReplyTo) {
		fail("senders.reply_to", "value is not a valid email address")
	}

	for field, u := range map[string]string{
		"senders.url":  c.Senders.URL,
		"sponsors.url": c.Sponsors.URL,
		"template.url": c.Template.URL,
	} {
		if !isGoogleDrive(u) {
			fail(field, "must be a Google Docs URL")
		}
	}

	switch c.Template.ViewMode {
	case gdoc.ViewDefaultForCurrentAccess, gdoc.ViewSuggestionsInline,
		gdoc.ViewPreviewSuggestionsAccepted, gdoc.ViewPreviewWithoutSuggestions:
	default:
		fail("template.view_mode", "unknown suggestions view mode")
	}

	if len(fields) == 0 {
		return nil
	}

	slices.SortFunc(fields, func(a, b FieldError) int { return cmp.Compare(a.Field, b.Field) })
	return &ValidationError{Fields: fields}
}

func isGoogleDrive(raw string) bool {
	if !govalidator.IsURL(raw) {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Host == "docs.google.com" && googleDriveRe.MatchString(u.Path)
}
