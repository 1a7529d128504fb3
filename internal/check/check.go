// Package check verifies that a configuration works against the live
// services without sending anything.
package check

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/hal9000y/sponsor-emails/internal/config"
	"github.com/hal9000y/sponsor-emails/internal/gdoc"
	"github.com/hal9000y/sponsor-emails/internal/gservice"
	"github.com/hal9000y/sponsor-emails/internal/sender"
	"github.com/hal9000y/sponsor-emails/internal/sheet"
)

// Result is the outcome of one check. Err is nil when the check passed.
type Result struct {
	Component string
	Err       error
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.Err == nil {
		return "OK: " + r.Component
	}
	return fmt.Sprintf("ERROR: %s\n\t%s", r.Component, r.Err)
}

// GoogleConnector returns authenticated Docs and Sheets clients.
type GoogleConnector func(ctx context.Context) (*sender.Google, error)

type domainSvc interface {
	Domain(ctx context.Context) (*gservice.DomainInfo, error)
}

// Checker runs the configuration checks.
type Checker struct {
	cfg     *config.Config
	google  GoogleConnector
	mailgun domainSvc
}

// New creates a Checker.
func New(cfg *config.Config, google GoogleConnector, mailgun domainSvc) *Checker {
	return &Checker{cfg: cfg, google: google, mailgun: mailgun}
}

// Run executes every check. A failing check does not stop the others.
func (c *Checker) Run(ctx context.Context) []Result {
	return []Result{
		c.Mailgun(ctx),
		c.Sponsors(ctx),
		c.Senders(ctx),
		c.Template(ctx),
	}
}

// Mailgun checks that the sending domain exists, is enabled and is active.
func (c *Checker) Mailgun(ctx context.Context) Result {
	const component = "mailgun"

	info, err := c.mailgun.Domain(ctx)
	if err != nil {
		var apiErr *gservice.APIError
		switch {
		case !errors.As(err, &apiErr):
			return fail(component, err.Error())
		case apiErr.Status == http.StatusNotFound:
			return fail(component, "domain not found")
		case apiErr.Status == http.StatusUnauthorized:
			return fail(component, "invalid private key")
		case apiErr.Kind == gservice.KindServer:
			return fail(component, fmt.Sprintf("an internal server error (%d) occurred", apiErr.Status))
		default:
			return fail(component, fmt.Sprintf("unexpected response (%d): %s", apiErr.Status, apiErr.Message))
		}
	}

	if info.IsDisabled {
		return fail(component, "domain disabled")
	}
	if info.State != "active" {
		return fail(component, fmt.Sprintf("domain improperly configured (currently: %q)", info.State))
	}

	return Result{Component: component}
}

// Sponsors checks the sponsors worksheet and its headers.
func (c *Checker) Sponsors(ctx context.Context) Result {
	const component = "sponsors"

	header, res, ok := c.headerRow(ctx, component, c.cfg.Sponsors.URL, c.cfg.Sponsors.Sheet)
	if !ok {
		return res
	}

	if _, err := sheet.MapColumnsToHeaders(header, c.cfg.Sponsors.Headers.Wanted()); err != nil {
		return fail(component, err.Error())
	}

	return Result{Component: component}
}

// Senders checks the senders worksheet and its name header.
func (c *Checker) Senders(ctx context.Context) Result {
	const component = "senders"

	header, res, ok := c.headerRow(ctx, component, c.cfg.Senders.URL, c.cfg.Senders.Sheet)
	if !ok {
		return res
	}

	if !slices.Contains(header, c.cfg.Senders.Header) {
		return fail(component, "header does not exist")
	}

	return Result{Component: component}
}

// Template checks that the template document is readable and holds every placeholder.
func (c *Checker) Template(ctx context.Context) Result {
	const component = "template"

	g, err := c.google(ctx)
	if err != nil {
		return fail(component, fmt.Sprintf("unable to load credentials: %s", err))
	}

	doc, err := g.Docs.GetDocument(ctx, c.cfg.Template.URL, c.cfg.Template.ViewMode)
	if err != nil {
		var apiErr *gservice.APIError
		switch {
		case errors.Is(err, gdoc.ErrNoValidID):
			return fail(component, "invalid document url")
		case !errors.As(err, &apiErr):
			return fail(component, err.Error())
		case apiErr.Kind == gservice.KindNotFound:
			return fail(component, "document not found")
		case apiErr.Kind == gservice.KindUnauthorized:
			return fail(component, "unauthorized")
		default:
			return fail(component, fmt.Sprintf("unable to get document: (%d) %s", apiErr.Status, apiErr.Message))
		}
	}

	text := doc.Text()
	for _, slot := range c.cfg.Template.Placeholders.Slots() {
		if !strings.Contains(text, slot.Value) {
			return fail(component, fmt.Sprintf("missing placeholder for %q", slot.Name))
		}
	}

	return Result{Component: component}
}

func (c *Checker) headerRow(ctx context.Context, component, sheetURL, title string) ([]string, Result, bool) {
	g, err := c.google(ctx)
	if err != nil {
		return nil, fail(component, fmt.Sprintf("unable to load credentials: %s", err)), false
	}

	ws, err := g.Sheets.OpenWorksheet(ctx, sheetURL, title)
	if err != nil {
		return nil, fail(component, sheetMessage(err)), false
	}

	header, err := ws.HeaderRow(ctx)
	if err != nil {
		return nil, fail(component, sheetMessage(err)), false
	}

	return header, Result{}, true
}

func sheetMessage(err error) string {
	var (
		apiErr *gservice.APIError
		wsErr  *gservice.WorksheetNotFoundError
	)
	switch {
	case errors.Is(err, gdoc.ErrNoValidID):
		return "invalid document url"
	case errors.As(err, &wsErr):
		return "worksheet not found"
	case errors.As(err, &apiErr) && apiErr.Kind == gservice.KindNotFound:
		return "sheet not found"
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}

func fail(component, msg string) Result {
	return Result{Component: component, Err: errors.New(msg)}
}
