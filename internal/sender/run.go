// Package sender runs a sponsorship email campaign: it reads the template
// document and the sponsor and sender sheets, then sends one personalized
// message per pending sponsor row.
package sender

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hal9000y/sponsor-emails/internal/config"
	"github.com/hal9000y/sponsor-emails/internal/sheet"
	"github.com/hal9000y/sponsor-emails/internal/template"
)

const senderColumn = "sender_name"

// Confirmer asks the operator whether total messages may be sent.
type Confirmer interface {
	Confirm(total int) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(total int) (bool, error)

func (f ConfirmFunc) Confirm(total int) (bool, error) {
	return f(total)
}

// Options are the per-run switches.
type Options struct {
	// Single reads only the first sponsor row.
	Single bool
	// DryRun writes messages to OutDir instead of sending them.
	DryRun bool
	// Overwrite replaces every contact email cell.
	Overwrite string
	// MarkSent writes the sent status back after each successful live send.
	MarkSent bool
	OutDir   string
}

// Result tallies a finished run. Success counts rows sent now or earlier,
// Skipped counts rows with missing data or a failed send.
type Result struct {
	Success int
	Skipped int
	Total   int
}

// Orchestrator runs the send pipeline for one configuration.
type Orchestrator struct {
	cfg     *config.Config
	connect Connector
	confirm Confirmer
	rnd     *rand.Rand
	log     zerolog.Logger
}

// New creates an Orchestrator. rnd picks a sender for each message.
func New(cfg *config.Config, connect Connector, confirm Confirmer, rnd *rand.Rand, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		connect: connect,
		confirm: confirm,
		rnd:     rnd,
		log:     log,
	}
}

type sponsorRows struct {
	company, contact, email, status []*string
	statusColumn                    string
}

// Run executes the pipeline. A fatal problem is returned as an *Error and
// nothing is sent after it. Per-row problems are logged and tallied.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (Result, error) {
	o.log.Info().
		Bool("single", opts.Single).
		Bool("dry_run", opts.DryRun).
		Str("overwrite", opts.Overwrite).
		Msg("Settings")

	o.log.Info().Msg("Connecting to Google Drive and Mailgun...")
	svc, err := o.connect(ctx)
	if err != nil {
		return Result{}, &Error{
			Stage:   StageAuthenticating,
			Kind:    KindCredentials,
			Message: fmt.Sprintf("unable to load credentials: %s", err),
			Err:     err,
		}
	}

	o.log.Info().Msg("Opening message template...")
	doc, err := svc.Docs.GetDocument(ctx, o.cfg.Template.URL, o.cfg.Template.ViewMode)
	if err != nil {
		return Result{}, documentError(err)
	}
	text, html := doc.Text(), doc.HTML()

	o.log.Info().Msg("Opening senders list...")
	senders, err := svc.Sheets.OpenWorksheet(ctx, o.cfg.Senders.URL, o.cfg.Senders.Sheet)
	if err != nil {
		return Result{}, sheetError(StageFetchingSheets, err)
	}

	o.log.Info().Msg("Opening sponsors list...")
	sponsors, err := svc.Sheets.OpenWorksheet(ctx, o.cfg.Sponsors.URL, o.cfg.Sponsors.Sheet)
	if err != nil {
		return Result{}, sheetError(StageFetchingSheets, err)
	}

	sponsorCols, err := o.mapColumns(ctx, sponsors, o.cfg.Sponsors.Headers.Wanted())
	if err != nil {
		return Result{}, err
	}
	senderCols, err := o.mapColumns(ctx, senders, []sheet.Wanted{{Name: senderColumn, Header: o.cfg.Senders.Header}})
	if err != nil {
		return Result{}, err
	}

	o.log.Info().Msg("Fetching sponsors data...")
	rows, err := o.fetchSponsors(ctx, sponsors, sponsorCols, opts.Single)
	if err != nil {
		return Result{}, err
	}

	o.log.Info().Msg("Fetching senders data...")
	names, err := o.fetchSenders(ctx, senders, senderCols[senderColumn])
	if err != nil {
		return Result{}, err
	}

	total := len(rows.company)

	if opts.DryRun {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return Result{}, &Error{Stage: StageSending, Kind: KindRemote, Message: err.Error(), Err: err}
		}
	} else {
		ok, err := o.confirm.Confirm(total)
		if err != nil {
			return Result{}, &Error{Stage: StageConfirmingSend, Kind: KindRemote, Message: err.Error(), Err: err}
		}
		if !ok {
			return Result{}, ErrAborted
		}
	}

	res := Result{Total: total}
	markers := o.cfg.Template.Placeholders
	domain := svc.Mailer.SendingDomain()

	o.log.Info().Int("total", total).Msg("Sending messages...")
	for i := range total {
		company, contact, email, status := rows.company[i], rows.contact[i], rows.email[i], rows.status[i]
		lg := o.log.With().Str("row", fmt.Sprintf("%d/%d", i+1, total)).Logger()

		if status == nil || *status != o.cfg.Sponsors.Statuses.Pending {
			lg.Info().Str("company", deref(company)).Msg("already sent")
			res.Success++
			continue
		}

		if company == nil || contact == nil || email == nil {
			lg.Error().Str("company", deref(company)).Msg("missing company, contact name or contact email, skipping")
			res.Skipped++
			continue
		}

		senderName := names[o.rnd.IntN(len(names))]
		values := template.Placeholders{Company: *company, Contact: *contact, Sender: senderName}

		cell := *email
		if opts.Overwrite != "" {
			cell = opts.Overwrite
		}

		msg, err := o.compose(domain, outgoing{
			senderName:  senderName,
			contactName: *contact,
			contactCell: cell,
			text:        template.Render(text, markers, values),
			html:        template.Render(html, markers.Escaped(), values.Escaped()),
		})
		if err == nil {
			err = o.deliver(ctx, svc.Mailer, msg, *contact, opts)
		}
		if err != nil {
			lg.Error().Err(err).Str("company", *company).Msg("failed to send message")
			res.Skipped++
			continue
		}

		lg.Info().Str("company", *company).Str("contact", *contact).Msg("sent message")
		res.Success++

		if opts.MarkSent && !opts.DryRun {
			statusCell := rows.statusColumn + strconv.Itoa(i+2)
			if err := sponsors.Update(ctx, statusCell, o.cfg.Sponsors.Statuses.Sent); err != nil {
				lg.Warn().Err(err).Str("cell", statusCell).Msg("unable to mark row as sent")
			}
		}
	}

	return res, nil
}

func (o *Orchestrator) mapColumns(ctx context.Context, ws Worksheet, wanted []sheet.Wanted) (map[string]string, error) {
	header, err := ws.HeaderRow(ctx)
	if err != nil {
		return nil, sheetError(StageMappingColumns, err)
	}

	cols, err := sheet.MapColumnsToHeaders(header, wanted)
	if err != nil {
		return nil, &Error{
			Stage:   StageMappingColumns,
			Kind:    KindNotFound,
			Message: fmt.Sprintf("could not find column header: %s", err),
			Err:     err,
		}
	}

	return cols, nil
}

func (o *Orchestrator) fetchSponsors(ctx context.Context, ws Worksheet, cols map[string]string, single bool) (sponsorRows, error) {
	labels := []string{cols["company_name"], cols["contact_name"], cols["contact_email"], cols["sent_status"]}

	data, err := sheet.FetchColumns(ctx, ws, labels, single)
	if err != nil {
		return sponsorRows{}, sheetError(StageFetchingRows, err)
	}

	for _, col := range data[1:] {
		if len(col) != len(data[0]) {
			return sponsorRows{}, &Error{
				Stage:   StageFetchingRows,
				Kind:    KindRemote,
				Message: "all sponsor data columns must be the same length",
			}
		}
	}

	return sponsorRows{
		company:      data[0],
		contact:      data[1],
		email:        data[2],
		status:       data[3],
		statusColumn: cols["sent_status"],
	}, nil
}

func (o *Orchestrator) fetchSenders(ctx context.Context, ws Worksheet, label string) ([]string, error) {
	data, err := sheet.FetchColumns(ctx, ws, []string{label}, false)
	if err != nil {
		return nil, sheetError(StageFetchingRows, err)
	}

	names := make([]string, 0, len(data[0]))
	for _, n := range data[0] {
		if n != nil {
			names = append(names, *n)
		}
	}

	if len(names) == 0 {
		return nil, &Error{Stage: StageFetchingRows, Kind: KindRemote, Message: "no senders found"}
	}

	return names, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
