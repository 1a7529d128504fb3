package gservice

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/hal9000y/sponsor-emails/internal/gdoc"
)

// Sheets opens worksheets through the Google Sheets API.
type Sheets struct {
	svc *sheets.Service
}

// NewSheets creates a Sheets client. An empty endpoint selects the public API.
func NewSheets(ctx context.Context, clt *http.Client, endpoint string) (*Sheets, error) {
	opts := []option.ClientOption{option.WithHTTPClient(clt)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets.NewService failed: %w", err)
	}

	return &Sheets{svc: svc}, nil
}

// Worksheet opens the tab with the given title of the spreadsheet behind sheetURL.
func (s *Sheets) Worksheet(ctx context.Context, sheetURL, title string) (*Worksheet, error) {
	id, err := gdoc.SpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	ss, err := s.svc.Spreadsheets.Get(id).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fromGoogle("sheets", err)
	}

	for _, sh := range ss.Sheets {
		if sh.Properties == nil || sh.Properties.Title != title {
			continue
		}

		var rows int64
		if sh.Properties.GridProperties != nil {
			rows = sh.Properties.GridProperties.RowCount
		}

		return &Worksheet{svc: s.svc, spreadsheetID: id, title: title, rowCount: rows}, nil
	}

	return nil, &WorksheetNotFoundError{Title: title}
}

// Worksheet is one tab of a spreadsheet.
type Worksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
	rowCount      int64
}

// Title returns the tab title.
func (w *Worksheet) Title() string {
	return w.title
}

// RowCount returns the number of rows in the grid as of opening.
func (w *Worksheet) RowCount() int64 {
	return w.rowCount
}

// HeaderRow returns the values of the first row.
func (w *Worksheet) HeaderRow(ctx context.Context) ([]string, error) {
	vr, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.qualify("1:1")).Context(ctx).Do()
	if err != nil {
		return nil, fromGoogle("sheets", err)
	}

	if len(vr.Values) == 0 {
		return []string{}, nil
	}

	return cellStrings(vr.Values[0]), nil
}

// BatchGet reads several ranges of this worksheet in one call.
func (w *Worksheet) BatchGet(ctx context.Context, ranges []string) ([][][]string, error) {
	qualified := make([]string, 0, len(ranges))
	for _, r := range ranges {
		qualified = append(qualified, w.qualify(r))
	}

	resp, err := w.svc.Spreadsheets.Values.BatchGet(w.spreadsheetID).Ranges(qualified...).Context(ctx).Do()
	if err != nil {
		return nil, fromGoogle("sheets", err)
	}

	out := make([][][]string, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		rows := make([][]string, 0, len(vr.Values))
		for _, row := range vr.Values {
			rows = append(rows, cellStrings(row))
		}
		out = append(out, rows)
	}

	return out, nil
}

// Update writes a single value into a cell like "E7".
func (w *Worksheet) Update(ctx context.Context, cell, value string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := w.svc.Spreadsheets.Values.Update(w.spreadsheetID, w.qualify(cell), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fromGoogle("sheets", err)
	}

	return nil
}

func (w *Worksheet) qualify(rng string) string {
	return "'" + strings.ReplaceAll(w.title, "'", "''") + "'!" + rng
}

func cellStrings(row []interface{}) []string {
	out := make([]string, 0, len(row))
	for _, v := range row {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}
