package gservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/hal9000y/sponsor-emails/internal/gdoc"
)

const docsEndpoint = "https://docs.googleapis.com/"

// Scopes are the OAuth scopes the service account needs for Docs and Sheets.
var Scopes = []string{
	docs.DocumentsReadonlyScope,
	docs.DriveReadonlyScope,
	sheets.SpreadsheetsScope,
}

// Docs fetches documents from the Google Docs API.
//
// Documents are decoded into gdoc types rather than docs.Document so that an
// explicit false in a text style stays distinguishable from an unset field.
type Docs struct {
	clt      *http.Client
	endpoint string
}

// NewDocs creates a Docs client. An empty endpoint selects the public API.
func NewDocs(clt *http.Client, endpoint string) *Docs {
	if endpoint == "" {
		endpoint = docsEndpoint
	}
	return &Docs{clt: clt, endpoint: endpoint}
}

// GetDocument fetches the document referenced by a Google Docs URL.
func (d *Docs) GetDocument(ctx context.Context, docURL string, mode gdoc.SuggestionsViewMode) (*gdoc.Document, error) {
	id, err := gdoc.DocumentID(docURL)
	if err != nil {
		return nil, err
	}

	u := d.endpoint + "v1/documents/" + url.PathEscape(id)
	if mode != "" {
		u += "?" + url.Values{"suggestionsViewMode": {string(mode)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext failed: %w", err)
	}

	resp, err := d.clt.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clt.Do failed: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fromGoogle("docs", err)
	}

	doc := &gdoc.Document{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, fmt.Errorf("json.Decode failed: %w", err)
	}

	return doc, nil
}
