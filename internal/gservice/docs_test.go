package gservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/sponsor-emails/internal/gdoc"
	"github.com/hal9000y/sponsor-emails/internal/gservice"
)

const docJSON = `{
  "documentId": "doc-1",
  "title": "Outreach",
  "body": {"content": [
    {"startIndex": 1, "endIndex": 10, "paragraph": {
      "elements": [{"startIndex": 1, "endIndex": 10, "textRun": {"content": "Hi {RECIPIENT}\n", "textStyle": {"bold": false}}}],
      "paragraphStyle": {"namedStyleType": "NORMAL_TEXT"}
    }}
  ]},
  "namedStyles": {"styles": [{"namedStyleType": "NORMAL_TEXT", "textStyle": {"bold": true}}]}
}`

func TestDocsGetDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/documents/doc-1":
			assert.Equal(t, "PREVIEW_WITHOUT_SUGGESTIONS", r.URL.Query().Get("suggestionsViewMode"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(docJSON))
		case "/v1/documents/locked":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`))
		}
	}))
	defer srv.Close()

	d := gservice.NewDocs(srv.Client(), srv.URL+"/")
	ctx := context.Background()

	t.Run("document", func(t *testing.T) {
		doc, err := d.GetDocument(ctx, "https://docs.google.com/document/d/doc-1/edit", gdoc.ViewPreviewWithoutSuggestions)
		require.NoError(t, err)
		assert.Equal(t, "Outreach", doc.Title)
		assert.Equal(t, "Hi {RECIPIENT}\n", doc.Text())
		assert.Equal(t, "<p>Hi {RECIPIENT}<br></p>", doc.HTML())
	})

	cases := []struct {
		name         string
		url          string
		expectedKind gservice.Kind
		expectedMsg  string
	}{
		{
			name:         "not found",
			url:          "https://docs.google.com/document/d/missing/edit",
			expectedKind: gservice.KindNotFound,
			expectedMsg:  "Requested entity was not found.",
		},
		{
			name:         "forbidden",
			url:          "https://docs.google.com/document/d/locked/edit",
			expectedKind: gservice.KindUnauthorized,
			expectedMsg:  "The caller does not have permission",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.GetDocument(ctx, tc.url, gdoc.ViewPreviewWithoutSuggestions)
			var apiErr *gservice.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.expectedKind, apiErr.Kind)
			assert.Equal(t, tc.expectedMsg, apiErr.Message)
			assert.Equal(t, "docs", apiErr.Service)
		})
	}

	t.Run("invalid url", func(t *testing.T) {
		_, err := d.GetDocument(ctx, "https://example.com/nothing", gdoc.ViewPreviewWithoutSuggestions)
		require.ErrorIs(t, err, gdoc.ErrNoValidID)
	})
}
