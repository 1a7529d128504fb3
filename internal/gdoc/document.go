// Package gdoc models Google Docs documents and flattens them into the
// plaintext and HTML bodies used for outreach emails.
package gdoc

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// ErrNoValidID indicates a URL that carries no document or spreadsheet id.
var ErrNoValidID = errors.New("no valid id found in url")

var (
	documentIDRe    = regexp.MustCompile(`/document/d/([a-zA-Z0-9-_]+)`)
	spreadsheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
)

// DocumentID extracts the document id from a Google Docs URL.
func DocumentID(url string) (string, error) {
	return matchID(documentIDRe, url)
}

// SpreadsheetID extracts the spreadsheet id from a Google Sheets URL.
func SpreadsheetID(url string) (string, error) {
	return matchID(spreadsheetIDRe, url)
}

func matchID(re *regexp.Regexp, url string) (string, error) {
	m := re.FindStringSubmatch(url)
	if m == nil {
		return "", ErrNoValidID
	}
	return m[1], nil
}

// SuggestionsViewMode controls how suggestions are rendered in a fetched document.
type SuggestionsViewMode string

const (
	ViewDefaultForCurrentAccess    SuggestionsViewMode = "DEFAULT_FOR_CURRENT_ACCESS"
	ViewSuggestionsInline          SuggestionsViewMode = "SUGGESTIONS_INLINE"
	ViewPreviewSuggestionsAccepted SuggestionsViewMode = "PREVIEW_SUGGESTIONS_ACCEPTED"
	ViewPreviewWithoutSuggestions  SuggestionsViewMode = "PREVIEW_WITHOUT_SUGGESTIONS"
)

// Document is a read-only snapshot of a fetched document. Text and HTML are
// extracted once, on first use.
type Document struct {
	DocumentID          string              `json:"documentId"`
	Title               string              `json:"title"`
	RevisionID          string              `json:"revisionId"`
	SuggestionsViewMode SuggestionsViewMode `json:"suggestionsViewMode"`
	Body                Body                `json:"body"`
	NamedStyles         NamedStyles         `json:"namedStyles"`

	once sync.Once
	text string
	html string
}

// Body of a document.
type Body struct {
	Content []StructuralElement `json:"content"`
}

// StructuralElement is either a Paragraph or a SectionBreak covering
// [StartIndex, EndIndex) of the document.
type StructuralElement struct {
	StartIndex   int           `json:"startIndex"`
	EndIndex     int           `json:"endIndex"`
	Paragraph    *Paragraph    `json:"paragraph,omitempty"`
	SectionBreak *SectionBreak `json:"sectionBreak,omitempty"`
}

// Paragraph is a range of content terminated by a newline.
type Paragraph struct {
	Elements       []ParagraphElement `json:"elements"`
	ParagraphStyle ParagraphStyle     `json:"paragraphStyle"`
}

// ParagraphElement is content within a paragraph.
type ParagraphElement struct {
	StartIndex int      `json:"startIndex"`
	EndIndex   int      `json:"endIndex"`
	TextRun    *TextRun `json:"textRun,omitempty"`
}

// TextRun is a run of text sharing one style.
type TextRun struct {
	Content   string    `json:"content"`
	TextStyle TextStyle `json:"textStyle"`
}

// SectionBreak starts a new section; it carries no text.
type SectionBreak struct {
	SectionStyle SectionStyle `json:"sectionStyle"`
}

// Text returns the document's plaintext.
func (d *Document) Text() string {
	d.once.Do(d.extract)
	return d.text
}

// HTML returns the document rendered as a sequence of <p> elements.
func (d *Document) HTML() string {
	d.once.Do(d.extract)
	return d.html
}

func (d *Document) extract() {
	styles := d.NamedStyles.ByType()

	var text, out strings.Builder
	for _, el := range d.Body.Content {
		if el.Paragraph == nil {
			continue
		}

		// A paragraph whose named style is missing renders with no inherited style.
		named := styles[el.Paragraph.ParagraphStyle.NamedStyleType]

		out.WriteString("<p>")
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun == nil {
				continue
			}

			style := Merge(pe.TextRun.TextStyle, named.TextStyle)
			text.WriteString(pe.TextRun.Content)

			rendered := Render(style, html.EscapeString(pe.TextRun.Content))
			out.WriteString(strings.ReplaceAll(rendered, "\n", "<br>"))
		}
		out.WriteString("</p>")
	}

	d.text = text.String()
	d.html = out.String()
}
