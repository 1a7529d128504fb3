package gdoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Merge resolves own against fallback: every attribute set on own is kept,
// every unset one is taken from fallback (which may be unset too).
func Merge(own, fallback TextStyle) TextStyle {
	merged := own

	if merged.Bold == nil {
		merged.Bold = fallback.Bold
	}
	if merged.Italic == nil {
		merged.Italic = fallback.Italic
	}
	if merged.Underline == nil {
		merged.Underline = fallback.Underline
	}
	if merged.Strikethrough == nil {
		merged.Strikethrough = fallback.Strikethrough
	}
	if merged.SmallCaps == nil {
		merged.SmallCaps = fallback.SmallCaps
	}
	if merged.FontSize == nil {
		merged.FontSize = fallback.FontSize
	}
	if merged.Link == nil {
		merged.Link = fallback.Link
	}
	if merged.WeightedFontFamily == nil {
		merged.WeightedFontFamily = fallback.WeightedFontFamily
	}
	if merged.BaselineOffset == "" {
		merged.BaselineOffset = fallback.BaselineOffset
	}
	if merged.BackgroundColor == nil {
		merged.BackgroundColor = fallback.BackgroundColor
	}
	if merged.ForegroundColor == nil {
		merged.ForegroundColor = fallback.ForegroundColor
	}

	return merged
}

// Render wraps text in the markup described by a resolved style. Tags are
// applied innermost first: u, i, b, s, a, small caps, sup/sub. Any CSS
// (font size, font family, colors) wraps the result in a styled span.
// Newlines are left untouched.
func Render(style TextStyle, text string) string {
	out := text

	if isSet(style.Underline) {
		out = "<u>" + out + "</u>"
	}
	if isSet(style.Italic) {
		out = "<i>" + out + "</i>"
	}
	if isSet(style.Bold) {
		out = "<b>" + out + "</b>"
	}
	if isSet(style.Strikethrough) {
		out = "<s>" + out + "</s>"
	}
	if style.Link != nil {
		out = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(style.Link.Href()), out)
	}
	if isSet(style.SmallCaps) {
		out = `<span style="font-variant: small-caps;">` + out + "</span>"
	}
	switch style.BaselineOffset {
	case BaselineOffsetSuperscript:
		out = "<sup>" + out + "</sup>"
	case BaselineOffsetSubscript:
		out = "<sub>" + out + "</sub>"
	}

	css := styleCSS(style)
	if css == "" {
		return out
	}

	return fmt.Sprintf(`<span style="%s">%s</span>`, css, out)
}

func styleCSS(style TextStyle) string {
	var b strings.Builder

	if style.FontSize != nil {
		fmt.Fprintf(&b, "font-size: %s; ", style.FontSize.CSS())
	}
	if f := style.WeightedFontFamily; f != nil {
		fmt.Fprintf(&b, "font-weight: %d; font-family: '%s', serif; ", f.Weight, f.FontFamily)
	}
	if c := style.ForegroundColor.rgb(); c != nil {
		fmt.Fprintf(&b, "color: %s; ", c.CSS())
	}
	if c := style.BackgroundColor.rgb(); c != nil {
		fmt.Fprintf(&b, "background-color: %s; ", c.CSS())
	}

	return strings.TrimSpace(b.String())
}

func isSet(b *bool) bool {
	return b != nil && *b
}
