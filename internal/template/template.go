// Package template fills the company, contact and sender placeholders of an
// email template.
package template

import (
	"strings"

	"golang.org/x/net/html"
)

// Placeholders holds one string per template slot. It carries either the
// marker text found in the template or the values substituted for them.
type Placeholders struct {
	Company string `json:"company_name"`
	Contact string `json:"contact_name"`
	Sender  string `json:"sender_name"`
}

// Slot is a named template slot and its string.
type Slot struct {
	Name  string
	Value string
}

// Slots lists the placeholders in substitution order.
func (p Placeholders) Slots() []Slot {
	return []Slot{
		{Name: "company_name", Value: p.Company},
		{Name: "contact_name", Value: p.Contact},
		{Name: "sender_name", Value: p.Sender},
	}
}

// Escaped returns a copy with every value HTML-escaped, for use with HTML templates.
func (p Placeholders) Escaped() Placeholders {
	return Placeholders{
		Company: html.EscapeString(p.Company),
		Contact: html.EscapeString(p.Contact),
		Sender:  html.EscapeString(p.Sender),
	}
}

// Render replaces every occurrence of each marker with its value, company
// first, then contact, then sender. Markers must be distinct and must not
// contain one another, otherwise the result depends on that order.
func Render(tmpl string, markers, values Placeholders) string {
	vals := values.Slots()
	for i, m := range markers.Slots() {
		if m.Value == "" {
			continue
		}
		tmpl = strings.ReplaceAll(tmpl, m.Value, vals[i].Value)
	}
	return tmpl
}
