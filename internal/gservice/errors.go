// Package gservice wraps the remote services the mailer talks to: Google
// Docs, Google Sheets and Mailgun.
package gservice

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Kind classifies a failed remote call by its HTTP status.
type Kind int

const (
	KindRequest Kind = iota
	KindNotFound
	KindUnauthorized
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server error"
	default:
		return "request error"
	}
}

// APIError is a non-2xx answer from a remote service.
type APIError struct {
	Service string
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: (%d) %s", e.Service, e.Status, e.Message)
}

// WorksheetNotFoundError reports a spreadsheet without a tab of the requested title.
type WorksheetNotFoundError struct {
	Title string
}

func (e *WorksheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found", e.Title)
}

func kindOf(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindUnauthorized
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindRequest
	}
}

// fromGoogle converts a *googleapi.Error into an *APIError, leaving other errors untouched.
func fromGoogle(service string, err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	msg := gerr.Message
	if msg == "" {
		msg = gerr.Body
	}

	return &APIError{
		Service: service,
		Kind:    kindOf(gerr.Code),
		Status:  gerr.Code,
		Message: msg,
	}
}
