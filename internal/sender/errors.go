package sender

import (
	"errors"
	"fmt"

	"github.com/hal9000y/sponsor-emails/internal/gdoc"
	"github.com/hal9000y/sponsor-emails/internal/gservice"
)

// ErrAborted is returned when the operator declines to send.
var ErrAborted = errors.New("aborted")

// Stage is a step of a send run.
type Stage int

const (
	StageAuthenticating Stage = iota
	StageFetchingTemplate
	StageFetchingSheets
	StageMappingColumns
	StageFetchingRows
	StageConfirmingSend
	StageSending
	StageDone
)

var stageNames = map[Stage]string{
	StageAuthenticating:   "authenticating",
	StageFetchingTemplate: "fetching template",
	StageFetchingSheets:   "fetching sheets",
	StageMappingColumns:   "mapping columns",
	StageFetchingRows:     "fetching rows",
	StageConfirmingSend:   "confirming send",
	StageSending:          "sending",
	StageDone:             "done",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Kind classifies a fatal run error.
type Kind int

const (
	// KindCredentials means credentials could not be loaded.
	KindCredentials Kind = iota
	// KindNotFound means a sheet, worksheet, document or column header is missing.
	KindNotFound
	// KindRemote is any other failure, usually reported by a remote service.
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindCredentials:
		return "credentials"
	case KindNotFound:
		return "not found"
	default:
		return "remote"
	}
}

// Error is a fatal run error. The run stopped at Stage.
type Error struct {
	Stage   Stage
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// documentError classifies a failed template fetch.
func documentError(err error) *Error {
	e := &Error{Stage: StageFetchingTemplate, Kind: KindRemote, Err: err}

	var apiErr *gservice.APIError
	switch {
	case errors.Is(err, gdoc.ErrNoValidID):
		e.Message = "invalid document url"
	case errors.As(err, &apiErr) && apiErr.Kind == gservice.KindNotFound:
		e.Kind = KindNotFound
		e.Message = "could not find template"
	case errors.As(err, &apiErr):
		e.Message = fmt.Sprintf("unable to get document: (%d) %s", apiErr.Status, apiErr.Message)
	default:
		e.Message = fmt.Sprintf("unable to get document: %s", err)
	}

	return e
}

// sheetError classifies a failed worksheet open or read.
func sheetError(stage Stage, err error) *Error {
	e := &Error{Stage: stage, Kind: KindRemote, Err: err}

	var (
		apiErr *gservice.APIError
		wsErr  *gservice.WorksheetNotFoundError
	)
	switch {
	case errors.Is(err, gdoc.ErrNoValidID):
		e.Message = "invalid document url"
	case errors.As(err, &wsErr):
		e.Kind = KindNotFound
		e.Message = fmt.Sprintf("could not find worksheet %q", wsErr.Title)
	case errors.As(err, &apiErr) && apiErr.Kind == gservice.KindNotFound:
		e.Kind = KindNotFound
		e.Message = "could not find sheet"
	case errors.As(err, &apiErr):
		e.Message = apiErr.Message
	default:
		e.Message = err.Error()
	}

	return e
}
