// Package errors provides structured error handling for the charts library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSource indicates a failure surfaced by an upstream data source.
	KindSource
	// KindConfig indicates a configuration loading or decoding error.
	KindConfig
	// KindRender indicates a rendering surface error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// ChartError represents a structured error in the charts library.
type ChartError struct {
	// Op is the operation that failed (e.g., "plot.SeriesTransform").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// New wraps err in a ChartError stamped with the current time.
func New(op string, kind ErrorKind, err error) *ChartError {
	return &ChartError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Handler receives errors reported by the charts library. The plot core
// itself raises no user-visible failures; the handler only ever sees
// conditions forwarded from collaborators, such as an upstream stream
// reporting an internal error.
type Handler interface {
	HandleError(err *ChartError)
}
