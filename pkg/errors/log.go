package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is a Handler that writes structured log lines. It is the
// default sink when a plot is constructed without an explicit handler.
type LogHandler struct {
	logger *log.Logger
}

// NewLogHandler creates a handler logging to stderr.
func NewLogHandler() *LogHandler {
	return &LogHandler{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Prefix:          "charts",
		}),
	}
}

// NewLogHandlerWith creates a handler writing through an existing logger,
// for callers that already configure charmbracelet/log themselves.
func NewLogHandlerWith(logger *log.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// HandleError logs a ChartError.
func (h *LogHandler) HandleError(err *ChartError) {
	if err == nil {
		return
	}
	h.logger.Error(err.Err.Error(), "op", err.Op, "kind", err.Kind.String())
}
