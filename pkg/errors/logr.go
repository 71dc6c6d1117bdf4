package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// LogrHandler is an ErrorHandler that forwards reports to a logr.Logger as
// structured records.
type LogrHandler struct {
	Logger logr.Logger
}

// NewLogrHandler returns a handler writing to logger.
func NewLogrHandler(logger logr.Logger) *LogrHandler {
	return &LogrHandler{Logger: logger}
}

// HandleError logs a HostError. Stack traces are logged at V(1).
func (h *LogrHandler) HandleError(err *HostError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Channel != "" {
		kv = append(kv, "channel", err.Channel)
	}
	h.Logger.Error(err.Err, "host error", kv...)
	if err.StackTrace != "" {
		h.Logger.V(1).Info("stack trace", "op", err.Op, "stack", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogrHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.Error(fmt.Errorf("%v", err.Value), "recovered panic", "op", err.Op)
	if err.StackTrace != "" {
		h.Logger.V(1).Info("stack trace", "op", err.Op, "stack", err.StackTrace)
	}
}

// NewStderrLogger builds a funcr logger writing one line per record to
// stderr. Records above verbosity are dropped.
func NewStderrLogger(verbosity int) logr.Logger {
	return NewWriterLogger(os.Stderr, verbosity)
}

// NewWriterLogger is NewStderrLogger with an explicit destination.
func NewWriterLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}
