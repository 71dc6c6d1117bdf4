package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler writes one plain line per report. It is the handler in effect
// until the CLI installs a LogrHandler.
type LogHandler struct {
	// Verbose adds the kind, channel and stack trace.
	Verbose bool
	// Out defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

func (h *LogHandler) HandleError(err *HostError) {
	if err == nil {
		return
	}
	w := h.writer()
	if !h.Verbose {
		fmt.Fprintf(w, "[ceflab error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(w, "[ceflab error] %v\n", err)
	h.writeStack(w, err.StackTrace)
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.writer()
	fmt.Fprintf(w, "[ceflab panic] %v\n", err)
	if h.Verbose {
		h.writeStack(w, err.StackTrace)
	}
}

func (h *LogHandler) writeStack(w io.Writer, stack string) {
	if stack != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", stack)
	}
}
