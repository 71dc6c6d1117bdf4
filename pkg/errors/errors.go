// Package errors provides structured error reporting for the ceflab host
// utilities.
//
// Failures that cannot be returned to a caller, such as a malformed event
// from the host or a panic inside a load callback, are sent to a process-wide
// ErrorHandler with Report and Recover.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindBridge is a failure of the native bridge itself: no bridge, an
	// unknown channel, or a host call that returned an error.
	KindBridge
	// KindView is a browser view lifecycle failure (create or dispose).
	KindView
	// KindParsing is data from the host that could not be decoded.
	KindParsing
	// KindPanic is a recovered panic.
	KindPanic
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindBridge:  "bridge",
	KindView:    "view",
	KindParsing: "parsing",
	KindPanic:   "panic",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// HostError is a structured error raised while talking to the browser host.
type HostError struct {
	// Op names the failing operation, e.g. "platform.HandleMethodCall".
	Op   string
	Kind ErrorKind
	Err  error
	// Channel is the bridge channel involved, if any.
	Channel    string
	StackTrace string
	// Timestamp is filled in by Report when left zero.
	Timestamp time.Time
}

// Error formats as "op: err (kind)" or "op: err (kind, channel name)".
func (e *HostError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %v (%s", e.Op, e.Err, e.Kind)
	if e.Channel != "" {
		sb.WriteString(", channel ")
		sb.WriteString(e.Channel)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (e *HostError) Unwrap() error { return e.Err }

// PanicError is a panic recovered by Recover.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("%s: panic: %v", e.Op, e.Value)
}

// ParseError describes a host message whose arguments had the wrong shape.
type ParseError struct {
	Channel string
	// Method is the host method whose arguments were rejected.
	Method string
	Got    any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad arguments for %s on %s: got %T", e.Method, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the host utilities.
type ErrorHandler interface {
	HandleError(err *HostError)
	HandlePanic(err *PanicError)
}
