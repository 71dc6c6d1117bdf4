package platform

import (
	"errors"
	"fmt"
)

// Bridge errors.
var (
	// ErrChannelNotFound is returned to the host for calls on an unregistered
	// channel.
	ErrChannelNotFound = errors.New("platform: channel not found")
	// ErrMethodNotFound is returned for a method the receiving side does not
	// implement.
	ErrMethodNotFound = errors.New("platform: method not implemented")
	// ErrInvalidArguments wraps host calls whose arguments had the wrong shape.
	ErrInvalidArguments = errors.New("platform: invalid arguments")
	// ErrPlatformUnavailable is returned when no native bridge is installed.
	ErrPlatformUnavailable = errors.New("platform: no native bridge")
)

// Browser view errors.
var (
	// ErrInvalidHandle is returned when a browser handle does not refer to a
	// live view, either because it was never registered or because the view
	// has been disposed.
	ErrInvalidHandle = errors.New("platform: invalid browser handle")

	// ErrDisposed is returned by controller methods after Dispose.
	// errors.Is(ErrDisposed, ErrInvalidHandle) holds.
	ErrDisposed = fmt.Errorf("platform: controller disposed: %w", ErrInvalidHandle)
)
