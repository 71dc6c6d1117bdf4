package platform

import (
	"sync"

	"github.com/kztool/ceflab/pkg/errors"
)

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func()) // guarded by dispatchMu
)

// RegisterDispatch installs the function that runs callbacks on the host's
// UI thread. Passing nil drops all subsequent callbacks.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch hands callback to the host UI thread. It reports false when no
// dispatch function is registered or callback is nil; the callback is then
// dropped.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// dispatchRecovered dispatches callback, reporting a panic in it under op
// instead of letting it reach the host.
func dispatchRecovered(op string, callback func()) {
	Dispatch(func() {
		defer errors.Recover(op)
		callback()
	})
}
