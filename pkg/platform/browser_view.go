package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kztool/ceflab/pkg/errors"
)

// BrowserViewsChannel is the method channel shared by all browser views.
const BrowserViewsChannel = "ceflab/browser_views"

// BrowserHandle is a non-owning reference to a browser view managed by the
// host. Holding a handle does not keep the view alive; every use checks that
// the view is still registered with the same generation.
//
// The zero value never refers to a live view.
type BrowserHandle struct {
	// ID is the view identifier shared with the host.
	ID int64
	// Generation distinguishes views that were assigned the same ID.
	Generation uint64
}

// IsZero reports whether h is the zero handle.
func (h BrowserHandle) IsZero() bool {
	return h.ID == 0 && h.Generation == 0
}

// Alive reports whether h still refers to a live view.
func (h BrowserHandle) Alive() bool {
	return GetBrowserRegistry().Alive(h)
}

// ExecuteJavaScript asks the host to run script in the main frame of the
// view. It returns ErrInvalidHandle, without contacting the host, when the
// view is gone.
func (h BrowserHandle) ExecuteJavaScript(script string) error {
	_, err := GetBrowserRegistry().InvokeViewMethod(h, "executeJavaScript", map[string]any{
		"script": script,
	})
	return err
}

type browserEntry struct {
	handle     BrowserHandle
	controller *BrowserController
}

// BrowserRegistry tracks the browser views currently alive in the host.
type BrowserRegistry struct {
	views   map[int64]*browserEntry // guarded by mu
	nextID  atomic.Int64
	mu      sync.RWMutex
	channel *MethodChannel
}

var (
	browserRegistryOnce sync.Once
	browserRegistry     *BrowserRegistry

	// generations is never reset, including by ResetForTest.
	generations atomic.Uint64
)

// GetBrowserRegistry returns the global browser view registry.
func GetBrowserRegistry() *BrowserRegistry {
	browserRegistryOnce.Do(func() {
		browserRegistry = newBrowserRegistry(BrowserViewsChannel)
	})
	return browserRegistry
}

func newBrowserRegistry(channel string) *BrowserRegistry {
	r := &BrowserRegistry{
		views:   make(map[int64]*browserEntry),
		channel: NewMethodChannel(channel),
	}
	r.channel.SetHandler(r.handleMethodCall)
	return r
}

// Create registers a new browser view, asks the host to create it and
// returns its controller.
func (r *BrowserRegistry) Create(params map[string]any) (*BrowserController, error) {
	handle := BrowserHandle{
		ID:         r.nextID.Add(1),
		Generation: generations.Add(1),
	}
	c := &BrowserController{handle: handle}

	r.mu.Lock()
	r.views[handle.ID] = &browserEntry{handle: handle, controller: c}
	r.mu.Unlock()

	_, err := r.channel.Invoke("create", map[string]any{
		"viewId":     handle.ID,
		"generation": handle.Generation,
		"params":     params,
	})
	if err != nil {
		r.mu.Lock()
		delete(r.views, handle.ID)
		r.mu.Unlock()
		return nil, err
	}

	return c, nil
}

// Alive reports whether h refers to a registered view of the same generation.
func (r *BrowserRegistry) Alive(h BrowserHandle) bool {
	_, ok := r.lookup(h)
	return ok
}

// Lookup returns the controller for a live handle.
func (r *BrowserRegistry) Lookup(h BrowserHandle) (*BrowserController, bool) {
	e, ok := r.lookup(h)
	if !ok {
		return nil, false
	}
	return e.controller, true
}

func (r *BrowserRegistry) lookup(h BrowserHandle) (*browserEntry, bool) {
	if h.IsZero() {
		return nil, false
	}
	r.mu.RLock()
	e, ok := r.views[h.ID]
	r.mu.RUnlock()
	if !ok || e.handle != h {
		return nil, false
	}
	return e, true
}

// Len returns the number of live views.
func (r *BrowserRegistry) Len() int {
	r.mu.RLock()
	n := len(r.views)
	r.mu.RUnlock()
	return n
}

// Dispose removes a view and tells the host to destroy it.
// Disposing an unknown ID is a no-op.
func (r *BrowserRegistry) Dispose(viewID int64) {
	if !r.remove(viewID) {
		return
	}
	if _, err := r.channel.Invoke("dispose", map[string]any{"viewId": viewID}); err != nil {
		errors.Report(&errors.HostError{
			Op:      "platform.BrowserRegistry.Dispose",
			Kind:    errors.KindView,
			Channel: r.channel.Name(),
			Err:     err,
		})
	}
}

func (r *BrowserRegistry) remove(viewID int64) bool {
	r.mu.Lock()
	e, ok := r.views[viewID]
	if ok {
		delete(r.views, viewID)
	}
	r.mu.Unlock()
	if ok {
		e.controller.detach()
	}
	return ok
}

// InvokeViewMethod invokes a method on a specific view. The handle is
// checked first; the host is never contacted for a dead handle. Requests
// carry the handle's generation so the host can drop those aimed at a view
// it has already destroyed, which covers a view disposed concurrently with
// this call.
func (r *BrowserRegistry) InvokeViewMethod(h BrowserHandle, method string, args map[string]any) (any, error) {
	if !r.Alive(h) {
		return nil, ErrInvalidHandle
	}

	// Clone the args map to avoid mutating the caller's map
	invokeArgs := make(map[string]any, len(args)+3)
	for k, v := range args {
		invokeArgs[k] = v
	}
	invokeArgs["viewId"] = h.ID
	invokeArgs["generation"] = h.Generation
	invokeArgs["method"] = method
	return r.channel.Invoke("invokeViewMethod", invokeArgs)
}

// handleMethodCall processes calls made by the host.
func (r *BrowserRegistry) handleMethodCall(method string, args any) (any, error) {
	m, ok := args.(map[string]any)
	if !ok {
		return nil, r.parseError(method, args)
	}
	idValue, ok := m["viewId"].(float64)
	if !ok {
		return nil, r.parseError(method, args)
	}
	viewID := int64(idValue)

	if method == "onViewDisposed" {
		// The host closed the view on its own.
		r.remove(viewID)
		return nil, nil
	}

	r.mu.RLock()
	e, ok := r.views[viewID]
	r.mu.RUnlock()
	if !ok {
		// Late events for views already disposed are ignored.
		return nil, nil
	}
	c := e.controller

	switch method {
	case "onLoadStart":
		url, _ := m["url"].(string)
		c.handleLoadStart(url)
	case "onLoadEnd":
		url, _ := m["url"].(string)
		status, _ := m["httpStatus"].(float64)
		c.handleLoadEnd(url, int(status))
	case "onLoadError":
		code, ok := m["errorCode"].(float64)
		if !ok {
			return nil, r.parseError(method, args)
		}
		text, _ := m["errorText"].(string)
		url, _ := m["failedUrl"].(string)
		c.handleLoadError(int(code), text, url)
	default:
		return nil, ErrMethodNotFound
	}
	return nil, nil
}

func (r *BrowserRegistry) parseError(method string, args any) error {
	err := &errors.ParseError{
		Channel: r.channel.Name(),
		Method:  method,
		Got:     args,
	}
	errors.Report(&errors.HostError{
		Op:      "platform.BrowserRegistry.handleMethodCall",
		Kind:    errors.KindParsing,
		Channel: r.channel.Name(),
		Err:     err,
	})
	return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
}
