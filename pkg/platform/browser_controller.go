package platform

import (
	"fmt"
	"sync"

	"github.com/kztool/ceflab/pkg/errors"
)

// BrowserController provides control over a browser view hosted natively.
// The controller registers its view eagerly, so methods and callbacks work
// immediately after construction.
//
//	c := platform.NewBrowserController()
//	c.OnLoadError = func(code int, text, failedURL string) { ... }
//	c.Load("https://example.com")
//
// Set callback fields before calling [BrowserController.Load] to ensure
// no events are missed. Callbacks run on the UI thread through [Dispatch]
// and are dropped when no dispatch function is registered.
//
// All methods are safe for concurrent use.
type BrowserController struct {
	mu     sync.RWMutex
	handle BrowserHandle // guarded by mu

	// OnLoadStart is called when the main frame starts loading.
	OnLoadStart func(url string)

	// OnLoadEnd is called when the main frame finishes loading.
	OnLoadEnd func(url string, httpStatus int)

	// OnLoadError is called when a navigation fails. The code is the
	// engine's navigation error code (see browserutil.ErrorCode).
	OnLoadError func(code int, errorText, failedURL string)
}

// NewBrowserController creates a browser view and returns its controller.
// If the host refuses to create the view the failure is reported and the
// returned controller behaves as disposed.
func NewBrowserController() *BrowserController {
	c, err := GetBrowserRegistry().Create(map[string]any{})
	if err != nil {
		errors.Report(&errors.HostError{
			Op:   "platform.NewBrowserController",
			Kind: errors.KindView,
			Err:  fmt.Errorf("failed to create browser view: %w", err),
		})
		return &BrowserController{}
	}
	return c
}

// Handle returns a non-owning handle to the view. After Dispose it returns
// the zero handle.
func (c *BrowserController) Handle() BrowserHandle {
	c.mu.RLock()
	h := c.handle
	c.mu.RUnlock()
	return h
}

// ViewID returns the view ID, or 0 if the view is gone.
func (c *BrowserController) ViewID() int64 {
	return c.Handle().ID
}

func (c *BrowserController) invoke(method string, args map[string]any) error {
	h := c.Handle()
	if h.IsZero() {
		return ErrDisposed
	}
	_, err := GetBrowserRegistry().InvokeViewMethod(h, method, args)
	if err == ErrInvalidHandle {
		return ErrDisposed
	}
	return err
}

// Load navigates the main frame to url. Data URIs are accepted.
func (c *BrowserController) Load(url string) error {
	return c.invoke("loadURL", map[string]any{"url": url})
}

// GoBack navigates back in history.
func (c *BrowserController) GoBack() error {
	return c.invoke("goBack", nil)
}

// GoForward navigates forward in history.
func (c *BrowserController) GoForward() error {
	return c.invoke("goForward", nil)
}

// Reload reloads the current page.
func (c *BrowserController) Reload() error {
	return c.invoke("reload", nil)
}

// ExecuteJavaScript runs script in the main frame.
func (c *BrowserController) ExecuteJavaScript(script string) error {
	return c.invoke("executeJavaScript", map[string]any{"script": script})
}

// Dispose releases the view. After disposal the controller must not be
// reused and handles obtained from it are invalid. Dispose is idempotent.
func (c *BrowserController) Dispose() {
	id := c.ViewID()
	if id != 0 {
		GetBrowserRegistry().Dispose(id)
	}
	c.detach()
}

// detach clears the handle once the registry has dropped the view.
func (c *BrowserController) detach() {
	c.mu.Lock()
	c.handle = BrowserHandle{}
	c.mu.Unlock()
}

func (c *BrowserController) handleLoadStart(url string) {
	cb := c.OnLoadStart
	if cb == nil {
		return
	}
	dispatchRecovered("platform.BrowserController.OnLoadStart", func() { cb(url) })
}

func (c *BrowserController) handleLoadEnd(url string, httpStatus int) {
	cb := c.OnLoadEnd
	if cb == nil {
		return
	}
	dispatchRecovered("platform.BrowserController.OnLoadEnd", func() { cb(url, httpStatus) })
}

func (c *BrowserController) handleLoadError(code int, errorText, failedURL string) {
	cb := c.OnLoadError
	if cb == nil {
		return
	}
	dispatchRecovered("platform.BrowserController.OnLoadError", func() { cb(code, errorText, failedURL) })
}
