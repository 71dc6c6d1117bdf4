package platform

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
)

// --- Test helpers ---

// testBridge captures native method invocations for assertions.
type testBridge struct {
	mu    sync.Mutex
	calls []testBridgeCall
	err   error
}

type testBridgeCall struct {
	channel string
	method  string
	args    map[string]any // JSON-decoded
}

func (b *testBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args map[string]any
	if len(argsData) > 0 {
		if err := json.Unmarshal(argsData, &args); err != nil {
			return nil, fmt.Errorf("testBridge: malformed %s/%s request: %w", channel, method, err)
		}
	}
	b.mu.Lock()
	b.calls = append(b.calls, testBridgeCall{channel: channel, method: method, args: args})
	err := b.err
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Encode(nil)
}

// viewCalls returns the invokeViewMethod calls for the given view method.
func (b *testBridge) viewCalls(method string) []testBridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []testBridgeCall
	for _, c := range b.calls {
		if c.method == "invokeViewMethod" && c.args["method"] == method {
			result = append(result, c)
		}
	}
	return result
}

func (b *testBridge) methodCalls(method string) []testBridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []testBridgeCall
	for _, c := range b.calls {
		if c.method == method {
			result = append(result, c)
		}
	}
	return result
}

func (b *testBridge) setErr(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

func setupTestBridge(t *testing.T) *testBridge {
	bridge := &testBridge{}
	SetupTestBridge(t.Cleanup)
	SetNativeBridge(bridge)
	return bridge
}

// sendHostCall simulates the host calling into the browser views channel.
func sendHostCall(t *testing.T, method string, args map[string]any) error {
	t.Helper()
	data, err := DefaultCodec.Encode(args)
	if err != nil {
		t.Fatalf("encode args: %v", err)
	}
	_, err = HandleMethodCall(BrowserViewsChannel, method, data)
	return err
}

// --- Tests ---

func TestBrowserRegistry_CreateNotifiesHost(t *testing.T) {
	bridge := setupTestBridge(t)

	c, err := GetBrowserRegistry().Create(map[string]any{"url": "about:blank"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer c.Dispose()

	calls := bridge.methodCalls("create")
	if len(calls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(calls))
	}
	if calls[0].channel != BrowserViewsChannel {
		t.Errorf("channel = %q, want %q", calls[0].channel, BrowserViewsChannel)
	}
	if got := calls[0].args["viewId"]; got != float64(c.ViewID()) {
		t.Errorf("viewId = %v, want %d", got, c.ViewID())
	}
}

func TestBrowserRegistry_CreateFailureUnregisters(t *testing.T) {
	bridge := setupTestBridge(t)
	bridge.setErr(stderrors.New("host refused"))

	r := GetBrowserRegistry()
	if _, err := r.Create(nil); err == nil {
		t.Fatal("expected error from Create")
	}
	if r.Len() != 0 {
		t.Errorf("expected no live views, got %d", r.Len())
	}
}

func TestBrowserRegistry_AliveAndDispose(t *testing.T) {
	bridge := setupTestBridge(t)

	r := GetBrowserRegistry()
	c, err := r.Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	h := c.Handle()
	if !r.Alive(h) {
		t.Fatal("expected handle to be alive after Create")
	}
	if got, ok := r.Lookup(h); !ok || got != c {
		t.Errorf("Lookup returned %v, %v", got, ok)
	}

	r.Dispose(h.ID)

	if r.Alive(h) {
		t.Error("expected handle to be dead after Dispose")
	}
	if len(bridge.methodCalls("dispose")) != 1 {
		t.Error("expected one dispose call to the host")
	}

	// Second dispose is a no-op.
	r.Dispose(h.ID)
	if len(bridge.methodCalls("dispose")) != 1 {
		t.Error("repeated Dispose should not notify the host again")
	}
}

func TestBrowserHandle_ZeroIsDead(t *testing.T) {
	setupTestBridge(t)

	var h BrowserHandle
	if !h.IsZero() {
		t.Error("zero handle should report IsZero")
	}
	if h.Alive() {
		t.Error("zero handle should never be alive")
	}
	if err := h.ExecuteJavaScript("1"); err != ErrInvalidHandle {
		t.Errorf("ExecuteJavaScript on zero handle: got %v, want ErrInvalidHandle", err)
	}
}

func TestBrowserHandle_StaleGenerationRejected(t *testing.T) {
	bridge := setupTestBridge(t)

	r := GetBrowserRegistry()
	old, err := r.Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stale := old.Handle()

	// Reset restarts IDs, so the next view reuses the stale ID.
	ResetForTest()
	SetNativeBridge(bridge)

	fresh, err := r.Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fresh.ViewID() != stale.ID {
		t.Fatalf("expected ID reuse, got %d and %d", fresh.ViewID(), stale.ID)
	}
	if r.Alive(stale) {
		t.Error("stale handle must not match a newer view with the same ID")
	}
	if err := stale.ExecuteJavaScript("1"); err != ErrInvalidHandle {
		t.Errorf("got %v, want ErrInvalidHandle", err)
	}
	if n := len(bridge.viewCalls("executeJavaScript")); n != 0 {
		t.Errorf("stale handle reached the host %d times", n)
	}
}

func TestBrowserHandle_ExecuteJavaScript(t *testing.T) {
	bridge := setupTestBridge(t)

	c := NewBrowserController()
	defer c.Dispose()

	if err := c.Handle().ExecuteJavaScript("document.title"); err != nil {
		t.Fatalf("ExecuteJavaScript: %v", err)
	}

	calls := bridge.viewCalls("executeJavaScript")
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if got := calls[0].args["viewId"]; got != float64(c.ViewID()) {
		t.Errorf("viewId = %v, want %d", got, c.ViewID())
	}
	if got := calls[0].args["generation"]; got != float64(c.Handle().Generation) {
		t.Errorf("generation = %v, want %d", got, c.Handle().Generation)
	}
	if got := calls[0].args["script"]; got != "document.title" {
		t.Errorf("script = %v", got)
	}
}

func TestInvokeViewMethod_DoesNotMutateArgs(t *testing.T) {
	setupTestBridge(t)

	c := NewBrowserController()
	defer c.Dispose()

	args := map[string]any{"url": "https://example.com"}
	if _, err := GetBrowserRegistry().InvokeViewMethod(c.Handle(), "loadURL", args); err != nil {
		t.Fatalf("InvokeViewMethod: %v", err)
	}
	if len(args) != 1 {
		t.Errorf("caller args mutated: %v", args)
	}
}

func TestHostViewDisposedInvalidatesHandle(t *testing.T) {
	setupTestBridge(t)

	c := NewBrowserController()
	h := c.Handle()

	if err := sendHostCall(t, "onViewDisposed", map[string]any{"viewId": h.ID}); err != nil {
		t.Fatalf("onViewDisposed: %v", err)
	}
	if h.Alive() {
		t.Error("handle should be dead after the host disposed the view")
	}
	if c.ViewID() != 0 {
		t.Error("controller should be detached")
	}
	if err := c.Load("https://example.com"); err != ErrDisposed {
		t.Errorf("Load after host dispose: got %v, want ErrDisposed", err)
	}
}

func TestHandleMethodCall_Errors(t *testing.T) {
	setupTestBridge(t)

	if _, err := HandleMethodCall("no/such/channel", "x", nil); err != ErrChannelNotFound {
		t.Errorf("unknown channel: got %v, want ErrChannelNotFound", err)
	}
	if _, err := HandleMethodCall(BrowserViewsChannel, "onLoadStart", []byte("{")); err == nil {
		t.Error("expected decode error for malformed JSON")
	}
	if err := sendHostCall(t, "onLoadStart", map[string]any{"url": "x"}); !stderrors.Is(err, ErrInvalidArguments) {
		t.Errorf("missing viewId: got %v, want ErrInvalidArguments", err)
	}

	c := NewBrowserController()
	defer c.Dispose()
	if err := sendHostCall(t, "onSomethingElse", map[string]any{"viewId": c.ViewID()}); err != ErrMethodNotFound {
		t.Errorf("unknown method: got %v, want ErrMethodNotFound", err)
	}
}

func TestInvokeWithoutBridge(t *testing.T) {
	t.Cleanup(ResetForTest)
	SetNativeBridge(nil)

	if _, err := GetBrowserRegistry().Create(nil); err != ErrPlatformUnavailable {
		t.Errorf("got %v, want ErrPlatformUnavailable", err)
	}
}

func TestBrowserHandle_ConcurrentUseAndDispose(t *testing.T) {
	bridge := setupTestBridge(t)

	const views = 50
	var wg sync.WaitGroup
	for i := 0; i < views; i++ {
		c := NewBrowserController()
		h := c.Handle()
		wg.Add(3)
		go func() {
			defer wg.Done()
			if err := h.ExecuteJavaScript("1"); err != nil && err != ErrInvalidHandle {
				t.Errorf("ExecuteJavaScript: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			c.Dispose()
			if err := h.ExecuteJavaScript("2"); err != ErrInvalidHandle {
				t.Errorf("after Dispose: got %v, want ErrInvalidHandle", err)
			}
		}()
		go func() {
			defer wg.Done()
			// The host may close the view on its own at the same time.
			sendHostCall(t, "onViewDisposed", map[string]any{"viewId": h.ID})
			if h.Alive() {
				t.Error("handle alive after onViewDisposed")
			}
		}()
	}
	wg.Wait()

	if n := GetBrowserRegistry().Len(); n != 0 {
		t.Errorf("%d views left registered", n)
	}
	for _, call := range bridge.viewCalls("executeJavaScript") {
		if call.args["script"] != "1" {
			t.Errorf("script sent for a disposed view: %v", call.args["script"])
		}
	}
}
