package browserutil

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kztool/ceflab/pkg/platform"
)

// recordingBridge captures the host requests made through the platform
// package.
type recordingBridge struct {
	mu    sync.Mutex
	calls []map[string]any
	err   error
}

func (b *recordingBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	args := map[string]any{}
	if err := json.Unmarshal(argsData, &args); err != nil {
		return nil, fmt.Errorf("recordingBridge: malformed %s/%s request: %w", channel, method, err)
	}
	args["_channel"] = channel
	args["_method"] = method
	b.mu.Lock()
	b.calls = append(b.calls, args)
	err := b.err
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return []byte("null"), nil
}

func (b *recordingBridge) scriptCalls() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	for _, c := range b.calls {
		if c["_method"] == "invokeViewMethod" && c["method"] == "executeJavaScript" {
			out = append(out, c)
		}
	}
	return out
}

func setupBridge(t *testing.T) *recordingBridge {
	t.Helper()
	b := &recordingBridge{}
	platform.SetupTestBridge(t.Cleanup)
	platform.SetNativeBridge(b)
	return b
}

func TestAlert_ValidView(t *testing.T) {
	bridge := setupBridge(t)

	c := platform.NewBrowserController()
	defer c.Dispose()
	other := platform.NewBrowserController()
	defer other.Dispose()

	if err := Alert(c.Handle(), "hello"); err != nil {
		t.Fatalf("Alert: %v", err)
	}

	calls := bridge.scriptCalls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly 1 presentation request, got %d", len(calls))
	}
	if got := calls[0]["viewId"]; got != float64(c.ViewID()) {
		t.Errorf("request scoped to view %v, want %d", got, c.ViewID())
	}
	if got := calls[0]["script"]; got != "alert('hello');" {
		t.Errorf("script = %v", got)
	}
}

func TestAlert_Controller(t *testing.T) {
	bridge := setupBridge(t)

	c := platform.NewBrowserController()
	defer c.Dispose()

	if err := Alert(c, "from controller"); err != nil {
		t.Fatalf("Alert: %v", err)
	}
	if n := len(bridge.scriptCalls()); n != 1 {
		t.Errorf("expected 1 request, got %d", n)
	}
}

func TestAlert_DestroyedView(t *testing.T) {
	bridge := setupBridge(t)

	c := platform.NewBrowserController()
	h := c.Handle()
	c.Dispose()

	for name, view := range map[string]BrowserView{
		"handle":     h,
		"controller": c,
		"zero":       platform.BrowserHandle{},
		"nil":        nil,
	} {
		err := Alert(view, "hello")
		if !stderrors.Is(err, platform.ErrInvalidHandle) {
			t.Errorf("%s: got %v, want ErrInvalidHandle", name, err)
		}
	}
	if n := len(bridge.scriptCalls()); n != 0 {
		t.Errorf("dead views must not reach the host, got %d requests", n)
	}
}

func TestAlert_BridgeFailure(t *testing.T) {
	bridge := setupBridge(t)

	c := platform.NewBrowserController()
	defer c.Dispose()

	hostErr := stderrors.New("renderer crashed")
	bridge.mu.Lock()
	bridge.err = hostErr
	bridge.mu.Unlock()

	if err := Alert(c.Handle(), "hello"); !stderrors.Is(err, hostErr) {
		t.Errorf("got %v, want wrapped host error", err)
	}
}

func TestAlertScript(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"", "alert('');"},
		{"hello", "alert('hello');"},
		{"it's", `alert('it\'s');`},
		{`C:\temp`, `alert('C:\\temp');`},
		{"line1\nline2\r", `alert('line1\nline2\r');`},
		{"a\u2028b\u2029c", `alert('a\u2028b\u2029c');`},
		{`');evil();('`, `alert('\');evil();(\'');`},
	}
	for _, tt := range tests {
		if got := alertScript(tt.message); got != tt.want {
			t.Errorf("alertScript(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

type stubView struct {
	scripts []string
	err     error
}

func (v *stubView) ExecuteJavaScript(script string) error {
	if v.err != nil {
		return v.err
	}
	v.scripts = append(v.scripts, script)
	return nil
}

func TestAlert_CustomView(t *testing.T) {
	v := &stubView{}
	if err := Alert(v, "hi"); err != nil {
		t.Fatalf("Alert: %v", err)
	}
	if len(v.scripts) != 1 || v.scripts[0] != "alert('hi');" {
		t.Errorf("scripts = %q", v.scripts)
	}

	dead := &stubView{err: platform.ErrInvalidHandle}
	if err := Alert(dead, "hi"); !stderrors.Is(err, platform.ErrInvalidHandle) {
		t.Errorf("got %v, want ErrInvalidHandle", err)
	}
}

func TestRecordingBridge_RejectsMalformedRequest(t *testing.T) {
	b := &recordingBridge{}
	if _, err := b.InvokeMethod(platform.BrowserViewsChannel, "invokeViewMethod", []byte("{")); err == nil {
		t.Error("expected malformed request to fail")
	}
	if len(b.calls) != 0 {
		t.Errorf("malformed request recorded: %v", b.calls)
	}
}

func TestAlert_ConcurrentDispose(t *testing.T) {
	bridge := setupBridge(t)

	const views = 50
	var wg sync.WaitGroup
	racing := make(chan error, views)
	afterDispose := make(chan error, views)
	for i := 0; i < views; i++ {
		c := platform.NewBrowserController()
		h := c.Handle()
		wg.Add(2)
		go func() {
			defer wg.Done()
			racing <- Alert(h, "racing")
		}()
		go func() {
			defer wg.Done()
			c.Dispose()
			afterDispose <- Alert(h, "after dispose")
		}()
	}
	wg.Wait()
	close(racing)
	close(afterDispose)

	for err := range racing {
		if err != nil && !stderrors.Is(err, platform.ErrInvalidHandle) {
			t.Errorf("racing alert: unexpected error %v", err)
		}
	}
	for err := range afterDispose {
		if !stderrors.Is(err, platform.ErrInvalidHandle) {
			t.Errorf("alert after Dispose: got %v, want ErrInvalidHandle", err)
		}
	}
	if n := platform.GetBrowserRegistry().Len(); n != 0 {
		t.Errorf("%d views left registered", n)
	}
	for _, call := range bridge.scriptCalls() {
		if call["script"] != "alert('racing');" {
			t.Errorf("script sent after Dispose: %v", call["script"])
		}
	}
}
