package platform

import (
	"sync"

	"github.com/kztool/ceflab/pkg/errors"
)

// channelRegistry manages all registered method channels.
type channelRegistry struct {
	methodChannels map[string]*MethodChannel
	mu             sync.RWMutex
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) getMethodChannel(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.methodChannels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge defines the interface for calling into the browser host.
type NativeBridge interface {
	// InvokeMethod calls a method on the host side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge // guarded by bridgeMu
)

// SetNativeBridge sets the native bridge implementation.
// Called by the host integration during startup.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	b := nativeBridge
	bridgeMu.RUnlock()
	return b
}

// invokeNative calls a method on the host side, encoding with codec.
func invokeNative(codec MessageCodec, channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := codec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return codec.Decode(resultData)
}

// HandleMethodCall is called by the host integration when the host invokes
// a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		errors.Report(&errors.HostError{
			Op:      "platform.HandleMethodCall",
			Kind:    errors.KindBridge,
			Channel: channel,
			Err:     ErrChannelNotFound,
		})
		return nil, ErrChannelNotFound
	}

	args, err := ch.codec.Decode(argsData)
	if err != nil {
		errors.Report(&errors.HostError{
			Op:      "platform.HandleMethodCall",
			Kind:    errors.KindParsing,
			Channel: channel,
			Err:     err,
		})
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return ch.codec.Encode(result)
}

// ResetForTest resets global platform state for test isolation.
// It clears the native bridge, the dispatch function and the browser view
// registry. View IDs restart at 1; generations keep counting so handles
// from before the reset stay invalid. This should only be called from tests.
func ResetForTest() {
	SetNativeBridge(nil)
	RegisterDispatch(nil)

	r := GetBrowserRegistry()
	r.mu.Lock()
	r.views = make(map[int64]*browserEntry)
	r.mu.Unlock()
	r.nextID.Store(0)
}
