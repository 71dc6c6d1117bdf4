package platform

// acceptBridge answers every host call with a null result.
type acceptBridge struct{}

func (acceptBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	return []byte("null"), nil
}

// SetupTestBridge prepares the package for tests of code that talks to a
// browser host: calls succeed without a host, callbacks run synchronously,
// and cleanup (usually t.Cleanup) schedules ResetForTest.
//
//	platform.SetupTestBridge(t.Cleanup)
//	c := platform.NewBrowserController()
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(acceptBridge{})
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
}
