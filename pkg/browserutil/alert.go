package browserutil

import (
	"fmt"
	"strings"

	"github.com/kztool/ceflab/pkg/platform"
)

// BrowserView is the part of a browser view Alert needs. platform.BrowserHandle
// and *platform.BrowserController both satisfy it.
//
// Implementations must return platform.ErrInvalidHandle, without acting on
// the view, once the view has been destroyed.
type BrowserView interface {
	ExecuteJavaScript(script string) error
}

var alertEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// Alert shows message to the user in a JavaScript alert dialog raised in the
// main frame of view. It returns once the host has accepted the request; it
// does not wait for the dialog to be dismissed.
//
// If view is nil or no longer alive the error wraps platform.ErrInvalidHandle
// and nothing is shown.
func Alert(view BrowserView, message string) error {
	if view == nil {
		return fmt.Errorf("browserutil: alert: %w", platform.ErrInvalidHandle)
	}
	if err := view.ExecuteJavaScript(alertScript(message)); err != nil {
		return fmt.Errorf("browserutil: alert: %w", err)
	}
	return nil
}

func alertScript(message string) string {
	return "alert('" + alertEscaper.Replace(message) + "');"
}
