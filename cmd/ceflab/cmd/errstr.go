package cmd

import (
	"fmt"

	"github.com/kztool/ceflab/pkg/browserutil"
)

func init() {
	RegisterCommand(&Command{
		Name:  "errstr",
		Short: "Describe navigation error codes",
		Long: `Describe browser navigation error codes.

Codes may be given as numbers (-105) or engine names (ERR_NAME_NOT_RESOLVED).
Codes outside the known table print as UNKNOWN with the fallback text.

Usage:
  ceflab errstr -105 -102     # Describe two codes
  ceflab errstr -all          # List every known code`,
		Usage: "ceflab errstr <code>... | -all",
		Run:   runErrStr,
	})
	RegisterCommand(&Command{
		Name:  "errorpage",
		Short: "Print the error page for a failed load",
		Long:  `Print the text/html data URI a host shows when loading a URL fails.`,
		Usage: "ceflab errorpage <url> <code>",
		Run:   runErrorPage,
	})
}

func runErrStr(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one code is required\n\nUsage: ceflab errstr <code>... | -all")
	}

	var codes []browserutil.ErrorCode
	for _, arg := range args {
		if arg == "-all" || arg == "--all" {
			codes = browserutil.KnownErrorCodes()
			break
		}
		code, ok := browserutil.ParseErrorCode(arg)
		if !ok {
			return fmt.Errorf("invalid error code %q", arg)
		}
		codes = append(codes, code)
	}

	for _, code := range codes {
		fmt.Fprintf(stdout, "%5d %-12s %s: %s\n", code, code.Category(), code, browserutil.GetErrorString(code))
	}
	return nil
}

func runErrorPage(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("url and code are required\n\nUsage: ceflab errorpage <url> <code>")
	}
	code, ok := browserutil.ParseErrorCode(args[1])
	if !ok {
		return fmt.Errorf("invalid error code %q", args[1])
	}
	fmt.Fprintln(stdout, browserutil.ErrorPageURI(args[0], code))
	return nil
}
