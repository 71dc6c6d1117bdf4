package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kztool/ceflab/pkg/browserutil"
)

func init() {
	RegisterCommand(&Command{
		Name:  "datauri",
		Short: "Encode a file as a data URI",
		Long: `Encode a file as a base64 data URI.

The MIME type comes from --mime when given, then from page.default_mime in
ceflab.yaml, and is otherwise detected from the file contents.
Use "-" as the file to read standard input.`,
		Usage: "ceflab datauri [--mime TYPE] <file>",
		Run:   runDataURI,
	})
	RegisterCommand(&Command{
		Name:  "decode",
		Short: "Decode a data URI",
		Long: `Decode a base64 data URI.

The payload is written to standard output and the MIME type to standard
error, so the payload can be redirected to a file:

  ceflab decode 'data:image/png;base64,...' > image.png`,
		Usage: "ceflab decode <uri>",
		Run:   runDecode,
	})
}

func runDataURI(args []string) error {
	var mimeType, path string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--mime" || arg == "-mime":
			if i+1 >= len(args) {
				return fmt.Errorf("--mime requires a MIME type")
			}
			mimeType = args[i+1]
			i++
		case strings.HasPrefix(arg, "--mime="):
			mimeType = strings.TrimPrefix(arg, "--mime=")
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q\n\nUsage: ceflab datauri [--mime TYPE] <file>", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("file is required\n\nUsage: ceflab datauri [--mime TYPE] <file>")
	}

	payload, err := readInput(path)
	if err != nil {
		return err
	}

	if mimeType == "" {
		mimeType = settings.DefaultMIME
	}
	if mimeType == "" {
		mimeType = browserutil.DetectMIMEType(payload)
	}

	fmt.Fprintln(stdout, browserutil.GetDataURI(payload, mimeType))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func runDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one URI is required\n\nUsage: ceflab decode <uri>")
	}
	payload, mimeType, err := browserutil.ParseDataURI(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(stderr, mimeType)
	_, err = stdout.Write(payload)
	return err
}
