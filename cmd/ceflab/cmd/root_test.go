package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kztool/ceflab/pkg/errors"
)

// runCLI executes the CLI with captured output and an empty config dir.
func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	return runCLIIn(t, t.TempDir(), input, args...)
}

// runCLIIn executes the CLI with captured output, reading ceflab.yaml from dir.
func runCLIIn(t *testing.T, dir, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr, oldIn := stdout, stderr, stdin
	stdout, stderr, stdin = &out, &errOut, strings.NewReader(input)
	t.Cleanup(func() {
		stdout, stderr, stdin = oldOut, oldErr, oldIn
		errors.SetHandler(nil)
	})

	err := run(append([]string{"--config-dir", dir}, args...))
	return out.String(), errOut.String(), err
}

func TestRun_Help(t *testing.T) {
	out, _, err := runCLI(t, "", "--help")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"datauri", "decode", "errstr", "errorpage"} {
		if !strings.Contains(out, name) {
			t.Errorf("help should list %s, got:\n%s", name, out)
		}
	}
}

func TestRun_Version(t *testing.T) {
	out, _, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output %q should contain %q", out, Version)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, errOut, err := runCLI(t, "", "bogus")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(errOut, `unknown command "bogus"`) {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_CommandHelp(t *testing.T) {
	out, _, err := runCLI(t, "", "errstr", "--help")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "ceflab errstr <code>") {
		t.Errorf("command help = %q", out)
	}
}

func TestRun_ConfigDirRequiresValue(t *testing.T) {
	if err := run([]string{"errstr", "--config-dir"}); err == nil {
		t.Error("expected error for --config-dir without a value")
	}
}

func TestDataURI_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "", "datauri", "--mime", "text/plain", path)
	if err != nil {
		t.Fatalf("datauri: %v", err)
	}
	if out != "data:text/plain;base64,aGk=\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDataURI_StdinDetected(t *testing.T) {
	out, _, err := runCLI(t, "plain words", "datauri", "-")
	if err != nil {
		t.Fatalf("datauri: %v", err)
	}
	if !strings.HasPrefix(out, "data:text/plain;charset=utf-8;base64,") {
		t.Errorf("output = %q", out)
	}
}

func TestDataURI_ConfigDefaultMIME(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ceflab.yaml"), []byte("page:\n  default_mime: text/html\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLIIn(t, dir, "<p>x</p>", "datauri", "-")
	if err != nil {
		t.Fatalf("datauri: %v", err)
	}
	if !strings.HasPrefix(out, "data:text/html;base64,") {
		t.Errorf("output = %q", out)
	}
}

func TestDataURI_Errors(t *testing.T) {
	if _, _, err := runCLI(t, "", "datauri"); err == nil {
		t.Error("expected error without a file")
	}
	if _, _, err := runCLI(t, "", "datauri", "--mime"); err == nil {
		t.Error("expected error for --mime without a value")
	}
	if _, _, err := runCLI(t, "", "datauri", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestDecode(t *testing.T) {
	out, errOut, err := runCLI(t, "", "decode", "data:text/plain;base64,aGk=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "hi" {
		t.Errorf("payload = %q", out)
	}
	if errOut != "text/plain\n" {
		t.Errorf("mime = %q", errOut)
	}

	if _, _, err := runCLI(t, "", "decode", "https://example.com"); err == nil {
		t.Error("expected error for a non data URI")
	}
}

func TestErrStr(t *testing.T) {
	out, _, err := runCLI(t, "", "errstr", "-105", "ERR_CONNECTION_REFUSED", "-424242")
	if err != nil {
		t.Fatalf("errstr: %v", err)
	}
	for _, want := range []string{
		"ERR_NAME_NOT_RESOLVED: The host name could not be resolved",
		"ERR_CONNECTION_REFUSED: The connection was refused",
		"UNKNOWN: Unknown error",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}

	if _, _, err := runCLI(t, "", "errstr", "ERR_BOGUS"); err == nil {
		t.Error("expected error for an invalid code")
	}
}

func TestErrStr_All(t *testing.T) {
	out, _, err := runCLI(t, "", "errstr", "-all")
	if err != nil {
		t.Fatalf("errstr: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 100 {
		t.Errorf("expected the full table, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "ERR_NONE") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestErrorPage(t *testing.T) {
	out, _, err := runCLI(t, "", "errorpage", "https://example.com", "-105")
	if err != nil {
		t.Fatalf("errorpage: %v", err)
	}
	if !strings.HasPrefix(out, "data:text/html;base64,") {
		t.Errorf("output = %q", out)
	}
	if _, _, err := runCLI(t, "", "errorpage", "https://example.com"); err == nil {
		t.Error("expected error without a code")
	}
}
