package main

import (
	"bytes"
	"testing"

	"github.com/alexisbeaulieu97/sumcalc/internal/clipboard"
)

type recordingClipboard struct {
	written []string
	err     error
}

func (c *recordingClipboard) WriteText(text string) error {
	c.written = append(c.written, text)
	return c.err
}

// sandbox points HOME at a temp dir and replaces host integrations.
func sandbox(t *testing.T) (string, *recordingClipboard) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUMCALC_LOG_LEVEL", "")
	t.Setenv("SUMCALC_THEME_FALLBACK", "")

	clip := &recordingClipboard{}
	originalClipboard := newClipboard
	originalDark := systemDark
	t.Cleanup(func() {
		newClipboard = originalClipboard
		systemDark = originalDark
	})
	newClipboard = func() clipboard.Writer { return clip }
	systemDark = func() bool { return false }

	return home, clip
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
