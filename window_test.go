package daylog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	c := NewConsole(WithOutput(out), WithErrorOutput(errOut), WithStyling(false))
	return c, out, errOut
}

// TestRenderOpensWindow verifies header emission and in-window prefixes.
func TestRenderOpensWindow(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Render("api/server", []string{"ready", "port 8080"}, RenderOptions{})

	expected := windowHeader + "api/server\n" +
		windowBar + "ready\n" +
		windowBar + windowContinue + "port 8080\n"
	assert.Equal(t, expected, out.String())
}

// TestRenderSameLabelContinues verifies that a matching label reuses the
// open window without a second header.
func TestRenderSameLabelContinues(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Render("api/server", []string{"one"}, RenderOptions{})
	c.Render("api/server", []string{"two"}, RenderOptions{})

	expected := windowHeader + "api/server\n" +
		windowBar + "one\n" +
		windowBar + "two\n"
	assert.Equal(t, expected, out.String())
}

// TestRenderLabelSwitch verifies footer-then-header on label change.
func TestRenderLabelSwitch(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Render("first", []string{"a"}, RenderOptions{})
	c.Render("second", []string{"b"}, RenderOptions{})

	expected := windowHeader + "first\n" +
		windowBar + "a\n" +
		windowFooter + "\n" +
		windowHeader + "second\n" +
		windowBar + "b\n"
	assert.Equal(t, expected, out.String())
}

// TestRenderForceContinue verifies that Continue keeps the open window
// even when the label differs.
func TestRenderForceContinue(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Render("first", []string{"a"}, RenderOptions{})
	c.Render("other", []string{"b"}, RenderOptions{Continue: true})

	expected := windowHeader + "first\n" +
		windowBar + "a\n" +
		windowBar + "b\n"
	assert.Equal(t, expected, out.String())
}

// TestRenderEmptyLabel verifies that an empty label closes any open
// window and prints without chrome.
func TestRenderEmptyLabel(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Render("first", []string{"a"}, RenderOptions{})
	c.Render("", []string{"bare"}, RenderOptions{})

	expected := windowHeader + "first\n" +
		windowBar + "a\n" +
		windowFooter + "\n" +
		"bare\n"
	assert.Equal(t, expected, out.String())
}

// TestRenderErrorSink verifies error lines go through the error sink
// regardless of window state.
func TestRenderErrorSink(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.Render("svc", []string{"fine"}, RenderOptions{})
	c.Render("svc", []string{"boom"}, RenderOptions{IsError: true})

	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), windowBar+"boom\n")
}

// TestConsoleClose emits the footer of the open window once.
func TestConsoleClose(t *testing.T) {
	c, out, _ := newTestConsole()

	c.Close() // nothing open, no output
	assert.Empty(t, out.String())

	c.Render("svc", []string{"line"}, RenderOptions{})
	c.Close()
	c.Close()

	expected := windowHeader + "svc\n" +
		windowBar + "line\n" +
		windowFooter + "\n"
	assert.Equal(t, expected, out.String())
}
