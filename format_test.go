package daylog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSubstitute covers placeholder substitution, left to right.
func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		in   string
		args []any
		want string
	}{
		{
			name: "no placeholders no args",
			in:   "plain",
			want: "plain",
		},
		{
			name: "single placeholder",
			in:   "listening on {}",
			args: []any{":8080"},
			want: "listening on :8080",
		},
		{
			name: "left to right",
			in:   "{} of {} done",
			args: []any{3, 10},
			want: "3 of 10 done",
		},
		{
			name: "surplus args appended",
			in:   "state",
			args: []any{"ready", 42},
			want: "state ready 42",
		},
		{
			name: "missing args leave placeholder",
			in:   "got {} and {}",
			args: []any{"one"},
			want: "got one and {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substitute(tt.in, tt.args))
		})
	}
}

// TestResolveMessage verifies the variant tagging done once at the
// facade boundary.
func TestResolveMessage(t *testing.T) {
	assert.Equal(t, kindText, resolveMessage("hello").kind)
	assert.Equal(t, kindText, resolveMessage(42).kind)
	assert.Equal(t, kindText, resolveMessage(nil).kind)
	assert.Equal(t, kindFailure, resolveMessage(errors.New("boom")).kind)
	assert.Equal(t, kindStructured, resolveMessage(map[string]int{"a": 1}).kind)
	assert.Equal(t, kindStructured, resolveMessage([]string{"a"}).kind)
	assert.Equal(t, kindStructured, resolveMessage(struct{ X int }{1}).kind)
}

// TestRenderVariants checks one rendering rule per variant.
func TestRenderVariants(t *testing.T) {
	inspector := newInspector(10)

	text := resolveMessage("count {}").render([]any{7}, inspector)
	assert.Equal(t, "count 7", text)

	failure := resolveMessage(errors.New("boom")).render(nil, inspector)
	assert.Equal(t, "boom", failure)

	structured := resolveMessage(map[string]string{"k": "v"}).render(nil, inspector)
	assert.Contains(t, structured, "k")
	assert.Contains(t, structured, "v")
}

func TestEncodeLine(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)
	line := string(encodeLine(nil, ts, defaultTimeFormat, LevelInfo, "svc/main.go:42", "hello"))
	assert.Equal(t, "[3:04:05 PM] [INFO] [svc/main.go:42] hello\n", line)
}

func TestEncodeValues(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)
	inspector := newInspector(10)
	line := string(encodeValues(nil, ts, defaultTimeFormat, map[string]any{"some_value": "test"}, inspector))
	assert.Contains(t, line, "[3:04:05 PM] "+valuesMarker+" ")
	assert.Contains(t, line, "some_value")
	assert.Contains(t, line, "test")
}

// TestLevelToString pins the tags used in encoded lines.
func TestLevelToString(t *testing.T) {
	assert.Equal(t, "DEBUG", levelToString(LevelDebug))
	assert.Equal(t, "INFO", levelToString(LevelInfo))
	assert.Equal(t, "WARN", levelToString(LevelWarn))
	assert.Equal(t, "ERROR", levelToString(LevelError))
}

// TestLevelParse round-trips the string form.
func TestLevelParse(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		level, err := Level(s)
		assert.NoError(t, err)
		assert.Equal(t, s, map[int64]string{
			LevelDebug: "debug", LevelInfo: "info",
			LevelWarn: "warn", LevelError: "error",
		}[level])
	}

	_, err := Level("verbose")
	assert.Error(t, err)
}
