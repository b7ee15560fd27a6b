package daylog

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// messageKind tags a level-method argument with its rendering rule.
// The variant is resolved once at the facade boundary; each kind has
// exactly one renderer.
type messageKind int

const (
	kindText messageKind = iota
	kindStructured
	kindFailure
)

// message is the resolved form of whatever the caller passed as the
// first argument of a level method.
type message struct {
	kind  messageKind
	text  string
	err   error
	value any
}

// resolveMessage classifies raw into a tagged variant.
func resolveMessage(raw any) message {
	switch v := raw.(type) {
	case nil:
		return message{kind: kindText, text: "<nil>"}
	case error:
		return message{kind: kindFailure, err: v}
	case string:
		return message{kind: kindText, text: v}
	}

	switch reflect.TypeOf(raw).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr:
		return message{kind: kindStructured, value: raw}
	default:
		return message{kind: kindText, text: fmt.Sprint(raw)}
	}
}

// render produces the message text for one variant. Text messages get
// placeholder substitution, structured values a depth-bounded inspection
// dump, and failures their expanded representation including any wrapped
// detail the error formats into %+v.
func (m message) render(args []any, inspector *spew.ConfigState) string {
	switch m.kind {
	case kindFailure:
		return strings.TrimRight(fmt.Sprintf("%+v", m.err), "\n")
	case kindStructured:
		return strings.TrimRight(inspector.Sdump(m.value), "\n")
	default:
		return substitute(m.text, args)
	}
}

// substitute replaces the first occurrence of "{}" with each trailing
// argument, left to right. Arguments without a remaining placeholder are
// appended space-separated.
func substitute(s string, args []any) string {
	for _, arg := range args {
		rendered := fmt.Sprint(arg)
		if idx := strings.Index(s, "{}"); idx >= 0 {
			s = s[:idx] + rendered + s[idx+2:]
		} else {
			s = s + " " + rendered
		}
	}
	return s
}

// newInspector builds the spew dumper used for structured messages and
// the values dump: depth-bounded, sorted keys, no pointer noise.
func newInspector(maxDepth int) *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                maxDepth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}

// encodeLine builds one plain-text file line:
// [h:mm:ss AM] [LEVEL] [caller] message\n
// Multi-line messages stay one file line per call; embedded newlines are
// preserved as-is since the file sink is read by humans, not parsers.
func encodeLine(buf []byte, ts time.Time, timeFormat string, level int64, tag, msg string) []byte {
	buf = append(buf, '[')
	buf = ts.AppendFormat(buf, timeFormat)
	buf = append(buf, "] ["...)
	buf = append(buf, levelToString(level)...)
	buf = append(buf, "] ["...)
	buf = append(buf, tag...)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}

// encodeValues builds the values-dump line that follows an error line:
// [h:mm:ss AM] ↦ <inspected values>\n
func encodeValues(buf []byte, ts time.Time, timeFormat string, values map[string]any, inspector *spew.ConfigState) []byte {
	buf = append(buf, '[')
	buf = ts.AppendFormat(buf, timeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, valuesMarker...)
	buf = append(buf, ' ')
	buf = append(buf, inspector.Sprintf("%+v", values)...)
	buf = append(buf, '\n')
	return buf
}
