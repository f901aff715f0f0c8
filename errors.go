package jotson

import (
	"fmt"
	"strings"
)

// errorInfo is one recorded diagnostic: the token it points at, the
// message, and an optional secondary location (-1 when absent).
type errorInfo struct {
	token   token
	message string
	extra   int
}

// StructuredError describes one diagnostic as byte offsets into the
// parsed document plus its message.
type StructuredError struct {
	OffsetStart int
	OffsetLimit int
	Message     string
}

func (r *Reader) addError(message string) {
	r.addErrorExtra(message, -1)
}

func (r *Reader) addErrorExtra(message string, extra int) {
	r.errors = append(r.errors, errorInfo{token: r.token, message: message, extra: extra})
}

// Good reports whether the last parse recorded no diagnostics.
func (r *Reader) Good() bool {
	return len(r.errors) == 0
}

// locationLineAndColumn resolves a byte offset to a 1-based line and
// column.  CRLF counts as a single line terminator; lone CR and LF each
// terminate a line.
func (r *Reader) locationLineAndColumn(offset int) (line, column int) {
	current := 0
	lastLineStart := 0
	for current < offset && current < len(r.doc) {
		c := r.doc[current]
		current++
		if c == '\r' {
			if current < len(r.doc) && r.doc[current] == '\n' {
				current++
			}
			lastLineStart = current
			line++
		} else if c == '\n' {
			lastLineStart = current
			line++
		}
	}
	return line + 1, offset - lastLineStart + 1
}

func (r *Reader) formatLocation(offset int) string {
	line, column := r.locationLineAndColumn(offset)
	return fmt.Sprintf("Line %d, Column %d", line, column)
}

// FormattedErrorMessages renders every recorded diagnostic with its
// resolved source location, one "* Line L, Column C" block per error.
func (r *Reader) FormattedErrorMessages() string {
	var sb strings.Builder
	for _, e := range r.errors {
		sb.WriteString("* " + r.formatLocation(e.token.start) + "\n")
		sb.WriteString("  " + e.message + "\n")
		if e.extra >= 0 {
			sb.WriteString("See " + r.formatLocation(e.extra) + " for detail.\n")
		}
	}
	return sb.String()
}

// StructuredErrors returns the recorded diagnostics in insertion order.
func (r *Reader) StructuredErrors() []StructuredError {
	all := make([]StructuredError, 0, len(r.errors))
	for _, e := range r.errors {
		all = append(all, StructuredError{
			OffsetStart: e.token.start,
			OffsetLimit: e.token.limit,
			Message:     e.message,
		})
	}
	return all
}

// PushError records a diagnostic against an already-parsed value, for
// callers that discover semantic problems after the parse.  It reports
// whether the value's offsets lie within the parsed document.
func (r *Reader) PushError(value *Value, message string) bool {
	length := len(r.doc)
	if value.OffsetStart() < 0 || value.OffsetStart() > length ||
		value.OffsetLimit() > length {
		return false
	}
	tok := token{typ: tokenError, start: value.OffsetStart(), limit: value.OffsetLimit()}
	r.errors = append(r.errors, errorInfo{token: tok, message: message, extra: -1})
	return true
}

// PushErrorExtra is PushError with a secondary value whose start offset
// is reported as the detail location.
func (r *Reader) PushErrorExtra(value *Value, message string, extra *Value) bool {
	length := len(r.doc)
	if value.OffsetStart() < 0 || value.OffsetStart() > length ||
		value.OffsetLimit() > length || extra.OffsetLimit() > length {
		return false
	}
	tok := token{typ: tokenError, start: value.OffsetStart(), limit: value.OffsetLimit()}
	r.errors = append(r.errors, errorInfo{token: tok, message: message, extra: extra.OffsetStart()})
	return true
}
