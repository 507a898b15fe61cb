package enums

import (
	"fmt"
	"io"
)

// Fprint writes the string associated with v to w, returning the byte
// count from the write. When v has no association, nothing is written and
// the *OutOfRangeError is returned.
func Fprint[E Enum](w io.Writer, v E) (int, error) {
	s, err := Label(v)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, s)
}

// Fscan reads one whitespace-delimited token from r and parses it as a
// value of E. Tokens follow fmt.Fscan semantics: leading whitespace,
// newlines included, is skipped and reading stops at the token's end, so
// consecutive calls consume consecutive tokens. Read failures are
// returned as is (io.EOF when the stream is exhausted); a token no value
// of E is associated with fails with an *UnknownLabelError.
func Fscan[E Enum](r io.Reader) (E, error) {
	var s string
	if _, err := fmt.Fscan(r, &s); err != nil {
		var zero E
		return zero, err
	}
	return Parse[E](s)
}
