package geom

import "fmt"

// ParseError reports malformed WKT or EWKB input. Input holds the offending
// fragment (or a hex dump for binary input).
type ParseError struct {
	Input string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("geom: %s", e.Msg)
	if e.Input != "" {
		s += fmt.Sprintf(" in %q", truncate(e.Input, 64))
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexError reports a point or child index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("geom: index %d on empty geometry", e.Index)
	}
	return fmt.Sprintf("geom: index %d out of range [0, %d)", e.Index, e.Len)
}

// EncodeError reports a geometry that cannot be serialized.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string { return "geom: encode: " + e.Msg }

func parseErrorf(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Msg: fmt.Sprintf(format, args...)}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
