package geom

import "strings"

// splitTopLevel splits a parenthesis-free-at-the-edges body on commas that are
// not nested inside parentheses, trimming whitespace around each group.
func splitTopLevel(body string) ([]string, error) {
	var groups []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, parseErrorf(body, "unbalanced ')' at offset %d", i)
			}
		case ',':
			if depth == 0 {
				groups = append(groups, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, parseErrorf(body, "unbalanced '('")
	}
	return append(groups, strings.TrimSpace(body[start:])), nil
}

// stripParens removes exactly one enclosing parenthesis pair.
func stripParens(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", parseErrorf(s, "expected parenthesized list")
	}
	return s[1 : len(s)-1], nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
