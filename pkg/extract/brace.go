package extract

import "strings"

// dynamicPlaceholder replaces template-literal interpolations so that an
// expression is never mistaken for a concrete value downstream.
const dynamicPlaceholder = "(dynamic)"

// ScanBraceBlock walks src starting at the index just after an opening brace
// and returns the substring up to (not including) the matching closing brace.
//
// The walk tracks string and template-literal state so braces inside quotes
// never miscount nesting; `${...}` interpolations re-enter code mode and
// nest properly. Returns ok=false when the brace never balances.
func ScanBraceBlock(src string, start int) (string, bool) {
	if start < 0 || start > len(src) {
		return "", false
	}

	depth := 1
	var quote byte // active ' or " quote, 0 when outside
	escaped := false

	// templateStack records, for each template literal currently open, the
	// brace depth at which its active interpolation began (-1 when we are in
	// plain template text). The top of the stack is the innermost template.
	var templateStack []int
	inTemplateText := func() bool {
		return len(templateStack) > 0 && templateStack[len(templateStack)-1] == -1
	}

	for i := start; i < len(src); i++ {
		c := src[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}

		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}

		if inTemplateText() {
			switch {
			case c == '`':
				templateStack = templateStack[:len(templateStack)-1]
			case c == '$' && i+1 < len(src) && src[i+1] == '{':
				depth++
				templateStack[len(templateStack)-1] = depth
				i++
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
		case '`':
			templateStack = append(templateStack, -1)
		case '{':
			depth++
		case '}':
			// Closing the brace that opened the innermost interpolation
			// drops us back into template text.
			if n := len(templateStack); n > 0 && templateStack[n-1] == depth {
				templateStack[n-1] = -1
				depth--
				continue
			}
			depth--
			if depth == 0 {
				return src[start:i], true
			}
		}
	}

	return "", false
}

// CollapseInterpolations replaces every balanced `${...}` in s with the
// dynamic placeholder. Unbalanced interpolations are left untouched.
func CollapseInterpolations(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		idx := strings.Index(s[i:], "${")
		if idx < 0 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+idx])
		inner, ok := ScanBraceBlock(s, i+idx+2)
		if !ok {
			b.WriteString(s[i+idx:])
			break
		}
		b.WriteString(dynamicPlaceholder)
		i += idx + 2 + len(inner) + 1
	}
	return b.String()
}

// isDynamic reports whether a value still contains (or collapsed into)
// interpolated expression text.
func isDynamic(v string) bool {
	return strings.Contains(v, dynamicPlaceholder) || strings.Contains(v, "${")
}
