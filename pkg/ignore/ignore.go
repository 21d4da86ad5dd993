// Package ignore implements the glob pattern matching used to exclude files
// and directories from collection.
//
// Patterns follow shell-glob semantics: '*' matches any run of characters
// within one path segment, '?' matches a single character, and '[...]' /
// '[!...]' match character classes. In patterns that contain a '/', '*'
// crosses segment boundaries instead. Matching is case-sensitive. A pattern
// matches a path when its glob matches either the path's base name or its
// full slash-separated relative path, so "*.log" excludes log files anywhere
// in the tree while "build/*" excludes everything below a build directory.
// There is no negation; any matching pattern excludes the candidate.
//
// Each pattern is compiled once into a regular expression when the rule set
// is built and evaluated as a pure function per candidate afterwards.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"
)

// ErrInvalidPattern indicates a pattern that cannot be compiled, such as a
// reversed character-class range.
var ErrInvalidPattern = errors.New("invalid ignore pattern")

// Pattern is one compiled glob pattern.
type Pattern struct {
	re *regexp.Regexp

	// Raw is the original pattern text as it appeared in the source.
	Raw string
	// Line is the 1-based line number the pattern was read from.
	Line int
}

// RuleSet holds the ordered compiled patterns of one ignore file. Order does
// not change the outcome: any match excludes.
type RuleSet struct {
	patterns []*Pattern
}

// Load reads an ignore file and compiles its patterns.
func Load(filePath string) (*RuleSet, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return Compile(strings.Split(string(content), "\n"))
}

// Compile builds a RuleSet from raw ignore-file lines. Lines are trimmed of
// surrounding whitespace; empty lines and lines starting with '#' are
// skipped.
func Compile(lines []string) (*RuleSet, error) {
	rs := &RuleSet{}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		re, err := regexp.Compile(translate(trimmed))
		if err != nil {
			return nil, fmt.Errorf("%w %q (line %d): %v", ErrInvalidPattern, trimmed, i+1, err)
		}

		rs.patterns = append(rs.patterns, &Pattern{
			re:   re,
			Raw:  trimmed,
			Line: i + 1,
		})
	}
	return rs, nil
}

// Len reports the number of compiled patterns.
func (rs *RuleSet) Len() int {
	return len(rs.patterns)
}

// Matches reports whether the slash-separated relative path is excluded by
// any pattern.
func (rs *RuleSet) Matches(rel string) bool {
	matched, _ := rs.Match(rel)
	return matched
}

// Match reports whether the slash-separated relative path is excluded, and
// returns the first pattern that matched it.
func (rs *RuleSet) Match(rel string) (bool, *Pattern) {
	base := path.Base(rel)
	for _, p := range rs.patterns {
		if p.re.MatchString(base) || p.re.MatchString(rel) {
			return true, p
		}
	}
	return false, nil
}

// translate converts a glob pattern into an anchored regular expression.
// In a bare name pattern '*' stops at path separators; once the pattern
// names a path of its own, '*' crosses them, so "build/*" covers the whole
// subtree.
func translate(pat string) string {
	star := `[^/]*`
	if strings.ContainsRune(pat, '/') {
		star = `.*`
	}

	var b strings.Builder
	b.WriteString("(?s)^")

	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch c {
		case '*':
			b.WriteString(star)
		case '?':
			b.WriteByte('.')
		case '[':
			end := charClassEnd(pat, i)
			if end < 0 {
				// Unterminated class matches a literal '['.
				b.WriteString(`\[`)
				continue
			}
			writeCharClass(pat[i+1:end], &b)
			i = end
		default:
			b.WriteString(escapeByte(c))
		}
	}

	b.WriteByte('$')
	return b.String()
}

// charClassEnd locates the closing bracket of a glob character class, or
// returns -1 when the class never closes. A ']' directly after the opening
// '[' (or after a leading '!' or '^') is part of the class.
func charClassEnd(pat string, start int) int {
	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}
	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}
	return -1
}

// writeCharClass emits one glob character class as a regex class. '[!...]'
// negates; a leading '^' or '[' is literal and escaped.
func writeCharClass(stuff string, b *strings.Builder) {
	b.WriteByte('[')
	if stuff != "" {
		switch stuff[0] {
		case '!':
			b.WriteByte('^')
			stuff = stuff[1:]
		case '^', '[':
			b.WriteByte('\\')
		}
	}
	for i := 0; i < len(stuff); i++ {
		if stuff[i] == '\\' {
			b.WriteString(`\\`)
			continue
		}
		b.WriteByte(stuff[i])
	}
	b.WriteByte(']')
}

// escapeByte escapes one byte for use in regexp source.
func escapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
