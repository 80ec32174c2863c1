// Package dedent strips the common leading whitespace from a block of
// text. It is used to normalize multi-line file content embedded in
// structure definitions, so that content can be written at whatever
// visual indentation reads best in the source document.
package dedent

import "strings"

// Dedent removes leading and trailing blank lines from s, computes the
// minimum number of leading spaces across all non-blank lines, and
// strips that many leading spaces from every line. Lines shorter than
// the minimum are reduced to their trimmed form instead. Relative
// indentation between lines is preserved.
//
// Dedent is total: it never fails, and an input with no non-blank lines
// yields an empty string.
func Dedent(s string) string {
	lines := splitLines(s)

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		count := leadingSpaces(line)
		if minIndent < 0 || count < minIndent {
			minIndent = count
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	dedented := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) >= minIndent {
			dedented = append(dedented, line[minIndent:])
		} else {
			dedented = append(dedented, strings.TrimLeft(line, " \t"))
		}
	}
	return strings.Join(dedented, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func leadingSpaces(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		count++
	}
	return count
}
