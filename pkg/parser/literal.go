package parser

import (
	"fmt"
	"strings"

	"github.com/cloudposse/treegen/pkg/dedent"
)

// literalDelimiter delimits multi-line literal blocks in JSON5 sources.
const literalDelimiter = '`'

// NormalizeLiterals scans raw text for backtick-delimited literal blocks
// and dedents each block's interior, so that a literal nested deep inside
// the document's visual indentation still yields left-aligned content.
// Everything outside a literal passes through unchanged. An unterminated
// literal runs to the end of the input; the closing delimiter is emitted
// either way.
func NormalizeLiterals(raw string) string {
	var out strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != literalDelimiter {
			out.WriteRune(runes[i])
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != literalDelimiter {
			j++
		}
		out.WriteRune(literalDelimiter)
		out.WriteString(dedent.Dedent(string(runes[i+1 : j])))
		out.WriteRune(literalDelimiter)
		i = j
	}
	return out.String()
}

// quoteLiterals rewrites every backtick literal as an escaped
// double-quoted string. JSON5 itself has no backtick syntax, so this is
// the last step before the text is handed to the JSON5 decoder.
func quoteLiterals(s string) string {
	var out strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != literalDelimiter {
			out.WriteRune(runes[i])
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != literalDelimiter {
			j++
		}
		out.WriteString(quoteString(string(runes[i+1 : j])))
		i = j
	}
	return out.String()
}

// quoteString escapes s as a double-quoted JSON string.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
