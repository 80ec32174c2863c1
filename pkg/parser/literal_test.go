package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no literals pass through",
			input:    `{ key: "value" }`,
			expected: `{ key: "value" }`,
		},
		{
			name:     "literal body is dedented",
			input:    "{ a: `\n      fn main() {\n          x\n      }\n  ` }",
			expected: "{ a: `fn main() {\n    x\n}` }",
		},
		{
			name:     "text outside literals is untouched",
			input:    "  {  a: `  x  `,\n  }",
			expected: "  {  a: `x  `,\n  }",
		},
		{
			name:     "multiple literals",
			input:    "` a`-` b`",
			expected: "`a`-`b`",
		},
		{
			name:     "unterminated literal gets a closing delimiter",
			input:    "x: `  body",
			expected: "x: `body`",
		},
		{
			name:     "empty literal",
			input:    "``",
			expected: "``",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLiterals(tt.input))
		})
	}
}

func TestQuoteLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "literal becomes a quoted string",
			input:    "{ a: `hello` }",
			expected: `{ a: "hello" }`,
		},
		{
			name:     "newlines and quotes are escaped",
			input:    "`say \"hi\"\nbye`",
			expected: `"say \"hi\"\nbye"`,
		},
		{
			name:     "backslashes and tabs are escaped",
			input:    "`a\\b\tc`",
			expected: `"a\\b\tc"`,
		},
		{
			name:     "text outside literals is untouched",
			input:    `{ a: "plain" }`,
			expected: `{ a: "plain" }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quoteLiterals(tt.input))
		})
	}
}
