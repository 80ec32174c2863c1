// Package filetype dispatches input files to the correct parser based
// on their file extension. The format is determined from the extension,
// never from the content.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cloudposse/treegen/pkg/parser"
	"github.com/cloudposse/treegen/pkg/tree"
)

// ErrUnsupportedExtension is returned for files whose extension is not
// among the recognized input formats.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// supportedExtensions maps recognized extensions to their parsers.
// Supported extensions:
// - .md → Markdown tree drawing
// - .yaml, .yml → YAML
// - .json → JSON
// - .toml → TOML
// - .json5 → JSON5
var supportedExtensions = map[string]func([]byte) (*tree.Node, error){
	".md": func(data []byte) (*tree.Node, error) {
		return parser.ParseMarkdown(string(data))
	},
	".yaml":  parser.FromYAML,
	".yml":   parser.FromYAML,
	".json":  parser.FromJSON,
	".toml":  parser.FromTOML,
	".json5": parser.FromJSON5,
}

// ParseFileByExtension parses a structure definition file based on its
// file extension. The extension is validated before the file is read, so
// an unsupported extension fails before any I/O or parsing happens.
func ParseFileByExtension(readFileFunc func(string) ([]byte, error), filename string) (*tree.Node, error) {
	ext := GetFileExtension(filename)
	parse, ok := supportedExtensions[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedExtension, "%q", filename)
	}

	data, err := readFileFunc(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", filename)
	}

	node, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", filename)
	}
	return node, nil
}

// IsSupported reports whether filename has a recognized extension.
func IsSupported(filename string) bool {
	_, ok := supportedExtensions[GetFileExtension(filename)]
	return ok
}

// GetFileExtension returns the lowercase file extension including the dot.
func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
