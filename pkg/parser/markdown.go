package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/cloudposse/treegen/pkg/tree"
)

// ErrInvalidTreeLine is returned when a line of a Markdown tree drawing
// does not match the expected drawing grammar.
var ErrInvalidTreeLine = errors.New("line does not match the Markdown tree format")

// treeLineRe matches one line of a tree drawing: an indent run of
// 4-character blocks (either four spaces or a vertical connector padded
// to four), an optional branch connector, and the node name.
var treeLineRe = regexp.MustCompile(`^(?P<indent>(│   |    )*)(?P<prefix>├── |└── )?(?P<name>.+)$`)

// indentUnit is the character width of one indent block.
const indentUnit = 4

// connectorGlyphs are the box-drawing characters used by tree drawings.
// A name that still begins with one of these after matching means the
// line had stray or misaligned connectors and is rejected. Box-drawing
// runes elsewhere in a name are ordinary filename characters.
const connectorGlyphs = "│├└─"

// ParseMarkdown converts a tree drawing such as
//
//	project/
//	├── src/
//	│   ├── main.rs
//	│   └── lib.rs
//	├── Cargo.toml
//	└── README.md
//
// into a canonical tree. Hierarchy is inferred purely from indentation
// and connector glyphs: each indent block is one level, and a line with
// a branch connector sits one level below a connector-less line at the
// same indent. A trailing slash marks a directory; the slash is kept in
// the node name. Colons are replaced with underscores before parsing so
// that names stay portable as filesystem paths.
func ParseMarkdown(text string) (*tree.Node, error) {
	root := tree.NewRoot()

	type frame struct {
		level int
		node  *tree.Node
	}
	stack := []frame{{level: 0, node: root}}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.ReplaceAll(line, ":", "_")

		m := treeLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Wrapf(ErrInvalidTreeLine, "line %q", line)
		}
		indent, prefix := m[1], m[3]
		name := strings.TrimSpace(m[4])
		if r, _ := utf8.DecodeRuneInString(name); strings.ContainsRune(connectorGlyphs, r) {
			return nil, errors.Wrapf(ErrInvalidTreeLine, "line %q", line)
		}

		indentBlocks := utf8.RuneCountInString(indent) / indentUnit
		level := indentBlocks + 1
		if prefix != "" {
			level = indentBlocks + 2
		}

		var node *tree.Node
		if strings.HasSuffix(name, "/") {
			node = tree.NewDir(name)
		} else {
			node = tree.NewFile(name, nil)
		}

		// Unwind to the nearest ancestor with a strictly smaller level.
		for stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)

		// Only directories can receive children from deeper lines.
		if node.IsDir() {
			stack = append(stack, frame{level: level, node: node})
		}
	}

	return root, nil
}
