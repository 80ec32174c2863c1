// Package generator materializes a canonical tree on a filesystem, or
// simulates the materialization without writing anything.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/cloudposse/treegen/pkg/filesystem"
	"github.com/cloudposse/treegen/pkg/tree"
)

// dirPerm is the permission for created directories. The configurable
// mode applies to files only.
const dirPerm = 0o755

// Options control a single materialization run.
type Options struct {
	// DryRun simulates the run: the traversal and verbose output are
	// identical to a real run, but nothing touches the filesystem.
	DryRun bool

	// Verbose emits one line per created file and directory.
	Verbose bool

	// FileMode is applied to every created file on platforms with a
	// permission-bit model.
	FileMode os.FileMode
}

// Generator walks canonical trees and issues filesystem operations.
type Generator struct {
	fs  filesystem.FileSystem
	out io.Writer
}

// New creates a Generator writing verbose output to out.
func New(fs filesystem.FileSystem, out io.Writer) *Generator {
	return &Generator{fs: fs, out: out}
}

// Generate realizes node beneath baseDir with a single depth-first
// traversal. The synthetic root (empty name) maps to baseDir itself.
// Directory-creation and file-write failures abort the run; the
// preemptive parent creation ahead of a file write is best-effort.
func (g *Generator) Generate(baseDir string, node *tree.Node, opts *Options) error {
	path := baseDir
	if node.Name != "" {
		path = filepath.Join(baseDir, node.Name)
	}
	if node.IsDir() {
		return g.generateDir(path, node, opts)
	}
	return g.generateFile(path, node, opts)
}

func (g *Generator) generateDir(path string, node *tree.Node, opts *Options) error {
	if opts.DryRun {
		if opts.Verbose {
			fmt.Fprintf(g.out, "[Dry-Run] Create directory: %s\n", path)
		}
	} else {
		if opts.Verbose {
			fmt.Fprintf(g.out, "Create directory: %s\n", path)
		}
		if err := g.fs.MkdirAll(path, dirPerm); err != nil {
			return errors.Wrapf(err, "failed to create directory %q", path)
		}
	}

	for _, child := range node.Children {
		if err := g.Generate(path, child, opts); err != nil {
			return errors.Wrapf(err, "failed under directory %q", path)
		}
	}
	return nil
}

func (g *Generator) generateFile(path string, node *tree.Node, opts *Options) error {
	if parent := filepath.Dir(path); parent != "" {
		if opts.DryRun {
			if opts.Verbose {
				fmt.Fprintf(g.out, "[Dry-Run] Ensure parent dirs for: %s\n", path)
			}
		} else {
			// Best effort; a real problem surfaces on the write below.
			_ = g.fs.MkdirAll(parent, dirPerm)
		}
	}

	if opts.DryRun {
		if opts.Verbose {
			fmt.Fprintf(g.out, "[Dry-Run] Create file: %s\n", path)
		}
		return nil
	}

	if opts.Verbose {
		fmt.Fprintf(g.out, "Create file: %s\n", path)
	}
	var data []byte
	if node.Content != nil {
		data = []byte(*node.Content)
	}
	if err := g.fs.WriteFile(path, data, opts.FileMode); err != nil {
		return errors.Wrapf(err, "failed to write file %q", path)
	}
	if runtime.GOOS != "windows" {
		if err := g.fs.Chmod(path, opts.FileMode); err != nil {
			return errors.Wrapf(err, "failed to set permissions on %q", path)
		}
	}
	return nil
}
