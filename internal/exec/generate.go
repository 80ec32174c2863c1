// Package exec implements the business logic behind the CLI commands.
package exec

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/cloudposse/treegen/pkg/filesystem"
	"github.com/cloudposse/treegen/pkg/filetype"
	"github.com/cloudposse/treegen/pkg/generator"
	"github.com/cloudposse/treegen/pkg/tree"
)

var (
	// ErrInputNotFound is returned when an input file does not exist.
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrInvalidFileMode is returned for --mode values that are not
	// octal permission strings.
	ErrInvalidFileMode = errors.New("invalid file mode; use an octal value like 0644 or 0o644")
)

// Options are the settings for a single generate run, populated from
// flags, environment variables and the optional config file.
type Options struct {
	// OutDir is the output root. Empty means the current working directory.
	OutDir string

	// DryRun previews the run without writing to disk.
	DryRun bool

	// Verbose prints one line per created file and directory.
	Verbose bool

	// Clean removes the output directory before generating.
	Clean bool

	// Mode is the octal permission string for created files.
	Mode string
}

// ExecuteGenerate parses every input file, merges the resulting trees
// under one synthetic root and materializes the result. Inputs are
// processed in argument order; when two inputs declare the same path,
// both stay in the merged tree and the one materialized last wins on
// disk.
func ExecuteGenerate(inputs []string, opts *Options) error {
	return executeGenerate(filesystem.NewOSFileSystem(), os.Stdout, inputs, opts)
}

func executeGenerate(fs filesystem.FileSystem, out io.Writer, inputs []string, opts *Options) error {
	outDir := opts.OutDir
	if outDir == "" {
		wd, err := fs.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
		outDir = wd
	}

	mode, err := ParseFileMode(opts.Mode)
	if err != nil {
		return err
	}

	// Dry-run never touches the filesystem, not even for the output
	// directory itself.
	if opts.Clean {
		if _, statErr := fs.Stat(outDir); statErr == nil {
			if opts.Verbose {
				fmt.Fprintf(out, "Cleaning existing directory: %s\n", outDir)
			}
			if !opts.DryRun {
				if err := fs.RemoveAll(outDir); err != nil {
					return errors.Wrapf(err, "failed to remove directory %q", outDir)
				}
			}
		}
	} else if !opts.DryRun {
		if err := fs.MkdirAll(outDir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %q", outDir)
		}
	}

	root := tree.NewRoot()
	for _, input := range inputs {
		if _, err := fs.Stat(input); err != nil {
			return errors.Wrapf(ErrInputNotFound, "%q", input)
		}
		parsed, err := filetype.ParseFileByExtension(fs.ReadFile, input)
		if err != nil {
			return err
		}
		log.Debug("parsed input", "file", input, "entries", len(parsed.Children))
		root.Merge(parsed)
	}

	gen := generator.New(fs, out)
	genOpts := &generator.Options{
		DryRun:   opts.DryRun,
		Verbose:  opts.Verbose,
		FileMode: mode,
	}
	if err := gen.Generate(outDir, root, genOpts); err != nil {
		return err
	}

	if opts.DryRun {
		fmt.Fprintln(out, color.GreenString("✅ Dry-run complete, nothing was written to disk."))
	} else {
		fmt.Fprintln(out, color.GreenString("✅ Successfully generated the file tree in '%s'!", outDir))
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "644", "0644"
// or "0o644".
func ParseFileMode(s string) (os.FileMode, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "0o")
	u, err := strconv.ParseUint(v, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFileMode, "%q", s)
	}
	return os.FileMode(u), nil
}
