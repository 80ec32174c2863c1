// Package errors provides error-handling helpers shared across the CLI:
// exit-code plumbing and fatal-error reporting. Sentinel errors live in
// the packages that produce them.
package errors

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndExit logs the error and terminates the process with a
// non-zero exit code. It is a no-op for nil errors.
func CheckErrorAndExit(err error) {
	if err == nil {
		return
	}
	log.Error(err.Error())
	OsExit(GetExitCode(err))
}

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error. The code can be
// retrieved later with GetExitCode.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode returns the exit code attached to err, or 1 when none is.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder *exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
