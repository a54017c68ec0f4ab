package exitcode

import (
	"os"

	"github.com/webcarrot/tsemit/internal/errors"
)

// Exit statuses of the command line tool
const (
	Success = 0

	// Something was reported and at least one output was not written
	OutputsSkipped = 1

	// Something was reported but every output was still written
	OutputsGenerated = 2

	InvalidArguments = 3
)

// Coder is an interface to control what value Get returns.
type Coder interface {
	error
	ExitCode() int
}

// Get gets the exit code associated with an error. Cases:
//
//	nil => 0
//	errors implementing Coder => value returned by ExitCode
//	all other errors => 1
func Get(err error) int {
	if err == nil {
		return Success
	}

	if coder := Coder(nil); errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return OutputsSkipped
}

// Set wraps an error in a Coder, setting its error code.
func Set(err error, code int) error {
	if err == nil {
		return nil
	}
	return coder{err, code}
}

var _ Coder = coder{}

type coder struct {
	error
	int
}

func (co coder) ExitCode() int {
	return co.int
}

func (co coder) Unwrap() error {
	return co.error
}

// Exit is a convenience function that calls os.Exit
// with the exit code associated with err.
func Exit(err error) {
	os.Exit(Get(err))
}
