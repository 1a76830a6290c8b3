package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/matzehuels/mres/pkg/errors"
)

// Exit codes returned by the mres binary.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitInterrupt = 130 // Standard shell convention for SIGINT
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupt
	default:
		return ExitFailure
	}
}

// PrintError writes err to w as a single styled line without its code prefix.
func PrintError(w io.Writer, err error) {
	newPrinter(w).errorf("%s", errors.UserMessage(err))
}
