package cli

// Exit codes for linesplice.
const (
	// ExitSuccess indicates the plan was applied, previewed, or declined.
	ExitSuccess = 0

	// ExitFailure indicates any error: bad input, bad plan, I/O failure, or
	// a target that changed while it was being processed.
	ExitFailure = 1
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
