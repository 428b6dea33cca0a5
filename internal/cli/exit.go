package cli

// Process exit codes. Per-target build failures propagate the child's own
// exit code instead.
const (
	ExitConfig = 1 // Project configuration could not be loaded or resolved.
	ExitUsage  = 2 // Command-line arguments did not parse.
	ExitNoNDK  = 3 // No NDK installation could be located.
)

// Carries a message and a process exit code out of command execution.
type ExitError struct {
	Code    int    // Exit code for the process.
	Message string // Human-readable explanation. May be empty if already logged.
}

func (e *ExitError) Error() string {
	return e.Message
}
