// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error: bad args, an invalid task, an
	// unknown task reference, a missing import list.
	UserError = 1

	// AuthError indicates missing or rejected Google credentials.
	AuthError = 2

	// BackendError indicates a store, API or network failure.
	BackendError = 3
)
