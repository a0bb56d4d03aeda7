package errors

import "errors"

// Failure kinds of a generator tick or an operator task attempt.
var (
	ErrDirectoryUnavailable = errors.New("application directory unavailable")
	ErrExplorerUnavailable  = errors.New("block explorer unavailable")
	ErrChainSubmission      = errors.New("chain submission failed")
	ErrSigning              = errors.New("signing failed")
)

// Task level errors that are not failures of an external dependency.
var (
	ErrInvalidBlockRange = errors.New("invalid block range")
	ErrInvalidTask       = errors.New("invalid task")
)

// IsRetryable reports whether a later attempt of the same task can succeed.
// Signing failures and malformed tasks are final.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrSigning), errors.Is(err, ErrInvalidTask), errors.Is(err, ErrInvalidBlockRange):
		return false
	case errors.Is(err, ErrDirectoryUnavailable),
		errors.Is(err, ErrExplorerUnavailable),
		errors.Is(err, ErrChainSubmission):
		return true
	default:
		return false
	}
}

// Kind returns a short label for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrDirectoryUnavailable):
		return "directory_unavailable"
	case errors.Is(err, ErrExplorerUnavailable):
		return "explorer_unavailable"
	case errors.Is(err, ErrChainSubmission):
		return "chain_submission"
	case errors.Is(err, ErrSigning):
		return "signing"
	case errors.Is(err, ErrInvalidBlockRange), errors.Is(err, ErrInvalidTask):
		return "invalid_task"
	default:
		return "unknown"
	}
}
