package ports

import "context"

// PasscodeStore holds the short-lived arrival passcodes that gate the start
// of work. A code is bound to one job, expires on its own, and can be
// redeemed at most once.
type PasscodeStore interface {
	// Issue stores the passcode for the job, replacing any previous one.
	Issue(ctx context.Context, jobID, code string) error
	// Redeem consumes the job's stored passcode and reports whether the
	// supplied code matched it. A job with no stored passcode never matches.
	Redeem(ctx context.Context, jobID, code string) (bool, error)
}
