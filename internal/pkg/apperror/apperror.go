package apperror

import "errors"

// Sentinel errors for the pipeline and approval engines. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrPermissionDenied: the actor lacks write rights for the target
	// job/pipeline (e.g. a hiring manager attempting a move).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition: a structurally impossible request, such as
	// moving a candidate out of the terminal Hired stage or re-recording
	// a decided approval step.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotFound: a referenced job, candidate or offer does not exist in
	// the current snapshot.
	ErrNotFound = errors.New("not found")

	// ErrApprovalIdentityMismatch: the acting identity does not match the
	// step's designated approver.
	ErrApprovalIdentityMismatch = errors.New("approval identity mismatch")
)
