package sessionservice

import (
	"fmt"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// Domain errors for the session service. These are normal business outcomes
// surfaced to the caller as-is, never retried internally.
var (
	// ErrLaneNotFound indicates the referenced lane does not exist.
	ErrLaneNotFound = fmt.Errorf("%w: lane does not exist", faults.ErrNotFound)

	// ErrSessionNotFound indicates the referenced session does not exist.
	ErrSessionNotFound = fmt.Errorf("%w: session not found", faults.ErrNotFound)

	// ErrSessionAlreadyEnded indicates End was called on a closed session.
	ErrSessionAlreadyEnded = fmt.Errorf("%w: session already ended", faults.ErrInvalidState)
)
