package gameservice

import (
	"fmt"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// Domain errors for the game service.
var (
	// ErrSessionNotFound indicates the referenced session does not exist.
	ErrSessionNotFound = fmt.Errorf("%w: session not found", faults.ErrNotFound)

	// ErrSessionEnded indicates the session is already closed.
	ErrSessionEnded = fmt.Errorf("%w: cannot start a game in an ended session", faults.ErrInvalidState)

	// ErrGameNotFound indicates the referenced game does not exist.
	ErrGameNotFound = fmt.Errorf("%w: game not found", faults.ErrNotFound)

	// ErrGameAlreadyEnded indicates End was called on a closed game.
	ErrGameAlreadyEnded = fmt.Errorf("%w: game already ended", faults.ErrInvalidState)
)
