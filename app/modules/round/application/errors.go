package roundservice

import (
	"fmt"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// Domain errors for the round service.
var (
	// ErrGameNotFound indicates the referenced game does not exist.
	ErrGameNotFound = fmt.Errorf("%w: game not found", faults.ErrNotFound)

	// ErrGameAlreadyEnded indicates the game is already closed.
	ErrGameAlreadyEnded = fmt.Errorf("%w: game already ended", faults.ErrInvalidState)

	// ErrTeamNotFound indicates the starting team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: starting team not found", faults.ErrNotFound)

	// ErrTeamWrongGame indicates the starting team belongs to another game.
	ErrTeamWrongGame = fmt.Errorf("%w: starting team does not belong to this game", faults.ErrInvalidState)

	// ErrDuplicateRoundNumber indicates the game already has this round number.
	ErrDuplicateRoundNumber = fmt.Errorf("%w: round number already exists for this game", faults.ErrConflict)

	// ErrRoundNotFound indicates the referenced round does not exist.
	ErrRoundNotFound = fmt.Errorf("%w: round not found", faults.ErrNotFound)

	// ErrRoundAlreadyEnded indicates End was called on a closed round.
	ErrRoundAlreadyEnded = fmt.Errorf("%w: round already ended", faults.ErrInvalidState)
)
