package scoreservice

import (
	"fmt"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// Domain errors for the score service.
var (
	// ErrNegativeValue indicates the submitted score value is below zero.
	ErrNegativeValue = fmt.Errorf("%w: score cannot be negative", faults.ErrValidation)

	// ErrRoundNotFound indicates the referenced round does not exist.
	ErrRoundNotFound = fmt.Errorf("%w: round not found", faults.ErrNotFound)

	// ErrTeamNotFound indicates the referenced team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: team not found", faults.ErrNotFound)

	// ErrTeamWrongGame indicates the team belongs to a different game than
	// the round.
	ErrTeamWrongGame = fmt.Errorf("%w: team does not belong to the round's game", faults.ErrInvalidState)
)
