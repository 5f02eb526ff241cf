package teamservice

import (
	"fmt"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// Domain errors for the team service.
var (
	// ErrGameNotFound indicates the referenced game does not exist.
	ErrGameNotFound = fmt.Errorf("%w: game not found", faults.ErrNotFound)

	// ErrGameEnded indicates the game is already closed.
	ErrGameEnded = fmt.Errorf("%w: cannot add teams to an ended game", faults.ErrInvalidState)

	// ErrTeamsAlreadyExist indicates the game already received its pair.
	ErrTeamsAlreadyExist = fmt.Errorf("%w: teams already exist for this game", faults.ErrConflict)

	// ErrSameColour indicates both teams were given the same colour.
	ErrSameColour = fmt.Errorf("%w: team colours must be different", faults.ErrValidation)

	// ErrBlankTeamField indicates a required team name or colour is blank.
	ErrBlankTeamField = fmt.Errorf("%w: team names and colours must not be blank", faults.ErrValidation)

	// ErrAmbiguousFirstRound indicates both teams resolved as starting first.
	ErrAmbiguousFirstRound = fmt.Errorf("%w: only one team can start first", faults.ErrValidation)

	// ErrTeamNotFound indicates the referenced team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: team not found", faults.ErrNotFound)
)
