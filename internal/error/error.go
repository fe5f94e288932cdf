package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAdvanceRoundFailed = "advance round operation failed"
	ConstErrCreateGameFailed   = "create game operation failed"
)

// Error kinds. Constructors below wrap them so callers
// can match with errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrGameNotFound      = errors.New("game not found")
	ErrSessionNotFound   = errors.New("session not found")
)

func ErrCoordinateOutOfGrid(col byte, row int) error {
	return fmt.Errorf("%w: cell at col %q and row %d does not exist", ErrInvalidCoordinate, col, row)
}

func ErrColumnNotAllowed(col byte) error {
	return fmt.Errorf("%w: col %q must be one of A..H", ErrInvalidCoordinate, col)
}

func ErrRowNotAllowed(row int) error {
	return fmt.Errorf("%w: row %d must be one of 1..8", ErrInvalidCoordinate, row)
}

func ErrGameIsOver(winner string) error {
	return fmt.Errorf("%w, winner: %s", ErrGameAlreadyOver, winner)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotFound, gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrSessionNotExists(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotFound, sessionId)
}

func ErrNoGameInSession(sessionId string) error {
	return fmt.Errorf("no game has been created in this session yet, id: %s", sessionId)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrEnvNotSet(key string) error {
	return fmt.Errorf("environment variable is not set:\t%s", key)
}
