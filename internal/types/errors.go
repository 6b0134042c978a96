package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Deck and hand errors
	ErrEmptyDeck    ErrorCode = "EMPTY_DECK"
	ErrCardNotFound ErrorCode = "CARD_NOT_FOUND"

	// Input validation errors, recovered by asking again
	ErrInvalidTarget ErrorCode = "INVALID_TARGET"
	ErrInvalidRank   ErrorCode = "INVALID_RANK"

	// Table errors
	ErrInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	ErrPlayerNotFound   ErrorCode = "PLAYER_NOT_FOUND"
	ErrDuplicatePlayer  ErrorCode = "DUPLICATE_PLAYER"
	ErrTooManyPlayers   ErrorCode = "TOO_MANY_PLAYERS"
	ErrNotEnoughPlayers ErrorCode = "NOT_ENOUGH_PLAYERS"

	// Match errors
	ErrBookAlreadyClaimed ErrorCode = "BOOK_ALREADY_CLAIMED"
	ErrGameAlreadyEnded   ErrorCode = "GAME_ALREADY_ENDED"
	ErrTurnLimit          ErrorCode = "TURN_LIMIT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a GameError with the same code, so package
// level sentinels work with errors.Is regardless of message.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
