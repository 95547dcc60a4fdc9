package errors

import "errors"

var (
	ErrUnsupportedAPIVersion = errors.New("unsupported api version")
	ErrBotNotFound           = errors.New("bot not found")
	ErrBotUnavailable        = errors.New("bot could not choose a move")
	ErrGameNotFound          = errors.New("game not found")
	ErrGameFinished          = errors.New("game is already finished, no more moves allowed")
	ErrUserExists            = errors.New("username already exists")
	ErrEmptyUsername         = errors.New("username is required")
	ErrStorageDisabled       = errors.New("storage is not configured")
	ErrInternal              = errors.New("internal error")
)
