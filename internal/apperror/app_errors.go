package apperror

import "errors"

var (
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrNewGameRejected      = errors.New("new game request rejected")
	ErrTransientFetch       = errors.New("could not fetch game state")
	ErrTooManyFetchFailures = errors.New("too many consecutive game state fetch failures")
	ErrMalformedGame        = errors.New("malformed game state")
	ErrMoveRejected         = errors.New("move rejected")
	ErrInvalidColumn        = errors.New("invalid column index")
)
