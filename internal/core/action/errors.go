package action

import "errors"

var (
	// ErrCursorOutOfRange means the buffer reported a cursor or anchor that
	// does not exist in its text. The action is aborted without side effects.
	ErrCursorOutOfRange = errors.New("cursor out of range")

	// ErrHistoryMismatch means a history event no longer matches the buffer
	// content it is supposed to replay against.
	ErrHistoryMismatch = errors.New("history event does not match buffer")

	// ErrUnknownIntent is returned for an intent kind the engine doesn't handle.
	ErrUnknownIntent = errors.New("unknown intent")
)
