package game

import "errors"

// Error taxonomy surfaced at the API boundary. Everything else in the core
// degrades to a deterministic fallback instead of failing the request.
var (
	// ErrSessionNotFound is returned for an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionFinished is returned when a turn is submitted against a
	// session whose final turn has already been processed.
	ErrSessionFinished = errors.New("game already finished")

	// ErrInvalidProfile is returned when a start request carries a player
	// profile that cannot be played (empty name, non-positive age).
	ErrInvalidProfile = errors.New("invalid player profile")

	// ErrInvalidChoice is returned when the submitted choice is not one of
	// the letters A through E.
	ErrInvalidChoice = errors.New("choice must be one of A-E")
)
