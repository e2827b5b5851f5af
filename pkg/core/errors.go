package core

import "errors"

// Common errors.
var (
	// ErrNoPendingCard is returned when an answer is supplied but the
	// latest card is not waiting for one.
	ErrNoPendingCard = errors.New("conversation has no pending card")

	// ErrUnansweredCard is returned when a follow-up question is asked
	// while the latest card still has no answer.
	ErrUnansweredCard = errors.New("latest card has no answer yet")
)
