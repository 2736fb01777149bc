package domain

import "errors"

var (
	// ErrUnknownAction means the requested action segment is not a composed action
	ErrUnknownAction = errors.New("unknown order action")

	// ErrInvalidRating means the review rating is not an integer between 1 and 5
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrInvalidExchangeProduct means the exchange target product id was
	// supplied but does not parse as a positive integer
	ErrInvalidExchangeProduct = errors.New("exchange product id must be a positive number")

	// ErrNoOpenComposer means a submission arrived with no matching composer open
	ErrNoOpenComposer = errors.New("no composer is open for this submission")

	// ErrSubmissionInFlight guards against double submission of the same action
	ErrSubmissionInFlight = errors.New("a submission for this order is already in progress")
)
