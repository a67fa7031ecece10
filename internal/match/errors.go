package match

import "errors"

// Bundle statuses.
const (
	StatusSuccess   = "success"
	StatusNoMatches = "no_matches"
)

// Defaults applied when the request or config leaves them unset.
const (
	DefaultTopN     = 10
	DefaultMinScore = 40.0
	DefaultMaxPool  = 100
)

// Error codes returned in API error bodies.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeProfileFailed  = "profile_failed"
	ErrCodeMatchFailed    = "match_failed"
)

var (
	ErrNoInput       = errors.New("match: no student input provided")
	ErrInvalidWeight = errors.New("match: invalid factor weights")
)
