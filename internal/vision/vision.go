package vision

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the external extraction model that turns free text or
// document text into a raw student profile.
type Client interface {
	ExtractProfile(ctx context.Context, input ExtractInput) (json.RawMessage, error)
}

// ExtractInput captures the inputs for profile extraction. Text is the
// parent's free-form description; DocumentText is text pulled from an
// uploaded report card or IEP, when one was provided.
type ExtractInput struct {
	Text         string
	DocumentText string
	MimeType     string
}

// ErrNotConfigured is returned when no extraction provider is wired.
var ErrNotConfigured = errors.New("extraction client not configured")
