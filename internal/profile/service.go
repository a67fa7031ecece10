package profile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"schoolmatch-backend/internal/shared/telemetry"
	"schoolmatch-backend/internal/vision"
)

// ErrMissingInput indicates that neither text nor a document was supplied.
var ErrMissingInput = errors.New("text or document input is required")

// Input carries the raw material for building a profile. DocumentText is the
// extracted text of an uploaded report card or IEP, when one was provided.
type Input struct {
	Text         string
	DocumentText string
	DocumentMime string
	RequestID    string
}

// Service builds canonical student profiles from parent input.
type Service struct {
	Vision vision.Client
}

// Create extracts and normalizes a student profile. Extraction failures
// degrade to a heuristic parse of the input rather than aborting; the result
// always carries a resolved school level.
func (s *Service) Create(ctx context.Context, in Input) (StudentProfile, error) {
	text := strings.TrimSpace(in.Text)
	docText := strings.TrimSpace(in.DocumentText)
	if text == "" && docText == "" {
		return StudentProfile{}, ErrMissingInput
	}

	var raw RawProfile
	switch {
	case docText != "" && text != "":
		raw = s.extract(ctx, vision.ExtractInput{DocumentText: docText, MimeType: in.DocumentMime}, docText, in.RequestID)
		fromText := s.extract(ctx, vision.ExtractInput{Text: text}, text, in.RequestID)
		// The parent's explicit request outranks anything in the document.
		if fromText.SchoolTypeRequested != "" {
			raw.SchoolTypeRequested = fromText.SchoolTypeRequested
		}
		if fromText.Location.City != "" {
			raw.Location = fromText.Location
		}
	case docText != "":
		raw = s.extract(ctx, vision.ExtractInput{DocumentText: docText, MimeType: in.DocumentMime}, docText, in.RequestID)
	default:
		raw = s.extract(ctx, vision.ExtractInput{Text: text}, text, in.RequestID)
	}

	return Normalize(raw), nil
}

func (s *Service) extract(ctx context.Context, input vision.ExtractInput, sourceText, requestID string) RawProfile {
	if s.Vision == nil {
		return HeuristicExtract(sourceText)
	}

	payload, err := vision.WithRetry(s.Vision, requestID).ExtractProfile(ctx, input)
	if err != nil {
		if !errors.Is(err, vision.ErrNotConfigured) {
			telemetry.Error("profile.extraction_failed", map[string]any{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
		return HeuristicExtract(sourceText)
	}

	var raw RawProfile
	if err := json.Unmarshal(payload, &raw); err != nil {
		telemetry.Error("profile.extraction_unparsable", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return HeuristicExtract(sourceText)
	}
	return raw
}
