package match

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolmatch-backend/internal/enrich"
	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
	"schoolmatch-backend/internal/shared/metrics"
	"schoolmatch-backend/internal/shared/telemetry"
)

// Request carries the raw student input plus per-request overrides.
type Request struct {
	Text         string
	DocumentText string
	DocumentMime string
	TopN         int
	MinScore     *float64
	RequestID    string
}

// Service runs the full matching pass: normalize the student profile, load
// candidate schools, score, rank, compose a bundle, and enrich the top picks.
type Service struct {
	Profiles *profile.Service
	Schools  schools.Repo
	Scorer   Scorer
	Bands    []Band
	Enricher *enrich.Pool

	TopN     int
	MinScore float64
	MaxPool  int
}

// Recommend produces a recommendation bundle for one student.
func (s *Service) Recommend(ctx context.Context, req Request) (Bundle, error) {
	start := time.Now()
	metrics.IncMatchStarted()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if strings.TrimSpace(req.Text) == "" && strings.TrimSpace(req.DocumentText) == "" {
		metrics.IncMatchFailed()
		return Bundle{}, ErrNoInput
	}

	prof, err := s.Profiles.Create(ctx, profile.Input{
		Text:         req.Text,
		DocumentText: req.DocumentText,
		DocumentMime: req.DocumentMime,
		RequestID:    requestID,
	})
	if err != nil {
		metrics.IncMatchFailed()
		return Bundle{}, err
	}

	candidates, err := s.loadCandidates(ctx, prof)
	if err != nil {
		metrics.IncMatchFailed()
		return Bundle{}, err
	}

	minScore := s.minScore()
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		sc := s.Scorer.Score(prof, cand)
		if sc.MatchScore < minScore {
			continue
		}
		scored = append(scored, sc)
	}

	ranked := Rank(scored, s.bands())

	topN := req.TopN
	if topN <= 0 {
		topN = s.topN()
	}

	bundle := Compose(ranked, prof, topN, time.Now().UTC())
	bundle.ID = requestID

	if len(bundle.Schools) == 0 {
		bundle.Status = StatusNoMatches
		bundle.Message = "No schools matched the student's profile. Try broadening the search area or lowering the minimum score."
		telemetry.Info("match produced no results", map[string]any{
			"requestId": requestID,
			"level":     prof.LevelName,
			"city":      prof.Location.City,
			"pool":      len(candidates),
		})
		metrics.IncMatchCompleted()
		metrics.ObserveMatchDurationMs(float64(time.Since(start).Milliseconds()))
		return bundle, nil
	}

	bundle.Enrichment = s.enrichTop(ctx, requestID, bundle.Schools)

	telemetry.Info("match completed", map[string]any{
		"requestId": requestID,
		"level":     prof.LevelName,
		"pool":      len(candidates),
		"ranked":    len(ranked),
		"returned":  len(bundle.Schools),
		"topScore":  bundle.Schools[0].MatchScore,
	})
	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(float64(time.Since(start).Milliseconds()))
	return bundle, nil
}

// loadCandidates pulls the candidate pool for the profile's level. When a
// city is known the city-local pool is loaded first, topped up with schools
// from the wider area so sparse cities still produce a full slate.
func (s *Service) loadCandidates(ctx context.Context, prof profile.StudentProfile) ([]schools.Candidate, error) {
	limit := s.maxPool()

	query := schools.Query{Level: prof.Level, Limit: limit}
	if city := strings.TrimSpace(prof.Location.City); city != "" {
		query.City = city
	}

	pool, err := s.Schools.ListCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	if query.City != "" && len(pool) < limit {
		wider, err := s.Schools.ListCandidates(ctx, schools.Query{Level: prof.Level, Limit: limit})
		if err != nil {
			return nil, err
		}
		pool = append(pool, wider...)
	}
	return schools.Dedupe(pool), nil
}

func (s *Service) enrichTop(ctx context.Context, requestID string, top []ScoredCandidate) []enrich.Info {
	pool := s.Enricher
	if pool == nil {
		pool = &enrich.Pool{}
	}
	reqs := make([]enrich.Request, len(top))
	for i, cand := range top {
		reqs[i] = enrich.Request{
			NCESSchoolID: cand.NCESSchoolID,
			SchoolName:   cand.Name,
			Level:        cand.Level,
			City:         cand.City,
			State:        cand.State,
			Charter:      cand.Charter,
		}
	}
	return pool.EnrichAll(ctx, requestID, reqs)
}

func (s *Service) topN() int {
	if s.TopN > 0 {
		return s.TopN
	}
	return DefaultTopN
}

func (s *Service) minScore() float64 {
	if s.MinScore > 0 {
		return s.MinScore
	}
	return DefaultMinScore
}

func (s *Service) maxPool() int {
	if s.MaxPool > 0 {
		return s.MaxPool
	}
	return DefaultMaxPool
}

func (s *Service) bands() []Band {
	if len(s.Bands) > 0 {
		return s.Bands
	}
	return DefaultBands()
}
