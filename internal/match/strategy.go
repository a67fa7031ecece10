package match

import (
	"fmt"
	"time"

	"schoolmatch-backend/internal/enrich"
	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
)

// Strategy describes how a family should approach applications across the
// recommended schools. Derived by a fixed rule table, never generated.
type Strategy struct {
	RecommendedApproach string            `json:"recommendedApproach"`
	TopChoice           *ScoredCandidate  `json:"topChoice,omitempty"`
	NeighborhoodOption  *ScoredCandidate  `json:"neighborhoodOption,omitempty"`
	LotteryOptions      []ScoredCandidate `json:"lotteryOptions,omitempty"`
	NextSteps           []string          `json:"nextSteps"`
}

// Summary counts ranked schools per match-quality band.
type Summary struct {
	Total     int `json:"total"`
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Consider  int `json:"consider"`
}

// Bundle is the final recommendation payload for one request. It is built
// once per request and never mutated afterwards.
type Bundle struct {
	ID          string                 `json:"id"`
	Status      string                 `json:"status"`
	Message     string                 `json:"message,omitempty"`
	Profile     profile.StudentProfile `json:"studentProfile"`
	Schools     []ScoredCandidate      `json:"schools"`
	Enrichment  []enrich.Info          `json:"enrichment,omitempty"`
	Summary     Summary                `json:"summary"`
	Strategy    Strategy               `json:"applicationStrategy"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

const maxLotteryOptions = 3

// Compose aggregates the top-N ranked schools into a bundle with an
// application strategy and per-band summary.
func Compose(ranked []ScoredCandidate, p profile.StudentProfile, topN int, now time.Time) Bundle {
	if topN <= 0 {
		topN = DefaultTopN
	}
	top := ranked
	if len(top) > topN {
		top = top[:topN]
	}

	return Bundle{
		Status:      StatusSuccess,
		Profile:     p,
		Schools:     top,
		Summary:     summarize(ranked),
		Strategy:    deriveStrategy(top),
		GeneratedAt: now,
	}
}

func summarize(ranked []ScoredCandidate) Summary {
	s := Summary{Total: len(ranked)}
	for _, cand := range ranked {
		switch {
		case cand.MatchScore >= 85:
			s.Excellent++
		case cand.MatchScore >= 70:
			s.Good++
		case cand.MatchScore >= 50:
			s.Fair++
		default:
			s.Consider++
		}
	}
	return s
}

func deriveStrategy(top []ScoredCandidate) Strategy {
	strategy := Strategy{NextSteps: []string{}}
	if len(top) == 0 {
		return strategy
	}

	topChoice := top[0]
	strategy.TopChoice = &topChoice

	var neighborhood *ScoredCandidate
	var lottery []ScoredCandidate
	for i := range top {
		switch top[i].Admission {
		case schools.AdmissionNeighborhood:
			if neighborhood == nil {
				cand := top[i]
				neighborhood = &cand
			}
		case schools.AdmissionLottery, schools.AdmissionCharter, schools.AdmissionMagnet:
			if len(lottery) < maxLotteryOptions {
				lottery = append(lottery, top[i])
			}
		}
	}
	strategy.NeighborhoodOption = neighborhood
	strategy.LotteryOptions = lottery

	if neighborhood != nil {
		strategy.RecommendedApproach = fmt.Sprintf(
			"Prioritize %s: you likely have guaranteed enrollment if you live in its attendance zone.",
			neighborhood.Name)
		strategy.NextSteps = append(strategy.NextSteps,
			"Verify you live in the school's attendance boundary",
			"Complete enrollment forms by the district deadline",
			"Attend open houses and schedule a school tour",
		)
		if len(lottery) > 0 {
			strategy.RecommendedApproach += fmt.Sprintf(
				" Also apply to %d lottery or magnet option(s) as stretch goals.", min(2, len(lottery)))
			strategy.NextSteps = append(strategy.NextSteps,
				"Submit lottery applications before the deadline (typically January-February)")
		}
		return strategy
	}

	strategy.RecommendedApproach = fmt.Sprintf(
		"Your top match (%s) requires a lottery or competitive application.", topChoice.Name)
	strategy.NextSteps = append(strategy.NextSteps,
		"Submit the lottery application before the deadline (typically January-February)",
		"Keep your neighborhood school as a backup plan",
		"Monitor lottery results (typically March-April)",
	)
	if len(lottery) > 1 {
		strategy.NextSteps = append(strategy.NextSteps,
			fmt.Sprintf("Apply to %d lottery schools to maximize options", len(lottery)))
	}
	return strategy
}
