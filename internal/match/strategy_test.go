package match

import (
	"strings"
	"testing"
	"time"

	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
)

func TestComposeTruncatesAndSummarizes(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		scoredWith("a", 91.0, schools.AdmissionNeighborhood, nil),
		scoredWith("b", 86.0, schools.AdmissionLottery, nil),
		scoredWith("c", 74.0, schools.AdmissionCharter, nil),
		scoredWith("d", 58.0, schools.AdmissionNeighborhood, nil),
		scoredWith("e", 42.0, schools.AdmissionMagnet, nil),
	}, DefaultBands())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bundle := Compose(ranked, profile.StudentProfile{LevelName: "Middle"}, 3, now)

	if bundle.Status != StatusSuccess {
		t.Fatalf("Status = %q, want %q", bundle.Status, StatusSuccess)
	}
	if len(bundle.Schools) != 3 {
		t.Fatalf("len(Schools) = %d, want 3", len(bundle.Schools))
	}
	if !bundle.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", bundle.GeneratedAt, now)
	}

	want := Summary{Total: 5, Excellent: 2, Good: 1, Fair: 1, Consider: 1}
	if bundle.Summary != want {
		t.Fatalf("Summary = %+v, want %+v", bundle.Summary, want)
	}
}

func TestComposeStrategyPrefersNeighborhood(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		scoredWith("magnet", 90.0, schools.AdmissionMagnet, nil),
		scoredWith("zone", 85.0, schools.AdmissionNeighborhood, nil),
		scoredWith("charter", 80.0, schools.AdmissionCharter, nil),
	}, DefaultBands())

	bundle := Compose(ranked, profile.StudentProfile{}, 5, time.Now().UTC())
	strategy := bundle.Strategy

	if strategy.TopChoice == nil || strategy.TopChoice.NCESSchoolID != "magnet" {
		t.Fatalf("TopChoice = %+v, want magnet", strategy.TopChoice)
	}
	if strategy.NeighborhoodOption == nil || strategy.NeighborhoodOption.NCESSchoolID != "zone" {
		t.Fatalf("NeighborhoodOption = %+v, want zone", strategy.NeighborhoodOption)
	}
	if len(strategy.LotteryOptions) != 2 {
		t.Fatalf("LotteryOptions = %d, want 2", len(strategy.LotteryOptions))
	}
	if !strings.Contains(strategy.RecommendedApproach, "School zone") {
		t.Errorf("RecommendedApproach %q does not name the neighborhood school", strategy.RecommendedApproach)
	}

	var hasBoundaryStep bool
	for _, step := range strategy.NextSteps {
		if strings.Contains(step, "attendance boundary") {
			hasBoundaryStep = true
		}
	}
	if !hasBoundaryStep {
		t.Errorf("NextSteps missing boundary check: %v", strategy.NextSteps)
	}
}

func TestComposeStrategyLotteryOnly(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		scoredWith("l1", 88.0, schools.AdmissionLottery, nil),
		scoredWith("l2", 84.0, schools.AdmissionCharter, nil),
	}, DefaultBands())

	strategy := Compose(ranked, profile.StudentProfile{}, 5, time.Now().UTC()).Strategy

	if strategy.NeighborhoodOption != nil {
		t.Fatalf("NeighborhoodOption = %+v, want nil", strategy.NeighborhoodOption)
	}
	if !strings.Contains(strategy.RecommendedApproach, "lottery") {
		t.Errorf("RecommendedApproach = %q, want lottery guidance", strategy.RecommendedApproach)
	}

	var hasBackupStep bool
	for _, step := range strategy.NextSteps {
		if strings.Contains(step, "backup") {
			hasBackupStep = true
		}
	}
	if !hasBackupStep {
		t.Errorf("NextSteps missing backup plan: %v", strategy.NextSteps)
	}
}

func TestComposeEmpty(t *testing.T) {
	bundle := Compose(nil, profile.StudentProfile{}, 5, time.Now().UTC())
	if len(bundle.Schools) != 0 {
		t.Fatalf("Schools = %d, want 0", len(bundle.Schools))
	}
	if bundle.Summary.Total != 0 {
		t.Fatalf("Summary.Total = %d, want 0", bundle.Summary.Total)
	}
	if bundle.Strategy.TopChoice != nil {
		t.Fatalf("TopChoice = %+v, want nil", bundle.Strategy.TopChoice)
	}
}
