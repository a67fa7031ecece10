package match

import (
	"fmt"
	"math"
	"strings"

	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
)

// Sub-factor contributions substitute this value when the directory has no
// data, so that missing metrics neither penalize nor inflate a school.
const neutralSubScore = 0.5

// Factor keys in declaration order; reasoning follows this order.
const (
	FactorQuality     = "schoolQuality"
	FactorPrograms    = "programsServices"
	FactorEnvironment = "schoolEnvironment"
	FactorLocation    = "location"
	FactorAdmission   = "admissionFit"
)

var factorLabels = map[string]string{
	FactorQuality:     "School Quality",
	FactorPrograms:    "Programs & Services",
	FactorEnvironment: "School Environment",
	FactorLocation:    "Location",
	FactorAdmission:   "Admission Fit",
}

// FactorScore is one factor's contribution to the match score.
type FactorScore struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ScoredCandidate pairs a directory candidate with its computed match data.
type ScoredCandidate struct {
	schools.Candidate

	MatchScore float64       `json:"matchScore"`
	Factors    []FactorScore `json:"factors"`
	Reasoning  []string      `json:"matchReasoning"`
	Band       string        `json:"matchCategory,omitempty"`
	Rank       int           `json:"rank,omitempty"`
}

// Scorer computes weighted match scores for level-filtered candidates.
type Scorer struct {
	Weights FactorWeights
}

// Score computes the 0-100 match score and per-factor reasoning for one
// candidate. Scoring is pure: the same inputs always yield the same result.
func (s Scorer) Score(p profile.StudentProfile, cand schools.Candidate) ScoredCandidate {
	weights := effectiveWeights(s.Weights, p)

	quality := qualityScore(cand)
	programs := programsScore(p, cand)
	environment := environmentScore(cand)
	location := locationScore(p, cand)
	admission := admissionScore(cand)

	factors := []FactorScore{
		{Key: FactorQuality, Label: factorLabels[FactorQuality], Score: quality, Weight: weights.Quality},
		{Key: FactorPrograms, Label: factorLabels[FactorPrograms], Score: programs, Weight: weights.Programs},
		{Key: FactorEnvironment, Label: factorLabels[FactorEnvironment], Score: environment, Weight: weights.Environment},
		{Key: FactorLocation, Label: factorLabels[FactorLocation], Score: location, Weight: weights.Location},
		{Key: FactorAdmission, Label: factorLabels[FactorAdmission], Score: admission, Weight: weights.Admission},
	}

	total := 0.0
	for _, f := range factors {
		total += f.Score * f.Weight
	}

	return ScoredCandidate{
		Candidate:  cand,
		MatchScore: round1(total * 100),
		Factors:    factors,
		Reasoning:  reasoning(p, cand, factors),
	}
}

// effectiveWeights amplifies the environment factor for students who need
// small classes, renormalizing so the weights still sum to 1.
func effectiveWeights(w FactorWeights, p profile.StudentProfile) FactorWeights {
	if !p.Needs.SmallClasses {
		return w
	}
	w.Environment *= 1.25
	sum := w.Sum()
	if sum <= 0 {
		return w
	}
	w.Quality /= sum
	w.Programs /= sum
	w.Environment /= sum
	w.Location /= sum
	w.Admission /= sum
	return w
}

func qualityScore(cand schools.Candidate) float64 {
	var gradSub float64
	switch {
	case cand.GraduationRate != nil && *cand.GraduationRate >= 90:
		gradSub = 1.0
	case cand.GraduationRate != nil && *cand.GraduationRate >= 80:
		gradSub = 0.8
	case cand.GraduationRate != nil && *cand.GraduationRate >= 70:
		gradSub = 0.6
	case cand.GraduationRate != nil:
		gradSub = 0.4
	case cand.Level == schools.LevelElementary || cand.Level == schools.LevelMiddle:
		// No graduation data expected below high school.
		gradSub = 0.7
	default:
		gradSub = neutralSubScore
	}

	var ratioSub float64
	switch {
	case cand.StudentTeacherRatio == nil:
		ratioSub = neutralSubScore
	case *cand.StudentTeacherRatio <= 15:
		ratioSub = 1.0
	case *cand.StudentTeacherRatio <= 20:
		ratioSub = 0.8
	case *cand.StudentTeacherRatio <= 25:
		ratioSub = 0.6
	default:
		ratioSub = 0.4
	}

	return gradSub*0.5 + ratioSub*0.5
}

func programsScore(p profile.StudentProfile, cand schools.Candidate) float64 {
	var apSub float64
	switch {
	case cand.APCourses != nil && *cand.APCourses >= 10:
		apSub = 1.0
	case cand.APCourses != nil && *cand.APCourses >= 5:
		apSub = 0.7
	case cand.APCourses != nil && *cand.APCourses > 0:
		apSub = 0.5
	case cand.Level == schools.LevelElementary || cand.Level == schools.LevelMiddle:
		// AP offerings are not expected below high school.
		apSub = 0.7
	case cand.APCourses != nil:
		apSub = 0.3
	default:
		apSub = neutralSubScore
	}

	giftedSub := neutralSubScore
	if cand.HasGiftedProgram {
		giftedSub = 1.0
	}

	score := apSub*0.6 + giftedSub*0.4

	// Personal fit bonuses when offerings intersect the student's profile.
	if p.Interests.STEM && cand.APCourses != nil && *cand.APCourses >= 5 {
		score += 0.1
	}
	if p.Needs.Gifted && cand.HasGiftedProgram {
		score += 0.1
	}
	return clamp01(score)
}

func environmentScore(cand schools.Candidate) float64 {
	var sizeSub float64
	switch {
	case cand.Enrollment == nil:
		sizeSub = neutralSubScore
	case *cand.Enrollment >= 200 && *cand.Enrollment <= 800:
		sizeSub = 1.0
	case *cand.Enrollment >= 100 && *cand.Enrollment <= 1500:
		sizeSub = 0.7
	default:
		sizeSub = 0.5
	}

	var ratioSub float64
	switch {
	case cand.StudentTeacherRatio == nil:
		ratioSub = neutralSubScore
	case *cand.StudentTeacherRatio <= 18:
		ratioSub = 1.0
	case *cand.StudentTeacherRatio <= 22:
		ratioSub = 0.7
	default:
		ratioSub = 0.5
	}

	return sizeSub*0.5 + ratioSub*0.5
}

func locationScore(p profile.StudentProfile, cand schools.Candidate) float64 {
	homeCity := strings.TrimSpace(p.Location.City)
	if homeCity == "" || strings.TrimSpace(cand.City) == "" {
		return neutralSubScore
	}
	if strings.EqualFold(homeCity, strings.TrimSpace(cand.City)) {
		return 1.0
	}
	return 0.5
}

func admissionScore(cand schools.Candidate) float64 {
	switch cand.Admission {
	case schools.AdmissionNeighborhood:
		return 1.0
	case schools.AdmissionLottery, schools.AdmissionCharter:
		return 0.7
	case schools.AdmissionMagnet:
		return 0.4
	default:
		return neutralSubScore
	}
}

// reasoning emits one explanation per notable factor, in factor declaration
// order rather than by magnitude.
func reasoning(p profile.StudentProfile, cand schools.Candidate, factors []FactorScore) []string {
	var out []string
	for _, f := range factors {
		if f.Score < notableHigh && f.Score > notableLow {
			continue
		}
		positive := f.Score >= notableHigh
		switch f.Key {
		case FactorQuality:
			if positive {
				if cand.GraduationRate != nil {
					out = append(out, fmt.Sprintf("High graduation rate (%.0f%%)", *cand.GraduationRate))
				} else {
					out = append(out, "Strong overall academic quality")
				}
			} else {
				out = append(out, "Academic quality below average")
			}
		case FactorPrograms:
			if positive {
				switch {
				case p.Interests.STEM && cand.APCourses != nil && *cand.APCourses >= 5:
					out = append(out, fmt.Sprintf("Strong STEM programs (%d AP courses)", *cand.APCourses))
				case p.Needs.Gifted && cand.HasGiftedProgram:
					out = append(out, "Has Gifted & Talented program")
				default:
					out = append(out, "Broad program offerings")
				}
			} else {
				out = append(out, "Limited program offerings")
			}
		case FactorEnvironment:
			if positive {
				if cand.StudentTeacherRatio != nil && *cand.StudentTeacherRatio <= 18 {
					out = append(out, fmt.Sprintf("Small class sizes (%.0f:1 student-teacher ratio)", *cand.StudentTeacherRatio))
				} else {
					out = append(out, "Comfortable school size")
				}
			} else {
				out = append(out, "Large class sizes may be a concern")
			}
		case FactorLocation:
			if positive {
				out = append(out, fmt.Sprintf("Located in %s", cand.City))
			} else {
				out = append(out, "Outside your home area")
			}
		case FactorAdmission:
			if positive {
				switch cand.Admission {
				case schools.AdmissionNeighborhood:
					out = append(out, "Neighborhood school with guaranteed enrollment")
				default:
					out = append(out, "Lottery application required")
				}
			} else {
				out = append(out, "Competitive admission process")
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
