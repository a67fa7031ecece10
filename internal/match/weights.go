package match

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FactorWeights configures the five scoring factors. Weights must sum to 1.
type FactorWeights struct {
	Quality     float64
	Programs    float64
	Environment float64
	Location    float64
	Admission   float64
}

// DefaultWeights returns the standard factor mix.
func DefaultWeights() FactorWeights {
	return FactorWeights{
		Quality:     0.30,
		Programs:    0.25,
		Environment: 0.20,
		Location:    0.15,
		Admission:   0.10,
	}
}

// Sum returns the total weight.
func (w FactorWeights) Sum() float64 {
	return w.Quality + w.Programs + w.Environment + w.Location + w.Admission
}

// Validate checks that the weights are non-negative and sum to 1.
func (w FactorWeights) Validate() error {
	for _, v := range []float64{w.Quality, w.Programs, w.Environment, w.Location, w.Admission} {
		if v < 0 {
			return fmt.Errorf("%w: must be non-negative, got %v", ErrInvalidWeight, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-6 {
		return fmt.Errorf("%w: must sum to 1.0, got %v", ErrInvalidWeight, w.Sum())
	}
	return nil
}

// ParseWeights parses a comma-separated quality,programs,environment,
// location,admission override. An empty string yields the defaults.
func ParseWeights(raw string) (FactorWeights, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultWeights(), nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 5 {
		return FactorWeights{}, fmt.Errorf("expected 5 weights, got %d", len(parts))
	}
	vals := make([]float64, 5)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return FactorWeights{}, fmt.Errorf("weight %d: %w", i+1, err)
		}
		vals[i] = v
	}
	w := FactorWeights{
		Quality:     vals[0],
		Programs:    vals[1],
		Environment: vals[2],
		Location:    vals[3],
		Admission:   vals[4],
	}
	if err := w.Validate(); err != nil {
		return FactorWeights{}, err
	}
	return w, nil
}

// Band is a match-quality category with a minimum score threshold.
type Band struct {
	MinScore float64
	Label    string
}

// DefaultBands returns the match-quality categories, highest first.
func DefaultBands() []Band {
	return []Band{
		{MinScore: 85, Label: "Excellent Match"},
		{MinScore: 70, Label: "Good Match"},
		{MinScore: 50, Label: "Fair Match"},
		{MinScore: 0, Label: "Consider"},
	}
}

// BandFor returns the label of the first band whose threshold the score meets.
func BandFor(bands []Band, score float64) string {
	for _, b := range bands {
		if score >= b.MinScore {
			return b.Label
		}
	}
	if len(bands) == 0 {
		return ""
	}
	return bands[len(bands)-1].Label
}

// Reasoning thresholds: a factor scoring at or above the high mark, or at or
// below the low mark, is notable enough to explain to the parent.
const (
	notableHigh = 0.7
	notableLow  = 0.3
)
