package schools

import (
	"context"
	"errors"
)

// ErrNotFound indicates a school directory miss.
var ErrNotFound = errors.New("not found")

// Query narrows a candidate lookup. Level is required; City is optional and
// matched case-insensitively. Limit caps the number of rows returned.
type Query struct {
	Level SchoolLevel
	City  string
	Limit int
}

// Repo supplies candidate schools for a matching pass. Implementations must
// return rows already filtered to the requested grade band and region, with
// tiny schools and rows lacking staffing data excluded.
type Repo interface {
	ListCandidates(ctx context.Context, q Query) ([]Candidate, error)
	GetByID(ctx context.Context, ncessch string) (Candidate, error)
}

// Dedupe keeps the first occurrence of each NCES school id, preserving order.
func Dedupe(candidates []Candidate) []Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.NCESSchoolID == "" || seen[c.NCESSchoolID] {
			continue
		}
		seen[c.NCESSchoolID] = true
		out = append(out, c)
	}
	return out
}
