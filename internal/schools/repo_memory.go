package schools

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in
// tests. Rows are filtered with the same rules as the Postgres directory.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows []Candidate
}

// NewMemoryRepo constructs a MemoryRepo seeded with the given rows.
func NewMemoryRepo(rows ...Candidate) *MemoryRepo {
	repo := &MemoryRepo{}
	repo.rows = append(repo.rows, rows...)
	return repo
}

// Add appends directory rows.
func (r *MemoryRepo) Add(rows ...Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
}

// ListCandidates filters the seeded rows by level, optional city, and limit.
func (r *MemoryRepo) ListCandidates(ctx context.Context, q Query) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	city := strings.ToUpper(strings.TrimSpace(q.City))

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Candidate
	for _, row := range r.rows {
		if row.Level != q.Level || row.Name == "" {
			continue
		}
		if row.Enrollment == nil || *row.Enrollment < minEnrollment {
			continue
		}
		if city != "" && strings.ToUpper(row.City) != city {
			continue
		}
		out = append(out, row)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// GetByID returns a seeded row by its NCES id.
func (r *MemoryRepo) GetByID(ctx context.Context, ncessch string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.NCESSchoolID == ncessch {
			return row, nil
		}
	}
	return Candidate{}, ErrNotFound
}
