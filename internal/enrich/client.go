// Package enrich fetches supplemental information (programs, tours,
// deadlines) for recommended schools. Lookups are best-effort: a failed or
// slow lookup falls back to a deterministic default payload so the
// recommendation response never blocks on enrichment.
package enrich

import (
	"context"

	"schoolmatch-backend/internal/schools"
)

// Request identifies one school to enrich.
type Request struct {
	NCESSchoolID string
	SchoolName   string
	Level        schools.SchoolLevel
	City         string
	State        string
	Charter      bool
}

// Tour describes how families can visit the school.
type Tour struct {
	Available bool   `json:"available"`
	Schedule  string `json:"schedule,omitempty"`
	Booking   string `json:"booking,omitempty"`
}

// Deadline is one named application or enrollment date.
type Deadline struct {
	Name string `json:"name"`
	When string `json:"when"`
}

// Contact holds the school's public contact channels.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Info is the enrichment payload attached to a recommended school.
type Info struct {
	NCESSchoolID string     `json:"ncessch"`
	SchoolName   string     `json:"schoolName"`
	Programs     []string   `json:"programs"`
	Tour         Tour       `json:"tourInformation"`
	Deadlines    []Deadline `json:"applicationDeadlines"`
	Contact      Contact    `json:"contact"`
	Source       string     `json:"source"`
}

// Payload sources.
const (
	SourceLookup  = "lookup"
	SourceDefault = "default"
)

// Client resolves enrichment information for a single school.
type Client interface {
	Lookup(ctx context.Context, req Request) (Info, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, req Request) (Info, error)

func (f ClientFunc) Lookup(ctx context.Context, req Request) (Info, error) {
	return f(ctx, req)
}
