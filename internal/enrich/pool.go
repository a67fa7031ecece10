package enrich

import (
	"context"
	"fmt"
	"sync"

	"schoolmatch-backend/internal/shared/metrics"
	"schoolmatch-backend/internal/shared/telemetry"
)

const defaultWorkers = 5

// Pool runs enrichment lookups with bounded concurrency. A nil or failing
// client degrades every item to its default payload.
type Pool struct {
	Client  Client
	Workers int
}

// EnrichAll resolves enrichment for every request. Results are returned in
// the same order as the input regardless of completion order, and every slot
// is filled: failures and panics produce the default payload for that school.
func (p *Pool) EnrichAll(ctx context.Context, requestID string, reqs []Request) []Info {
	out := make([]Info, len(reqs))
	if len(reqs) == 0 {
		return out
	}
	if p.Client == nil {
		for i, req := range reqs {
			out[i] = DefaultInfo(req)
		}
		return out
	}

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, req Request) {
			defer wg.Done()
			defer func() { <-sem }()
			out[idx] = p.lookupOne(ctx, requestID, req)
		}(i, reqs[i])
	}
	wg.Wait()
	return out
}

func (p *Pool) lookupOne(ctx context.Context, requestID string, req Request) (info Info) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("enrichment lookup panicked", map[string]any{
				"requestId": requestID,
				"ncessch":   req.NCESSchoolID,
				"panic":     fmt.Sprintf("%v", r),
			})
			metrics.IncEnrichmentFallback()
			info = DefaultInfo(req)
		}
	}()

	info, err := p.Client.Lookup(ctx, req)
	if err != nil {
		telemetry.Error("enrichment lookup failed", map[string]any{
			"requestId": requestID,
			"ncessch":   req.NCESSchoolID,
			"err":       err.Error(),
		})
		metrics.IncEnrichmentFallback()
		return DefaultInfo(req)
	}
	if info.NCESSchoolID == "" {
		info.NCESSchoolID = req.NCESSchoolID
	}
	if info.SchoolName == "" {
		info.SchoolName = req.SchoolName
	}
	if info.Source == "" {
		info.Source = SourceLookup
	}
	return info
}
