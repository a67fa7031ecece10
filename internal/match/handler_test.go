package match_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"schoolmatch-backend/internal/bootstrap"
	"schoolmatch-backend/internal/match"
	"schoolmatch-backend/internal/schools"
	"schoolmatch-backend/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postRecommendations(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendationsEndToEnd(t *testing.T) {
	router := buildTestRouter(t)

	resp := postRecommendations(t, router, `{
		"text": "My daughter is entering 6th grade. She loves math and science and needs small classes."
	}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var bundle match.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}

	if bundle.Status != match.StatusSuccess {
		t.Fatalf("expected status %q, got %q", match.StatusSuccess, bundle.Status)
	}
	if bundle.ID == "" {
		t.Fatalf("expected a request id on the bundle")
	}
	if len(bundle.Schools) == 0 {
		t.Fatalf("expected at least one recommended school")
	}
	if len(bundle.Enrichment) != len(bundle.Schools) {
		t.Fatalf("expected enrichment for every school, got %d for %d schools",
			len(bundle.Enrichment), len(bundle.Schools))
	}

	// All seeded middle schools clear the default floor; only middle
	// schools should appear for a 6th grader.
	for _, s := range bundle.Schools {
		if s.Level != schools.LevelMiddle {
			t.Fatalf("expected only middle schools, got %s (%s)", s.Name, s.Level.Name())
		}
	}
	if bundle.Summary.Total != len(bundle.Schools) {
		t.Fatalf("summary total %d does not match %d schools", bundle.Summary.Total, len(bundle.Schools))
	}
	if bundle.Strategy.RecommendedApproach == "" || len(bundle.Strategy.NextSteps) == 0 {
		t.Fatalf("expected a populated application strategy")
	}
}

func TestRecommendationsNoMatches(t *testing.T) {
	router := buildTestRouter(t)

	minScore := 99.5
	body, _ := json.Marshal(map[string]any{
		"text":     "Looking for a high school with strong arts programs.",
		"minScore": minScore,
	})

	resp := postRecommendations(t, router, string(body))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var bundle match.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if bundle.Status != match.StatusNoMatches {
		t.Fatalf("expected status %q, got %q", match.StatusNoMatches, bundle.Status)
	}
	if len(bundle.Schools) != 0 {
		t.Fatalf("expected no schools, got %d", len(bundle.Schools))
	}
	if bundle.Message == "" {
		t.Fatalf("expected an explanatory message")
	}
}

func TestRecommendationsRejectsEmptyInput(t *testing.T) {
	router := buildTestRouter(t)

	resp := postRecommendations(t, router, `{"text": "   "}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRecommendationsValidatesTopN(t *testing.T) {
	router := buildTestRouter(t)

	resp := postRecommendations(t, router, `{"text": "6th grade", "topN": 50}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "between 0 and 25") {
		t.Fatalf("error message should state the accepted range, got %s", resp.Body.String())
	}

	// Zero is not a rejection; it falls back to the default slate size.
	resp = postRecommendations(t, router, `{"text": "My son is entering 6th grade in Springfield", "topN": 0}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected topN 0 to use the default, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRecommendationsUseDocumentWithoutUpload(t *testing.T) {
	router := buildTestRouter(t)

	resp := postRecommendations(t, router, `{"useDocument": true}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
