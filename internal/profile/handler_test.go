package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"schoolmatch-backend/internal/bootstrap"
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

func postProfile(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestProfilesFromText(t *testing.T) {
	router := buildTestRouter(t)

	resp := postProfile(t, router, `{
		"text": "Our son starts 3rd grade this fall. He is into art and soccer."
	}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var prof struct {
		GradeEntering string `json:"gradeEntering"`
		LevelName     string `json:"schoolLevelName"`
		Interests     struct {
			Arts   bool `json:"arts"`
			Sports bool `json:"sports"`
		} `json:"interestCategories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&prof); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if prof.GradeEntering != "3" {
		t.Errorf("gradeEntering = %q, want 3", prof.GradeEntering)
	}
	if prof.LevelName != "Elementary" {
		t.Errorf("schoolLevelName = %q, want Elementary", prof.LevelName)
	}
	if !prof.Interests.Arts || !prof.Interests.Sports {
		t.Errorf("expected arts and sports interests, got %+v", prof.Interests)
	}
}

func TestProfilesRequireInput(t *testing.T) {
	router := buildTestRouter(t)

	resp := postProfile(t, router, `{"text": ""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProfilesUnknownDocument(t *testing.T) {
	router := buildTestRouter(t)

	resp := postProfile(t, router, `{"documentId": "missing-doc"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
