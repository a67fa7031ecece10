package match

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/shared/server/middleware"
	"schoolmatch-backend/internal/shared/server/respond"
)

// DocumentSource resolves the caller's most recent uploaded document so a
// recommendation request can reuse it without re-uploading.
type DocumentSource interface {
	CurrentText(ctx context.Context, userID string) (text, mime string, err error)
	TextByID(ctx context.Context, userID, documentID string) (text, mime string, err error)
}

// Handler wires HTTP handlers to the match service.
type Handler struct {
	Svc  *Service
	Docs DocumentSource
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs DocumentSource) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.createRecommendations)
}

type recommendRequest struct {
	Text        string   `json:"text"`
	DocumentID  string   `json:"documentId"`
	UseDocument bool     `json:"useDocument"`
	TopN        int      `json:"topN"`
	MinScore    *float64 `json:"minScore"`
}

func (h *Handler) createRecommendations(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body", nil)
		return
	}
	if req.TopN < 0 || req.TopN > 25 {
		respond.Error(c, http.StatusBadRequest, ErrCodeInvalidRequest, "topN must be between 0 and 25 (0 applies the default)", []map[string]string{
			{"field": "topN", "issue": "out_of_range"},
		})
		return
	}
	if req.MinScore != nil && (*req.MinScore < 0 || *req.MinScore > 100) {
		respond.Error(c, http.StatusBadRequest, ErrCodeInvalidRequest, "minScore must be between 0 and 100", []map[string]string{
			{"field": "minScore", "issue": "out_of_range"},
		})
		return
	}

	svcReq := Request{
		Text:      req.Text,
		TopN:      req.TopN,
		MinScore:  req.MinScore,
		RequestID: middleware.RequestIDFromContext(c),
	}

	if (req.DocumentID != "" || req.UseDocument) && h.Docs != nil {
		userID := middleware.UserIDFromContext(c)
		var (
			docText, docMime string
			err              error
		)
		if req.DocumentID != "" {
			docText, docMime, err = h.Docs.TextByID(c.Request.Context(), userID, req.DocumentID)
		} else {
			docText, docMime, err = h.Docs.CurrentText(c.Request.Context(), userID)
		}
		if err != nil {
			respond.Error(c, http.StatusNotFound, "not_found", "no uploaded document found", nil)
			return
		}
		svcReq.DocumentText = docText
		svcReq.DocumentMime = docMime
	}

	bundle, err := h.Svc.Recommend(c.Request.Context(), svcReq)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoInput), errors.Is(err, profile.ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, ErrCodeInvalidRequest, "text or an uploaded document is required", []map[string]string{
				{"field": "text", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, ErrCodeMatchFailed, "failed to generate recommendations", nil)
		}
		return
	}

	c.Set("recommendationId", bundle.ID)
	respond.OK(c, bundle)
}
