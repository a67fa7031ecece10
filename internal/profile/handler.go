package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolmatch-backend/internal/shared/server/middleware"
	"schoolmatch-backend/internal/shared/server/respond"
)

// DocumentSource resolves the text of a previously uploaded document.
type DocumentSource interface {
	CurrentText(ctx context.Context, userID string) (text, mime string, err error)
	TextByID(ctx context.Context, userID, documentID string) (text, mime string, err error)
}

// Handler wires HTTP handlers to the profile service.
type Handler struct {
	Svc  *Service
	Docs DocumentSource
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs DocumentSource) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.create)
}

type createProfileRequest struct {
	Text       string `json:"text"`
	DocumentID string `json:"documentId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
		return
	}

	in := Input{
		Text:      req.Text,
		RequestID: middleware.RequestIDFromContext(c),
	}

	if req.DocumentID != "" && h.Docs != nil {
		userID := middleware.UserIDFromContext(c)
		docText, docMime, err := h.Docs.TextByID(c.Request.Context(), userID, req.DocumentID)
		if err != nil {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		in.DocumentText = docText
		in.DocumentMime = docMime
	}

	prof, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "invalid_request", "text or documentId is required", []map[string]string{
				{"field": "text", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "profile_failed", "failed to build profile", nil)
		}
		return
	}

	respond.OK(c, prof)
}
