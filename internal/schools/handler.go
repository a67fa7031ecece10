package schools

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schoolmatch-backend/internal/shared/server/respond"
)

// Handler exposes read access to the school directory.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches directory routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schools/:ncessch", h.get)
}

func (h *Handler) get(c *gin.Context) {
	ncessch := strings.TrimSpace(c.Param("ncessch"))
	if ncessch == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "school id is required", nil)
		return
	}

	cand, err := h.Repo.GetByID(c.Request.Context(), ncessch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "school not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load school", nil)
		}
		return
	}

	respond.OK(c, cand)
}
