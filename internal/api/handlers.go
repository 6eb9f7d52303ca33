package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
	"github.com/jonesrussell/sotd-matcher/internal/database"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/logging"
	"github.com/jonesrussell/sotd-matcher/internal/matcher"
)

// Handler handles HTTP requests for the matcher API.
type Handler struct {
	engine    *matcher.Engine
	overrides *correctmatch.Index
	results   *database.ResultsRepository
	logger    logging.Logger
}

// NewHandler creates a new API handler. The results repository may be nil
// when the server runs without a database.
func NewHandler(engine *matcher.Engine, overrides *correctmatch.Index,
	results *database.ResultsRepository, logger logging.Logger,
) *Handler {
	return &Handler{
		engine:    engine,
		overrides: overrides,
		results:   results,
		logger:    logger,
	}
}

// Match classifies one string.
// POST /api/v1/match
func (h *Handler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.engine.Match(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, MatchResponse{Result: result})
}

// MatchBatch classifies several strings.
// POST /api/v1/match/batch
func (h *Handler) MatchBatch(c *gin.Context) {
	var req BatchMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp := BatchMatchResponse{Results: make([]*domain.MatchResult, len(req.Texts))}
	for i, text := range req.Texts {
		resp.Results[i] = h.engine.Match(c.Request.Context(), text)
	}
	c.JSON(http.StatusOK, resp)
}

// Stats reports catalog section sizes and the strategy order.
// GET /api/v1/catalogs/stats
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Sections:   h.engine.Catalog().Stats(),
		Strategies: h.engine.Registry().Names(),
		Overrides:  h.overrides.Size(),
	})
}

// MonthSummary reports how a processed month broke down by match kind.
// GET /api/v1/results/:month/summary
func (h *Handler) MonthSummary(c *gin.Context) {
	if h.results == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "results store not configured"})
		return
	}

	month := c.Param("month")
	counts, err := h.results.CountByKind(c.Request.Context(), month)
	if err != nil {
		h.logger.Error("month summary failed", "month", month, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "counts": counts})
}
