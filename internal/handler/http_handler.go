package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
	"github.com/carlosalvarezg/recipe-search/internal/service"
	"github.com/carlosalvarezg/recipe-search/pkg/log"
	"github.com/carlosalvarezg/recipe-search/pkg/response"
)

// Handler handles HTTP requests for the recipe search API.
type Handler struct {
	searchService service.SearchService
	pageSize      int
}

// NewHandler creates a new HTTP handler. pageSize is the fixed number
// of results per page.
func NewHandler(searchService service.SearchService, pageSize int) *Handler {
	return &Handler{
		searchService: searchService,
		pageSize:      pageSize,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/recipes", h.GetRecipes)
	r.POST("/click", h.RecordClick)
	r.GET("/health", h.Health)
}

// GetRecipes returns one page of ranked results for a query.
func (h *Handler) GetRecipes(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	// A missing or unparsable page binds to 0 and fails the page
	// validation in the service, so the parameter is effectively
	// required.
	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l.Warn().Err(err).Msg("invalid search request")
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.searchService.Search(ctx, req.Query, req.Page, h.pageSize)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPage) || errors.Is(err, service.ErrInvalidPageSize) {
			response.BadRequest(c, "Page number must be greater than 0")
			return
		}
		l.Error().Err(err).Str(log.FieldQuery, req.Query).Int(log.FieldPage, req.Page).Msg("search failed")
		response.BadGateway(c, err.Error())
		return
	}

	response.OK(c, page)
}

// RecordClick records a click on a result link.
func (h *Handler) RecordClick(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid click request")
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.searchService.RecordClick(ctx, req.Query, req.Link); err != nil {
		l.Error().Err(err).Str(log.FieldQuery, req.Query).Msg("failed to record click")
		response.ClickError(c, err.Error())
		return
	}

	response.ClickSuccess(c, "Click data recorded")
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	response.Healthy(c)
}
