package http

import (
	"net/http"

	"golang-stock-watchlist/internal/watchlist/dto"
	"golang-stock-watchlist/internal/watchlist/service"
	"golang-stock-watchlist/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for watchlist generation.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetWatchlist)
	g.POST("/generate", h.GenerateWatchlist)
}

// GetWatchlist godoc
// @Summary Generate a stock watchlist with default settings
// @Description Run the news-to-watchlist pipeline once with the configured defaults
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.GenerateWatchlistResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	data, err := h.watchlistService.GenerateWatchlist(c.Request().Context(), nil)
	if err != nil {
		h.logger.Error("Failed to generate watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.GenerateWatchlistResponse{Success: true, Data: data})
}

// GenerateWatchlist godoc
// @Summary Generate a stock watchlist
// @Description Run the news-to-watchlist pipeline once and return the ranked watchlist
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   options  body    dto.GenerateWatchlistRequest   false    "Optional pipeline overrides"
// @Success 200 {object} dto.GenerateWatchlistResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/generate [post]
func (h *WatchlistHandler) GenerateWatchlist(c echo.Context) error {
	var req dto.GenerateWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Invalid request payload"})
	}

	data, err := h.watchlistService.GenerateWatchlist(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to generate watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.GenerateWatchlistResponse{Success: true, Data: data})
}
