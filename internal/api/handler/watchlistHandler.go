package handler

import (
	"errors"
	"net/http"

	"aniview/internal/api/dto"
	"aniview/internal/api/middleware"
	"aniview/internal/api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *zap.Logger
}

func NewWatchlistHandler(watchlistService service.WatchlistService, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		logger:           logger,
	}
}

// RegisterRoutes registers watchlist routes; all require authentication
func (h *WatchlistHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	watchlist := router.Group("/watchlist", middleware.RequireAuth(authService))
	{
		watchlist.POST("", h.Add)
		watchlist.GET("", h.List)
		watchlist.PUT("/:animeId", h.UpdateStatus)
		watchlist.DELETE("/:animeId", h.Remove)
	}
}

// Add puts an anime on the caller's watchlist
// POST /api/watchlist
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.watchlistService.Add(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist status"})
		case errors.Is(err, service.ErrAlreadyInWatchlist):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Anime already in watchlist"})
		default:
			h.logger.Error("add watchlist entry failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List retrieves the caller's watchlist, optionally filtered by status
// GET /api/watchlist?status=watching&page=1&limit=10
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	result, err := h.watchlistService.List(c.Request.Context(), userID, c.Query("status"), getPage(c), getLimit(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist status"})
			return
		}
		h.logger.Error("list watchlist failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus moves an entry between watchlist statuses
// PUT /api/watchlist/:animeId
func (h *WatchlistHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.watchlistService.UpdateStatus(c.Request.Context(), userID, c.Param("animeId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist status"})
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist entry not found"})
		default:
			h.logger.Error("update watchlist entry failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watchlist"})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Remove takes an anime off the caller's watchlist
// DELETE /api/watchlist/:animeId
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.watchlistService.Remove(c.Request.Context(), userID, c.Param("animeId")); err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist entry not found"})
			return
		}
		h.logger.Error("remove watchlist entry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist"})
}
