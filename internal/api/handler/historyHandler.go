package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aniview/internal/api/dto"
	"aniview/internal/api/middleware"
	"aniview/internal/api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	historyService service.HistoryService
	logger         *zap.Logger
}

func NewHistoryHandler(historyService service.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// RegisterRoutes registers watch-history routes; all require authentication
func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	history := router.Group("/history", middleware.RequireAuth(authService))
	{
		history.POST("", h.Record)
		history.GET("", h.List)
		history.DELETE("/:id", h.Delete)
		history.DELETE("", h.Clear)
	}
}

// Record upserts one episode's watch progress
// POST /api/history
func (h *HistoryHandler) Record(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.RecordWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.historyService.Record(c.Request.Context(), userID, &req)
	if err != nil {
		h.logger.Error("record watch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record watch progress"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List retrieves the caller's watch history, newest first
// GET /api/history?page=1&limit=10
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	result, err := h.historyService.List(c.Request.Context(), userID, getPage(c), getLimit(c))
	if err != nil {
		h.logger.Error("list history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch history"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete removes one history entry
// DELETE /api/history/:id
func (h *HistoryHandler) Delete(c *gin.Context) {
	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history entry ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.historyService.Delete(c.Request.Context(), entryID, userID); err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
			return
		}
		h.logger.Error("delete history entry failed", zap.Int64("entryId", entryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete history entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History entry deleted"})
}

// Clear wipes the caller's entire watch history
// DELETE /api/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.historyService.Clear(c.Request.Context(), userID); err != nil {
		h.logger.Error("clear history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear watch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Watch history cleared"})
}
