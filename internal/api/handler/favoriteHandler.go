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

type FavoriteHandler struct {
	favoriteService service.FavoriteService
	logger          *zap.Logger
}

func NewFavoriteHandler(favoriteService service.FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// RegisterRoutes registers favorites routes; all require authentication
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	favorites := router.Group("/favorites", middleware.RequireAuth(authService))
	{
		favorites.POST("", h.Add)
		favorites.GET("", h.List)
		favorites.GET("/:animeId", h.Get)
		favorites.DELETE("/:animeId", h.Remove)
	}
}

// Add marks an anime as a favorite
// POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := h.favoriteService.Add(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyFavorite) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Anime already in favorites"})
			return
		}
		h.logger.Error("add favorite failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// List retrieves the caller's favorites
// GET /api/favorites?page=1&limit=10
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	result, err := h.favoriteService.List(c.Request.Context(), userID, getPage(c), getLimit(c))
	if err != nil {
		h.logger.Error("list favorites failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get checks whether one anime is a favorite
// GET /api/favorites/:animeId
func (h *FavoriteHandler) Get(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	fav, err := h.favoriteService.Get(c.Request.Context(), userID, c.Param("animeId"))
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		h.logger.Error("get favorite failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
		return
	}

	c.JSON(http.StatusOK, fav)
}

// Remove unmarks a favorite
// DELETE /api/favorites/:animeId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, c.Param("animeId")); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		h.logger.Error("remove favorite failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
