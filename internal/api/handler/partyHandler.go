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

type PartyHandler struct {
	partyService service.PartyService
	logger       *zap.Logger
}

func NewPartyHandler(partyService service.PartyService, logger *zap.Logger) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
		logger:       logger,
	}
}

// RegisterRoutes registers watch-party routes
func (h *PartyHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	parties := router.Group("/parties")
	{
		parties.GET("", h.ListPublic)
		parties.POST("", middleware.RequireAuth(authService), h.Create)
		parties.GET("/:roomCode", h.Get)
		parties.POST("/:roomCode/join", middleware.RequireAuth(authService), h.Join)
		parties.POST("/:roomCode/leave", middleware.RequireAuth(authService), h.Leave)
		parties.DELETE("/:roomCode", middleware.RequireAuth(authService), h.End)
	}
}

// Create opens a new watch party with the caller as host
// POST /api/parties
func (h *PartyHandler) Create(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.logger.Error("create party failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create watch party"})
		return
	}

	c.JSON(http.StatusCreated, party)
}

// Get fetches a party record by room code
// GET /api/parties/:roomCode
func (h *PartyHandler) Get(c *gin.Context) {
	party, err := h.partyService.GetByRoomCode(c.Request.Context(), c.Param("roomCode"))
	if err != nil {
		if errors.Is(err, service.ErrPartyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Watch party not found"})
			return
		}
		h.logger.Error("get party failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch party"})
		return
	}

	c.JSON(http.StatusOK, party)
}

// ListPublic retrieves public active parties
// GET /api/parties?page=1&limit=10
func (h *PartyHandler) ListPublic(c *gin.Context) {
	result, err := h.partyService.ListPublic(c.Request.Context(), getPage(c), getLimit(c))
	if err != nil {
		h.logger.Error("list parties failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch parties"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Join adds the caller to a party's membership records
// POST /api/parties/:roomCode/join
func (h *PartyHandler) Join(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	party, err := h.partyService.Join(c.Request.Context(), c.Param("roomCode"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Watch party not found"})
		case errors.Is(err, service.ErrPartyEnded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Watch party has ended"})
		case errors.Is(err, service.ErrPartyFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Watch party is full"})
		default:
			h.logger.Error("join party failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join watch party"})
		}
		return
	}

	c.JSON(http.StatusOK, party)
}

// Leave closes the caller's membership record
// POST /api/parties/:roomCode/leave
func (h *PartyHandler) Leave(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.partyService.Leave(c.Request.Context(), c.Param("roomCode"), userID); err != nil {
		if errors.Is(err, service.ErrPartyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Watch party not found"})
			return
		}
		h.logger.Error("leave party failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave watch party"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left watch party"})
}

// End deactivates a party; host only
// DELETE /api/parties/:roomCode
func (h *PartyHandler) End(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.partyService.End(c.Request.Context(), c.Param("roomCode"), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Watch party not found"})
		case errors.Is(err, service.ErrNotPartyHost):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the host can end the party"})
		default:
			h.logger.Error("end party failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end watch party"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Watch party ended"})
}
