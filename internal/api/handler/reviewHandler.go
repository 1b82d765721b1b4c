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

type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", middleware.RequireAuth(authService), h.Submit)
		reviews.GET("/anime/:animeId", middleware.OptionalAuth(authService), h.ListByAnime)
		reviews.GET("/anime/:animeId/mine", middleware.RequireAuth(authService), h.GetMine)
		reviews.GET("/anime/:animeId/stats", h.Stats)
		reviews.PUT("/:reviewId", middleware.RequireAuth(authService), h.Update)
		reviews.DELETE("/:reviewId", middleware.RequireAuth(authService), h.Delete)
		reviews.POST("/:reviewId/vote", middleware.RequireAuth(authService), h.Vote)
		reviews.POST("/:reviewId/report", middleware.RequireAuth(authService), h.Report)
		reviews.GET("/user/:userId", h.ListByUser)
	}
}

// Submit creates a review for an anime
// POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 10"})
		case errors.Is(err, service.ErrDuplicateReview):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this anime"})
		default:
			h.logger.Error("submit review failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListByAnime retrieves reviews for an anime with pagination and sorting
// GET /api/reviews/anime/:animeId?page=1&limit=10&sortBy=recent
func (h *ReviewHandler) ListByAnime(c *gin.Context) {
	animeID := c.Param("animeId")
	sortBy := c.DefaultQuery("sortBy", "recent")

	result, err := h.reviewService.ListByAnime(c.Request.Context(), animeID, sortBy, getPage(c), getLimit(c))
	if err != nil {
		h.logger.Error("list reviews failed", zap.String("animeId", animeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMine retrieves the caller's review for an anime
// GET /api/reviews/anime/:animeId/mine
func (h *ReviewHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	review, err := h.reviewService.GetOwn(c.Request.Context(), userID, c.Param("animeId"))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		h.logger.Error("get own review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// Update overwrites the caller's own review
// PUT /api/reviews/:reviewId
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), reviewID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 10"})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		case errors.Is(err, service.ErrNotReviewOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("update review failed", zap.Int64("reviewId", reviewID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete removes the caller's own review and its votes
// DELETE /api/reviews/:reviewId
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), reviewID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		case errors.Is(err, service.ErrNotReviewOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("delete review failed", zap.Int64("reviewId", reviewID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// Vote records a helpful/not-helpful judgment on a review
// POST /api/reviews/:reviewId/vote
func (h *ReviewHandler) Vote(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reviewService.Vote(c.Request.Context(), reviewID, userID, *req.Helpful); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		h.logger.Error("vote failed", zap.Int64("reviewId", reviewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote on review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded successfully"})
}

// Report flags a review for moderation
// POST /api/reviews/:reviewId/report
func (h *ReviewHandler) Report(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	if err := h.reviewService.Report(c.Request.Context(), reviewID); err != nil {
		h.logger.Error("report review failed", zap.Int64("reviewId", reviewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review reported successfully"})
}

// Stats retrieves the aggregate rating for an anime
// GET /api/reviews/anime/:animeId/stats
func (h *ReviewHandler) Stats(c *gin.Context) {
	animeID := c.Param("animeId")

	stats, err := h.reviewService.Stats(c.Request.Context(), animeID)
	if err != nil {
		h.logger.Error("stats failed", zap.String("animeId", animeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rating stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListByUser retrieves one user's reviews across all anime
// GET /api/reviews/user/:userId?page=1&limit=10
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result, err := h.reviewService.ListByUser(c.Request.Context(), userID, getPage(c), getLimit(c))
	if err != nil {
		h.logger.Error("list user reviews failed", zap.Int64("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user reviews"})
		return
	}

	c.JSON(http.StatusOK, result)
}
