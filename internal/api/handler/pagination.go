package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// getPage reads the page query parameter, default 1
func getPage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// getLimit reads the limit query parameter, default 10, capped at 100
func getLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}
	return limit
}
