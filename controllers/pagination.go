package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 20

// ParsePagination reads 1-based page/limit query params with safe defaults.
func ParsePagination(c *gin.Context, defaultLimit int) (page int, limit int) {
	page = 1
	limit = defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 1 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	return page, limit
}

// TotalPages is ceil(total/limit); a page past it simply reads empty.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

func paginationEnvelope(total int64, page, limit int) gin.H {
	return gin.H{
		"total": total,
		"page":  page,
		"pages": TotalPages(total, limit),
	}
}
