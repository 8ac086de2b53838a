package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/utils"
)

// Page is the pagination envelope wrapping every list response.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPage builds the envelope for the current request, deriving the
// next/previous cursor URLs from the request URL.
func NewPage(c *gin.Context, params utils.PaginationParams, total int64, results interface{}) Page {
	return Page{
		Count:    total,
		Next:     utils.PageURL(c, params, params.Page+1, total),
		Previous: utils.PageURL(c, params, params.Page-1, total),
		Results:  results,
	}
}
