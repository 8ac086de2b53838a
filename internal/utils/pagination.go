package utils

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the request.
// The page size is fixed; callers only choose the page.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if page < constants.MinPage {
		page = constants.MinPage
	}

	limit := constants.DefaultPageSize
	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// PageURL rebuilds the request URL with the page parameter replaced.
// Returns nil when the target page is out of the [1, lastPage] range,
// producing the null next/previous markers at the envelope edges.
func PageURL(c *gin.Context, params PaginationParams, target int, total int64) *string {
	if target < constants.MinPage {
		return nil
	}
	lastPage := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	if lastPage < constants.MinPage {
		lastPage = constants.MinPage
	}
	if target > lastPage {
		return nil
	}

	u := *c.Request.URL
	q, _ := url.ParseQuery(u.RawQuery)
	if target == constants.MinPage {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(target))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
