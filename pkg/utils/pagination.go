package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxPageSize = 100

// PaginationParams represents offset pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// CursorParams represents cursor pagination parameters
type CursorParams struct {
	Cursor   string
	PageSize int
}

// GetPaginationParams extracts page/limit from the request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = 20
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// GetCursorParams extracts cursor/limit from the request
func GetCursorParams(c echo.Context, defaultPageSize int) CursorParams {
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return CursorParams{
		Cursor:   c.QueryParam("cursor"),
		PageSize: pageSize,
	}
}

// Window returns the [start:end) bounds of a page over n items.
func Window(n int, p PaginationParams) (int, int) {
	start := p.Offset
	if start > n {
		start = n
	}
	end := start + p.PageSize
	if end > n {
		end = n
	}
	return start, end
}
