package utils

import (
	"fmt"
	"strconv"

	"github.com/Twix-Akshat/Todo-Demo/internal/constants"
	"github.com/gin-gonic/gin"
)

// PageLink is one navigation target in a paginated view.
type PageLink struct {
	Target   string `json:"target"`
	Disabled bool   `json:"disabled"`
}

// PageLinks holds the navigation state rendered under a paginated list.
type PageLinks struct {
	Previous PageLink `json:"previous"`
	Current  int      `json:"current"`
	Total    int      `json:"total"`
	Next     PageLink `json:"next"`
}

// BuildPageLinks computes previous/next navigation from the current page
// and the total page count. Previous is disabled on the first page and
// next on the last.
func BuildPageLinks(current, total int) PageLinks {
	return PageLinks{
		Previous: PageLink{
			Target:   fmt.Sprintf("?page=%d", current-1),
			Disabled: current <= 1,
		},
		Current: current,
		Total:   total,
		Next: PageLink{
			Target:   fmt.Sprintf("?page=%d", current+1),
			Disabled: current >= total,
		},
	}
}

// TotalPages returns the number of pages needed for count rows.
func TotalPages(count int64, pageSize int) int {
	pages := int(count) / pageSize
	if int(count)%pageSize > 0 {
		pages++
	}
	return pages
}

// GetPageParam extracts the requested page number from the query string,
// defaulting to the first page.
func GetPageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if err != nil || page < constants.MinPage {
		return constants.MinPage
	}
	return page
}
