package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// idField parses a numeric form field.
func idField(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.PostForm(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// errorsFromQuery decodes the field-error mapping a mutation handler
// carried through a redirect in the "errors" query parameter.
func errorsFromQuery(c *gin.Context) map[string]string {
	raw := c.Query("errors")
	if raw == "" {
		return nil
	}

	var errs map[string]string
	if err := json.Unmarshal([]byte(raw), &errs); err != nil {
		return nil
	}
	return errs
}
