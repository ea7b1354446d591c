package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	return nil
}

// idParam parses a signed path id; range checks are left to the services
// so that unknown ids, negative ones included, end up as not found.
func idParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}
