package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bus_transport/internal/apperrors"
)

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// writeError is the single place where errors become HTTP responses.
// Anything that is neither a validation failure nor a missing route,
// undecodable bodies and path ids included, is reported as a 500.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.RouteNotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"timestamp": timestamp(),
			"status":    http.StatusBadRequest,
			"error":     "Validation Failed",
			"errors":    validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"timestamp": timestamp(),
			"status":    http.StatusNotFound,
			"error":     http.StatusText(http.StatusNotFound),
			"message":   notFoundErr.Error(),
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"timestamp": timestamp(),
			"status":    http.StatusInternalServerError,
			"error":     http.StatusText(http.StatusInternalServerError),
			"message":   "An unexpected error occurred: " + err.Error(),
		})
	}
}

// Recover renders a recovered panic as the generic 500 body.
func Recover(c *gin.Context, recovered any) {
	writeError(c, fmt.Errorf("%v", recovered))
}

// NoRoute answers unknown paths with the not-found body shape.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"timestamp": timestamp(),
		"status":    http.StatusNotFound,
		"error":     http.StatusText(http.StatusNotFound),
		"message":   "No handler found for " + c.Request.Method + " " + c.Request.URL.Path,
	})
}
