// Package httpresp writes success responses; failures go through httperr.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent answers updates and deletes that have nothing to return.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
