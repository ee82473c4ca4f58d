package handlers

import (
	"errors"
	"net/http"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/gin-gonic/gin"
)

// Every response uses the {success, data|message} envelope; list endpoints
// add a pagination object next to data.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondError is the single error translator: apperror carries its own
// status, anything else becomes a logged 500 with a generic message.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"success": false, "message": appErr.Message})
		return
	}

	h.Log.Errorw("unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
