package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"service-desk/middleware"
	"service-desk/models"
)

const internalErrorMessage = "An internal error occurred."

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Success: false, Message: message})
}

// respondInternal logs the cause and hides it from the client.
func respondInternal(c *gin.Context, op string, err error) {
	middleware.Logger(c).Error(op, "error", err)
	respondError(c, http.StatusInternalServerError, internalErrorMessage)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, "Invalid order ID")
		return 0, false
	}
	return id, true
}
