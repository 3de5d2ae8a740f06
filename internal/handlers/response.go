package handlers

import (
  "github.com/gin-gonic/gin"
)

// Every endpoint shares the success-flag envelope: {success: true, ...} or
// {success: false, error: "..."} with a non-200 status.
func RespondError(c *gin.Context, status int, message string) {
  c.JSON(status, gin.H{
    "success": false,
    "error":   message,
  })
}
