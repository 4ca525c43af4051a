package handlers

import (
	"net/http"

	"dayplanner/clock"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm dayplanner",
		"dependencies": utils.GetHealthStatus(),
	})
}

type parseTimeRequest struct {
	Time string `json:"time"`
}

// ParseTimeHandler never fails on bad input: it answers 00:00 with a warning.
func ParseTimeHandler(c *gin.Context) {
	var req parseTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	t, warning := clock.ParseOrZero(req.Time)
	resp := gin.H{
		"time":  t,
		"hours": t.Hours(),
	}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
