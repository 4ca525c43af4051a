package handlers

import (
	"errors"
	"net/http"

	"dayplanner/clock"
	"dayplanner/services/planner"
	"dayplanner/services/schedule"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var overlap *schedule.OverlapError
	switch {
	case errors.As(err, &overlap):
		getLogger(c).Info("Obligation rejected", zap.String("reason", overlap.Message))
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Obligation overlaps an existing one",
			"code":     overlap.Code,
			"message":  overlap.Message,
			"conflict": overlap.Conflict,
		})
	case errors.Is(err, schedule.ErrConcurrentUpdate):
		utils.JSONError(c, http.StatusConflict, "Schedule was modified concurrently, retry the request", err.Error())
	case errors.Is(err, schedule.ErrScheduleNotFound):
		utils.JSONError(c, http.StatusNotFound, "Schedule not found", err.Error())
	case errors.Is(err, schedule.ErrObligationNotFound):
		utils.JSONError(c, http.StatusNotFound, "Obligation not found", err.Error())
	case isBadInput(err):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func isBadInput(err error) bool {
	for _, target := range []error{
		schedule.ErrInvalidObligation,
		planner.ErrInvalidWindow,
		planner.ErrInvalidMealCount,
		planner.ErrInvalidDuration,
		clock.ErrInvalidFormat,
		clock.ErrOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
