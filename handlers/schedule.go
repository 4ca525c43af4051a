package handlers

import (
	"net/http"

	"dayplanner/models"
	"dayplanner/services/schedule"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	sch, err := h.Service.CreateSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Schedule created", zap.String("scheduleID", sch.ID))
	c.JSON(http.StatusCreated, sch.View())
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	sch, err := h.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch.View())
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

func (h *ScheduleHandler) AddObligationHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var in models.ObligationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid obligation payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	o, warnings, err := h.Service.AddObligation(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Obligation added",
		zap.String("scheduleID", id),
		zap.String("obligationID", o.ID),
		zap.String("day", string(o.Day)),
	)
	c.JSON(http.StatusCreated, gin.H{"obligation": o, "warnings": warnings})
}

// EditObligationHandler replaces the whole obligation.
func (h *ScheduleHandler) EditObligationHandler(c *gin.Context) {
	var in models.ObligationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	o, warnings, err := h.Service.EditObligation(c.Request.Context(), c.Param("id"), c.Param("obligationID"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"obligation": o, "warnings": warnings})
}

func (h *ScheduleHandler) DeleteObligationHandler(c *gin.Context) {
	if err := h.Service.DeleteObligation(c.Request.Context(), c.Param("id"), c.Param("obligationID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Obligation deleted"})
}

// ClearObligationsHandler empties the week and the custom colors.
func (h *ScheduleHandler) ClearObligationsHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.ClearObligations(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Schedule cleared", zap.String("scheduleID", id))
	c.JSON(http.StatusOK, gin.H{"message": "Schedule cleared"})
}

type setColorRequest struct {
	Label string `json:"label" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (h *ScheduleHandler) SetColorHandler(c *gin.Context) {
	var req setColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	sch, err := h.Service.SetColor(c.Request.Context(), c.Param("id"), req.Label, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch.View())
}
