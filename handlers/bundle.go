// File: dayplanner/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Utility endpoints
	HealthHandler    gin.HandlerFunc
	ParseTimeHandler gin.HandlerFunc

	// Schedule endpoints
	CreateScheduleHandler gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc
	SetColorHandler       gin.HandlerFunc

	// Obligation endpoints
	AddObligationHandler    gin.HandlerFunc
	EditObligationHandler   gin.HandlerFunc
	DeleteObligationHandler gin.HandlerFunc
	ClearObligationsHandler gin.HandlerFunc

	// Recommendation endpoints
	FreeSlotsHandler gin.HandlerFunc
	SleepHandler     gin.HandlerFunc
	MealsHandler     gin.HandlerFunc
	WorkoutHandler   gin.HandlerFunc
	PlanHandler      gin.HandlerFunc
	ApplyPlanHandler gin.HandlerFunc
}

// NewHandlerBundle wires the schedule handler into a bundle.
func NewHandlerBundle(h *ScheduleHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler:    HealthHandler,
		ParseTimeHandler: ParseTimeHandler,

		CreateScheduleHandler: h.CreateScheduleHandler,
		GetScheduleHandler:    h.GetScheduleHandler,
		DeleteScheduleHandler: h.DeleteScheduleHandler,
		SetColorHandler:       h.SetColorHandler,

		AddObligationHandler:    h.AddObligationHandler,
		EditObligationHandler:   h.EditObligationHandler,
		DeleteObligationHandler: h.DeleteObligationHandler,
		ClearObligationsHandler: h.ClearObligationsHandler,

		FreeSlotsHandler: h.FreeSlotsHandler,
		SleepHandler:     h.SleepHandler,
		MealsHandler:     h.MealsHandler,
		WorkoutHandler:   h.WorkoutHandler,
		PlanHandler:      h.PlanHandler,
		ApplyPlanHandler: h.ApplyPlanHandler,
	}
}
