package routes

import (
	"time"

	"dayplanner/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterTimeRoutes registers the stateless time helpers.
func RegisterTimeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/time")
	{
		api.POST("/parse", hb.ParseTimeHandler)
	}
}

// RegisterScheduleRoutes registers session, obligation and recommendation endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.POST("", hb.CreateScheduleHandler)
		api.GET("/:id", hb.GetScheduleHandler)
		api.DELETE("/:id", hb.DeleteScheduleHandler)
		api.PUT("/:id/colors", hb.SetColorHandler)

		obligations := api.Group("/:id/obligations")
		obligations.POST("", hb.AddObligationHandler)
		obligations.DELETE("", hb.ClearObligationsHandler)
		obligations.PUT("/:obligationID", hb.EditObligationHandler)
		obligations.DELETE("/:obligationID", hb.DeleteObligationHandler)

		api.GET("/:id/free-slots", hb.FreeSlotsHandler)
		api.GET("/:id/sleep", hb.SleepHandler)
		api.GET("/:id/meals", hb.MealsHandler)
		api.GET("/:id/workout", hb.WorkoutHandler)
		api.GET("/:id/plan", hb.PlanHandler)
		api.POST("/:id/plan/apply", hb.ApplyPlanHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterTimeRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
