package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dayplanner/clock"
	"dayplanner/models"
	"dayplanner/services/planner"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recommendation endpoints answer 200 even when nothing can be recommended; the body then
// carries an empty value and a reason. Free slots, meals and workouts work on one day's
// timeline and require ?day=; sleep without a day is based on the whole week.

func (h *ScheduleHandler) FreeSlotsHandler(c *gin.Context) {
	day, err := queryDay(c, true)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}
	window, err := queryWindow(c, "start", "end", planner.FullDay)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid window", err.Error())
		return
	}
	free, err := h.Service.FreeSlots(c.Request.Context(), c.Param("id"), day, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "window": window, "freeSlots": free})
}

func (h *ScheduleHandler) SleepHandler(c *gin.Context) {
	day, err := queryDay(c, false)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}
	policy, err := h.sleepPolicy(c.Query("policy"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sleep policy", err.Error())
		return
	}
	sleep, err := h.Service.Sleep(c.Request.Context(), c.Param("id"), day, policy)
	if ok := absent(c, err, gin.H{"day": day, "sleep": nil}); ok {
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "sleep": sleep})
}

// MealsHandler uses wake/bedtime when both are given and the sleep recommendation otherwise.
func (h *ScheduleHandler) MealsHandler(c *gin.Context) {
	day, err := queryDay(c, true)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}
	n, err := queryInt(c, "meals", h.Service.Options().Meals)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid meal count", err.Error())
		return
	}
	var awake *planner.Window
	if c.Query("wake") != "" || c.Query("bedtime") != "" {
		w, err := queryWindow(c, "wake", "bedtime", planner.Window{})
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid awake window", err.Error())
			return
		}
		awake = &w
	}
	meals, err := h.Service.Meals(c.Request.Context(), c.Param("id"), day, awake, n)
	if ok := absent(c, err, gin.H{"day": day, "meals": []clock.TimeOfDay{}}); ok {
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "meals": meals})
}

func (h *ScheduleHandler) WorkoutHandler(c *gin.Context) {
	day, err := queryDay(c, true)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}
	minutes, err := queryInt(c, "minutes", h.Service.Options().WorkoutMinutes)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid duration", err.Error())
		return
	}
	window, err := queryWindow(c, "start", "end", planner.WorkoutWindow)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid window", err.Error())
		return
	}
	workout, err := h.Service.Workout(c.Request.Context(), c.Param("id"), day, minutes, window)
	if ok := absent(c, err, gin.H{"day": day, "workout": nil}); ok {
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "workout": workout})
}

func (h *ScheduleHandler) PlanHandler(c *gin.Context) {
	day, err := queryDay(c, true)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}
	opts := h.Service.Options()
	if opts.Meals, err = queryInt(c, "meals", opts.Meals); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid meal count", err.Error())
		return
	}
	if opts.WorkoutMinutes, err = queryInt(c, "workout", opts.WorkoutMinutes); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid duration", err.Error())
		return
	}
	if policy, err := h.sleepPolicy(c.Query("policy")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sleep policy", err.Error())
		return
	} else if policy != nil {
		opts.Sleep = policy
	}

	plan, err := h.Service.Plan(c.Request.Context(), c.Param("id"), day, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type applyPlanRequest struct {
	Blocks []models.RecommendedBlock `json:"blocks" binding:"required"`
}

// ApplyPlanHandler appends recommended blocks to the schedule without overlap checks.
func (h *ScheduleHandler) ApplyPlanHandler(c *gin.Context) {
	var req applyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	added, err := h.Service.ApplyPlan(c.Request.Context(), c.Param("id"), req.Blocks)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Recommended blocks applied",
		zap.String("scheduleID", c.Param("id")),
		zap.Int("count", len(added)),
	)
	c.JSON(http.StatusOK, gin.H{"obligations": added})
}

func (h *ScheduleHandler) sleepPolicy(name string) (planner.SleepPolicy, error) {
	minutes := planner.DefaultSleepMinutes
	if p, ok := h.Service.Options().Sleep.(planner.LatestEndPolicy); ok && p.Minutes > 0 {
		minutes = p.Minutes
	} else if p, ok := h.Service.Options().Sleep.(planner.FreeWindowPolicy); ok && p.Minutes > 0 {
		minutes = p.Minutes
	}
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "latest-end":
		return planner.LatestEndPolicy{Minutes: minutes}, nil
	case "free-window":
		return planner.FreeWindowPolicy{Minutes: minutes}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want latest-end or free-window)", name)
	}
}

// absent writes a 200 with a reason when err only means "nothing to recommend".
func absent(c *gin.Context, err error, body gin.H) bool {
	if err == nil || !planner.IsNoResult(err) {
		return false
	}
	body["reason"] = err.Error()
	c.JSON(http.StatusOK, body)
	return true
}

func queryDay(c *gin.Context, required bool) (models.DayOfWeek, error) {
	raw := c.Query("day")
	if raw == "" && !required {
		return "", nil
	}
	return models.ParseDayOfWeek(raw)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// queryWindow reads a window from two query keys; a missing key keeps the default.
func queryWindow(c *gin.Context, startKey, endKey string, def planner.Window) (planner.Window, error) {
	w := def
	if raw := c.Query(startKey); raw != "" {
		t, err := clock.Parse(raw)
		if err != nil {
			return planner.Window{}, fmt.Errorf("%s: %w", startKey, err)
		}
		w.Start = t
	}
	if raw := c.Query(endKey); raw != "" {
		t, err := clock.ParseBoundary(raw)
		if err != nil {
			return planner.Window{}, fmt.Errorf("%s: %w", endKey, err)
		}
		w.End = t
	}
	return w, nil
}
