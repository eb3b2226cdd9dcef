package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lg/fitplan-go-api/internal/catalog"
	"lg/fitplan-go-api/internal/planner"
)

// postPlan computes metrics, a meal plan and workouts for the posted profile.
// POST /api/plan.
func (h *Handler) postPlan(c *gin.Context) {
	res, ok := h.computePlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// computePlan binds the request body, runs the planner and records metrics.
// On failure the error response has already been written and ok is false.
func (h *Handler) computePlan(c *gin.Context) (res *planner.Result, ok bool) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.plansTotal.WithLabelValues("unknown", "invalid").Inc()
		apiError(c, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	prof, err := req.toProfile()
	if err != nil {
		h.metrics.plansTotal.WithLabelValues(goalLabel(planner.Goal(req.Goal)), "invalid").Inc()
		h.planError(c, err)
		return nil, false
	}

	start := time.Now()
	res, err = h.planner.Plan(prof)
	h.metrics.planDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.plansTotal.WithLabelValues(goalLabel(prof.Goal), outcome(err)).Inc()
		h.planError(c, err)
		return nil, false
	}
	h.metrics.plansTotal.WithLabelValues(goalLabel(prof.Goal), "ok").Inc()
	return res, true
}

// planError maps planner errors onto HTTP statuses. Validation problems are
// 400, an exhausted meal pool is 422, anything else is logged and 500.
func (h *Handler) planError(c *gin.Context, err error) {
	var ice *planner.InsufficientCatalogError
	switch {
	case errors.Is(err, planner.ErrInvalidProfile), errors.Is(err, planner.ErrUnknownActivityLevel):
		apiError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &ice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"requested": ice.Requested,
			"available": ice.Available,
		})
	default:
		log.Printf("[planError] request %s: %v", c.GetString("request_id"), err)
		apiError(c, http.StatusInternalServerError, "failed to compute plan")
	}
}

// goalLabel keeps the goal metric label to the known set.
func goalLabel(g planner.Goal) string {
	if slices.Contains(planner.Goals, g) {
		return string(g)
	}
	return "unknown"
}

func outcome(err error) string {
	switch {
	case errors.Is(err, planner.ErrInvalidProfile), errors.Is(err, planner.ErrUnknownActivityLevel):
		return "invalid"
	case errors.Is(err, planner.ErrInsufficientCatalog):
		return "insufficient_catalog"
	default:
		return "error"
	}
}

// getMeals returns the catalog meals for a diet, minus restricted meals.
// GET /api/catalog/meals?diet=veg&exclude=egg,nuts. diet is required.
func (h *Handler) getMeals(c *gin.Context) {
	diet := planner.Diet(c.Query("diet"))
	if !slices.Contains(planner.Diets, diet) {
		apiError(c, http.StatusBadRequest, fmt.Sprintf("diet must be one of: %v", planner.Diets))
		return
	}
	meals := h.planner.FilterMeals(diet, planner.ParseRestrictions(c.Query("exclude")))
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}

// getWorkouts runs workout selection on its own.
// GET /api/catalog/workouts?goal=fat_loss&weeks=12. Both params required.
func (h *Handler) getWorkouts(c *gin.Context) {
	goal := planner.Goal(c.Query("goal"))
	if !slices.Contains(planner.Goals, goal) {
		apiError(c, http.StatusBadRequest, fmt.Sprintf("goal must be one of: %v", planner.Goals))
		return
	}
	weeks, err := strconv.ParseFloat(c.Query("weeks"), 64)
	if err != nil || math.IsNaN(weeks) || math.IsInf(weeks, 0) || weeks < 1 {
		apiError(c, http.StatusBadRequest, "weeks must be a number of at least 1")
		return
	}

	workouts, found := h.planner.SelectWorkouts(goal, weeks)
	if workouts == nil {
		workouts = []catalog.Workout{}
	}
	c.JSON(http.StatusOK, gin.H{
		"level":    planner.LevelForWeeks(weeks),
		"workouts": workouts,
		"found":    found,
	})
}

// getOptions lists the values the profile form may submit.
// GET /api/options.
func (h *Handler) getOptions(c *gin.Context) {
	activities := make([]activityOption, 0, len(planner.ActivityLevels))
	for _, a := range planner.ActivityLevels {
		m, _ := planner.Multiplier(a)
		activities = append(activities, activityOption{Key: a, Multiplier: m})
	}
	c.JSON(http.StatusOK, optionsResponse{
		Sexes:            []planner.Sex{planner.Male, planner.Female},
		ActivityLevels:   activities,
		Goals:            planner.Goals,
		Diets:            planner.Diets,
		MinMealsPerDay:   planner.MinMealsPerDay,
		MaxMealsPerDay:   planner.MaxMealsPerDay,
		AllergenMatching: h.planner.Policy().String(),
	})
}
