package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lg/fitplan-go-api/internal/planner"
)

// Handler holds shared dependencies (planner, metrics) for all route handlers.
type Handler struct {
	planner  *planner.Planner
	metrics  *metrics
	gatherer prometheus.Gatherer
}

// newHandler wires a Handler around p and registers its metrics on reg.
func newHandler(p *planner.Planner, reg *prometheus.Registry) *Handler {
	m := newMetrics(reg)
	m.catalogSize.WithLabelValues("meals").Set(float64(len(p.Catalog().Meals())))
	m.catalogSize.WithLabelValues("workouts").Set(float64(len(p.Catalog().Workouts())))
	return &Handler{planner: p, metrics: m, gatherer: reg}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.GET("/options", h.getOptions)
	api.POST("/plan", h.postPlan)
	api.POST("/plan/export", h.exportPlan)
	api.GET("/catalog/meals", h.getMeals)
	api.GET("/catalog/workouts", h.getWorkouts)
}
