package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/nuribostan/abTestYazilim/docs"
	"github.com/nuribostan/abTestYazilim/internal/dto"
	"github.com/nuribostan/abTestYazilim/internal/service"
)

type Handler struct {
	eventService  service.EventServicer
	configService service.ConfigServicer
	statsService  service.StatsServicer
	router        *gin.Engine
	log           *zap.Logger
}

func NewHandler(eventService service.EventServicer, configService service.ConfigServicer, statsService service.StatsServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService:  eventService,
		configService: configService,
		statsService:  statsService,
		router:        gin.Default(),
		log:           log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	v1 := h.router.Group("/v1")
	v1.GET("/projects/:projectId/config", h.getProjectConfig)
	v1.GET("/projects/:projectId/metrics/daily", h.getDailyMetrics)
	v1.GET("/experiments/:experimentId/stats/daily", h.getDailyStats)
	v1.POST("/events", h.publishEvent)

	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// getProjectConfig handles GET /v1/projects/:projectId/config
// @Summary Get project configuration snapshot
// @Description Running experiments with their variants and project goals, for client SDKs
// @Tags config
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.ProjectConfigResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/config [get]
func (h *Handler) getProjectConfig(c *gin.Context) {
	projectID := c.Param("projectId")

	resp, err := h.configService.GetProjectConfig(c.Request.Context(), projectID)
	if err != nil {
		h.log.Error("Failed to build project config",
			zap.Error(err),
			zap.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDailyStats handles GET /v1/experiments/:experimentId/stats/daily
// @Summary Get daily experiment stats
// @Description Aggregated impressions, conversions and revenue per UTC day
// @Tags stats
// @Produce json
// @Param experimentId path string true "Experiment ID"
// @Param from query string true "Start date (YYYY-MM-DD)" example:"2026-03-01"
// @Param to query string true "End date (YYYY-MM-DD)" example:"2026-03-14"
// @Success 200 {object} dto.GetDailyStatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/experiments/{experimentId}/stats/daily [get]
func (h *Handler) getDailyStats(c *gin.Context) {
	experimentID := c.Param("experimentId")

	var req dto.GetDailyStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid daily stats request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.statsService.GetDailyStats(c.Request.Context(), experimentID, &req)
	if err != nil {
		h.log.Error("Failed to read daily stats",
			zap.Error(err),
			zap.String("experiment_id", experimentID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDailyMetrics handles GET /v1/projects/:projectId/metrics/daily
// @Summary Get daily event metrics
// @Description Per-day event counts and unique visitor counts from the event sink
// @Tags metrics
// @Produce json
// @Param projectId path string true "Project ID"
// @Param event_type query string true "Event type to filter by" example:"EXPERIMENT_VIEW"
// @Param from query int true "Start timestamp (Unix epoch)" example:"1723475612"
// @Param to query int true "End timestamp (Unix epoch)" example:"1723562012"
// @Success 200 {object} dto.GetDailyMetricsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{projectId}/metrics/daily [get]
func (h *Handler) getDailyMetrics(c *gin.Context) {
	projectID := c.Param("projectId")

	var req dto.GetDailyMetricsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid metrics request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.statsService.GetDailyMetrics(c.Request.Context(), projectID, &req)
	if err != nil {
		h.log.Error("Failed to read daily metrics",
			zap.Error(err),
			zap.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// publishEvent handles POST /v1/events
// @Summary Publish a single event
// @Description Publish one instrumentation event into the ingestion queue
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PublishEventRequest true "Event data"
// @Success 202 {object} dto.PublishEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/events [post]
func (h *Handler) publishEvent(c *gin.Context) {
	var req dto.PublishEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.eventService.PublishEvent(c.Request.Context(), &req); err != nil {
		h.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("event_type", req.EventType),
			zap.String("project_id", req.ProjectID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Event accepted",
		zap.String("event_type", req.EventType),
		zap.String("project_id", req.ProjectID))

	c.JSON(http.StatusAccepted, dto.PublishEventResponse{
		Status: "accepted",
	})
}
