package health

import (
	"context"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/eleven-am/vision-backend/internal/dto"
	"github.com/eleven-am/vision-backend/internal/engine"
	"github.com/labstack/echo/v4"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type RuntimeStats struct {
	Goroutines         int    `json:"goroutines"`
	MemoryAllocMB      uint64 `json:"memory_alloc_mb"`
	MemoryTotalAllocMB uint64 `json:"memory_total_alloc_mb"`
	MemorySysMB        uint64 `json:"memory_sys_mb"`
	NumGC              uint32 `json:"num_gc"`
}

type RequestStats struct {
	TotalRequests     uint64 `json:"total_requests"`
	ActiveConnections int64  `json:"active_connections"`
}

type ReadinessResponse struct {
	Status        Status                         `json:"status"`
	Timestamp     time.Time                      `json:"timestamp"`
	Version       string                         `json:"version"`
	UptimeSeconds int64                          `json:"uptime_seconds"`
	Requests      RequestStats                   `json:"requests"`
	Runtime       RuntimeStats                   `json:"runtime"`
	Components    map[string]dto.ComponentStatus `json:"components"`
}

type Handler struct {
	engine    engine.Generator
	version   string
	startTime time.Time

	totalRequests     uint64
	activeConnections int64
}

func NewHandler(gen engine.Generator, version string) *Handler {
	return &Handler{
		engine:    gen,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Liveness)
	e.GET("/health/ready", h.Readiness)
	e.GET("/api/health", h.Health)
}

func (h *Handler) IncrementRequests() {
	atomic.AddUint64(&h.totalRequests, 1)
}

func (h *Handler) IncrementConnections() {
	atomic.AddInt64(&h.activeConnections, 1)
}

func (h *Handler) DecrementConnections() {
	atomic.AddInt64(&h.activeConnections, -1)
}

func (h *Handler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// @Summary      Service health
// @Description  Reports service health and whether the inference engine is reachable with its model loaded
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	loaded := h.engine.IsAvailable(ctx)

	status := "healthy"
	if !loaded {
		status = "unhealthy"
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      status,
		ModelLoaded: loaded,
		Version:     h.version,
	})
}

func (h *Handler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	components := map[string]dto.ComponentStatus{
		"engine": h.checkEngine(ctx),
	}

	overallStatus := StatusHealthy
	for _, component := range components {
		if component.Status != string(StatusHealthy) {
			overallStatus = StatusUnhealthy
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	resp := ReadinessResponse{
		Status:        overallStatus,
		Timestamp:     time.Now().UTC(),
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Requests: RequestStats{
			TotalRequests:     atomic.LoadUint64(&h.totalRequests),
			ActiveConnections: atomic.LoadInt64(&h.activeConnections),
		},
		Runtime: RuntimeStats{
			Goroutines:         runtime.NumGoroutine(),
			MemoryAllocMB:      memStats.Alloc / 1024 / 1024,
			MemoryTotalAllocMB: memStats.TotalAlloc / 1024 / 1024,
			MemorySysMB:        memStats.Sys / 1024 / 1024,
			NumGC:              memStats.NumGC,
		},
		Components: components,
	}

	statusCode := http.StatusOK
	if overallStatus == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, resp)
}

func (h *Handler) checkEngine(ctx context.Context) dto.ComponentStatus {
	start := time.Now()
	if h.engine == nil {
		return dto.ComponentStatus{
			Status:    string(StatusUnhealthy),
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     "engine not configured",
		}
	}

	if !h.engine.IsAvailable(ctx) {
		return dto.ComponentStatus{
			Status:    string(StatusUnhealthy),
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     "engine unreachable",
		}
	}

	return dto.ComponentStatus{
		Status:    string(StatusHealthy),
		LatencyMs: time.Since(start).Milliseconds(),
	}
}
