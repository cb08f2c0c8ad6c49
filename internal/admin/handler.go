// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/precinct/internal/core"
)

// Counter reports how many records a collection currently holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	users      Counter
	cases      Counter
	obEntries  Counter
	plates     Counter
	sessions   Counter
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
}

type HandlerConfig struct {
	Users      Counter
	Cases      Counter
	OBEntries  Counter
	Plates     Counter
	Sessions   Counter
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:      cfg.Users,
		cases:      cfg.Cases,
		obEntries:  cfg.OBEntries,
		plates:     cfg.Plates,
		sessions:   cfg.Sessions,
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	redisHealthy := true
	if h.redisPing != nil {
		if err := h.redisPing(ctx); err != nil {
			redisHealthy = false
		}
	}

	response := SystemStatsResponse{
		Records: RecordCounts{
			Users:         h.count(ctx, h.users),
			Cases:         h.count(ctx, h.cases),
			OBEntries:     h.count(ctx, h.obEntries),
			LicensePlates: h.count(ctx, h.plates),
			Sessions:      h.count(ctx, h.sessions),
		},
		Redis: RedisStatus{
			Configured: h.redisStats != nil,
			Healthy:    redisHealthy,
			Stats:      h.getRedisStats(),
		},
		Runtime: readRuntimeStats(),
	}

	core.OK(w, response)
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, readRuntimeStats())
}

func (h *Handler) count(ctx context.Context, c Counter) int {
	if c == nil {
		return 0
	}
	n, err := c.Count(ctx)
	if err != nil {
		return 0
	}
	return n
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

func readRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

type SystemStatsResponse struct {
	Records RecordCounts `json:"records"`
	Redis   RedisStatus  `json:"redis"`
	Runtime RuntimeStats `json:"runtime"`
}

type RecordCounts struct {
	Users         int `json:"users"`
	Cases         int `json:"cases"`
	OBEntries     int `json:"obEntries"`
	LicensePlates int `json:"licensePlates"`
	Sessions      int `json:"sessions"`
}

type RedisStatus struct {
	Configured bool            `json:"configured"`
	Healthy    bool            `json:"healthy"`
	Stats      *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
