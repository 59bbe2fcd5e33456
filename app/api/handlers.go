package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/event-scout/app/database"
	"github.com/lysyi3m/event-scout/app/event"
)

func NewHandler(searcher EventSearcher, searchRepo database.SearchRepository, version string) *Handler {
	return &Handler{
		searcher:   searcher,
		searchRepo: searchRepo,
		version:    version,
		startedAt:  time.Now(),
	}
}

// GetEvents runs the pipeline for one category/location query. The
// response is always a well-formed envelope with HTTP 200; failures are
// carried in the envelope's success/error fields, not the status code.
func (h *Handler) GetEvents(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing category parameter"})
		return
	}

	location := c.DefaultQuery("location", "San Francisco, CA")

	limit := event.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	start := time.Now()
	resp := h.searcher.SearchEvents(c.Request.Context(), event.Query{
		Category: category,
		Location: location,
		Limit:    limit,
	})

	h.recordSearch(category, location, resp, time.Since(start))

	c.JSON(http.StatusOK, resp)
}

// recordSearch appends the invocation to the search log. Log failures are
// warned and dropped; they never fail the API response.
func (h *Handler) recordSearch(category, location string, resp event.Response, elapsed time.Duration) {
	err := h.searchRepo.RecordSearch(database.Search{
		Category:    category,
		Location:    location,
		Query:       category + " in " + location,
		Success:     resp.Success,
		ResultCount: resp.Count,
		LatencyMs:   elapsed.Milliseconds(),
		Error:       resp.Error,
	})
	if err != nil {
		slog.Warn("Failed to record search", "category", category, "error", err)
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	probeCtx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	provider := h.searcher.HealthStatus(probeCtx)

	health := gin.H{
		"status":    provider.Status,
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"version":   h.version,
		"provider":  provider,
	}

	if count, err := h.searchRepo.GetSearchCount(); err == nil {
		health["recorded_searches"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.searchRepo.GetStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	payload := gin.H{
		"total_searches": stats.Total,
		"succeeded":      stats.Succeeded,
		"failed":         stats.Failed,
		"avg_latency_ms": stats.AvgLatencyMs,
	}
	if stats.LastSearchAt != nil {
		payload["last_search_at"] = stats.LastSearchAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, payload)
}

func (h *Handler) APIListSearches(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	searches, err := h.searchRepo.GetRecentSearches(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_searches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	entries := make([]gin.H, 0, len(searches))
	for _, s := range searches {
		entries = append(entries, gin.H{
			"id":           s.ID,
			"category":     s.Category,
			"location":     s.Location,
			"query":        s.Query,
			"success":      s.Success,
			"result_count": s.ResultCount,
			"latency_ms":   s.LatencyMs,
			"error":        s.Error,
			"created_at":   s.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"searches": entries,
		"total":    len(entries),
	})
}
