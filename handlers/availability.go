package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"theyool/models"
	"theyool/services/booking"
	"theyool/utils"
)

// Availability responses change only when blocks change or the clock
// advances past a slot boundary, so a short cache TTL is safe.
const availabilityCacheTTL = 60 * time.Second

// AvailabilityHandler serves the public slot listing endpoints.
type AvailabilityHandler struct {
	Service booking.BookingService
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc booking.BookingService, cache *redis.Client, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Cache: cache, Logger: logger}
}

// GetAvailability returns the bookable window for an office.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	office := c.Query("office")
	cacheKey := fmt.Sprintf("availability:window:%s", office)

	if cached, ok := h.fromCache(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	days, err := h.Service.Availability(c.Request.Context(), office)
	if err != nil {
		h.Logger.Error("availability resolution failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}
	if days == nil {
		days = []models.DaySlots{}
	}

	h.respondCached(c, cacheKey, gin.H{"success": true, "days": days})
}

// GetAvailableSlots returns one date's grid with availability flags.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)", "")
		return
	}
	office := c.Query("office")
	cacheKey := fmt.Sprintf("availability:slots:%s:%s", date, office)

	if cached, ok := h.fromCache(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	slots, err := h.Service.SlotsForDate(c.Request.Context(), date, office)
	if err != nil {
		h.Logger.Error("slot listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute available slots", "")
		return
	}

	h.respondCached(c, cacheKey, gin.H{"success": true, "date": date, "slots": slots})
}

func (h *AvailabilityHandler) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if h.Cache == nil {
		return nil, false
	}
	data, err := h.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (h *AvailabilityHandler) respondCached(c *gin.Context, key string, payload gin.H) {
	data, err := json.Marshal(payload)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to marshal response", "")
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(c.Request.Context(), key, data, availabilityCacheTTL).Err(); err != nil {
			h.Logger.Warn("availability cache write failed", zap.Error(err))
		}
	}
	c.Data(http.StatusOK, "application/json", data)
}
