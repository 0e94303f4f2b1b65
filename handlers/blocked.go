package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"theyool/models"
	"theyool/services/blockedtime"
	"theyool/utils"
)

// BlockedTimeHandler exposes the admin blocked-time management endpoints.
type BlockedTimeHandler struct {
	Service blockedtime.BlockedTimeService
	Logger  *zap.Logger
}

func NewBlockedTimeHandler(svc blockedtime.BlockedTimeService, logger *zap.Logger) *BlockedTimeHandler {
	return &BlockedTimeHandler{Service: svc, Logger: logger}
}

type createBlockedTimeRequest struct {
	BlockType        string `json:"block_type" binding:"required,oneof=date time_slot"`
	BlockedDate      string `json:"blocked_date" binding:"required"`
	BlockedTimeStart string `json:"blocked_time_start"`
	BlockedTimeEnd   string `json:"blocked_time_end"`
	OfficeLocation   string `json:"office_location" binding:"omitempty,oneof=천안 평택"`
	Reason           string `json:"reason"`
}

// CreateBlockedTime stores a new availability block.
func (h *BlockedTimeHandler) CreateBlockedTime(c *gin.Context) {
	var req createBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block, err := h.Service.Create(c.Request.Context(), blockedtime.CreateInput{
		BlockType:        models.BlockType(req.BlockType),
		BlockedDate:      req.BlockedDate,
		BlockedTimeStart: req.BlockedTimeStart,
		BlockedTimeEnd:   req.BlockedTimeEnd,
		OfficeLocation:   req.OfficeLocation,
		Reason:           req.Reason,
		CreatedBy:        c.GetString("adminToken"),
	})
	if err != nil {
		switch {
		case errors.Is(err, blockedtime.ErrInvalidRange),
			errors.Is(err, blockedtime.ErrMissingRange),
			errors.Is(err, blockedtime.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid blocked time", err.Error())
		default:
			h.Logger.Error("create blocked time failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create blocked time", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "blockedTime": block})
}

// ListBlockedTimes returns blocks matching the admin filters.
func (h *BlockedTimeHandler) ListBlockedTimes(c *gin.Context) {
	var filters models.BlockedTimeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filters", err.Error())
		return
	}

	blocks, err := h.Service.List(c.Request.Context(), filters)
	if err != nil {
		h.Logger.Error("list blocked times failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch blocked times", "")
		return
	}
	if blocks == nil {
		blocks = []models.BlockedTime{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blockedTimes": blocks})
}

// DeleteBlockedTime removes a block by id.
func (h *BlockedTimeHandler) DeleteBlockedTime(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, blockedtime.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "blocked time not found", "")
			return
		}
		h.Logger.Error("delete blocked time failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete blocked time", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
