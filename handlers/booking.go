package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"theyool/models"
	"theyool/services/booking"
	"theyool/utils"
)

// BookingHandler exposes the consultation booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type createBookingRequest struct {
	Type           string `json:"type" binding:"required,oneof=phone visit video"`
	Name           string `json:"name" binding:"required,min=2,max=50"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Category       string `json:"category"`
	Message        string `json:"message"`
	PreferredDate  string `json:"preferred_date" binding:"required"`
	PreferredTime  string `json:"preferred_time" binding:"required"`
	OfficeLocation string `json:"office_location" binding:"omitempty,oneof=천안 평택"`
	Source         string `json:"source"`
	UTMSource      string `json:"utm_source"`
	UTMMedium      string `json:"utm_medium"`
	UTMCampaign    string `json:"utm_campaign"`
}

// CreateBooking handles the public consultation submission.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "입력값이 올바르지 않습니다", err.Error())
		return
	}

	created, notif, err := h.Service.Create(c.Request.Context(), booking.CreateBookingInput{
		Type:           models.BookingType(req.Type),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Category:       req.Category,
		Message:        req.Message,
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		OfficeLocation: req.OfficeLocation,
		Source:         req.Source,
		UTMSource:      req.UTMSource,
		UTMMedium:      req.UTMMedium,
		UTMCampaign:    req.UTMCampaign,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidPhone):
			utils.JSONError(c, http.StatusBadRequest, "올바른 전화번호를 입력하세요", err.Error())
		case errors.Is(err, booking.ErrMissingOffice):
			utils.JSONError(c, http.StatusBadRequest, "사무소를 선택해주세요", err.Error())
		case errors.Is(err, booking.ErrInvalidSlotFormat):
			utils.JSONError(c, http.StatusBadRequest, "날짜 또는 시간 형식이 올바르지 않습니다", err.Error())
		case errors.Is(err, booking.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusConflict, "선택하신 시간은 예약할 수 없습니다. 다른 시간을 선택해주세요", err.Error())
		default:
			h.Logger.Error("create booking failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "서버 오류가 발생했습니다", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"data":     created,
		"message":  "상담 신청이 완료되었습니다",
		"notified": notif.Success,
	})
}

// ListBookings returns bookings matching the admin filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filters models.BookingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filters", err.Error())
		return
	}

	bookings, err := h.Service.List(c.Request.Context(), filters)
	if err != nil {
		h.Logger.Error("list bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"count":   len(bookings),
	})
}

// GetBooking returns a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		h.Logger.Error("get booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// ConfirmBooking moves a pending booking to confirmed.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.Service.Confirm)
}

// CancelBooking moves a pending or confirmed booking to cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.Service.Cancel)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error)) {
	updated, notif, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		case errors.Is(err, booking.ErrTerminalState):
			utils.JSONError(c, http.StatusConflict, "booking is in a terminal state", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
		default:
			h.Logger.Error("booking transition failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         updated,
		"notification": notif,
	})
}

type updateNotesRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// UpdateBookingNotes sets the administrator notes on a booking.
func (h *BookingHandler) UpdateBookingNotes(c *gin.Context) {
	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateNotes(c.Request.Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		h.Logger.Error("update booking notes failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}
