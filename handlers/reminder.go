package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"theyool/services/tasks"
	"theyool/utils"
)

// ReminderHandler exposes the cron-triggered reminder run. Authorization
// happens in the cron middleware, before any booking is touched.
type ReminderHandler struct {
	Job    *tasks.ReminderJob
	Logger *zap.Logger
}

func NewReminderHandler(job *tasks.ReminderJob, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{Job: job, Logger: logger}
}

// SendReminders runs the daily reminder batch and reports the aggregate.
func (h *ReminderHandler) SendReminders(c *gin.Context) {
	report, err := h.Job.Run(c.Request.Context())
	if err != nil {
		h.Logger.Error("reminder run failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Reminder notification failed", err.Error())
		return
	}

	message := "Reminder notifications completed"
	if report.TotalBookings == 0 {
		message = "No bookings scheduled for tomorrow"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        message,
		"total_bookings": report.TotalBookings,
		"sent":           report.Sent,
		"failed":         report.Failed,
		"details":        report.Details,
	})
}
