package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finoraid/finora_backend/internal/apperrors"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/internal/dto"
	"github.com/finoraid/finora_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reminderHandler serves derived reminders and their snoozes.
type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

func newReminderHandler(rs portssvc.ReminderSvcFacade) *reminderHandler {
	return &reminderHandler{
		reminderService: rs,
	}
}

// registerReminderRoutes registers reminder listing and snoozing routes.
func registerReminderRoutes(rg *gin.RouterGroup, reminderService portssvc.ReminderSvcFacade) {
	h := newReminderHandler(reminderService)

	reminders := rg.Group("/reminders")
	{
		reminders.GET("", h.listReminders)
		reminders.POST("/:id/snooze", h.snoozeReminder)
	}
}

// listReminders returns the user's current reminders, most urgent first.
func (h *reminderHandler) listReminders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reminders, err := h.reminderService.ListReminders(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list reminders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// snoozeReminder hides one reminder until the given date.
func (h *reminderHandler) snoozeReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reminderID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SnoozeReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for snooze reminder request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.reminderService.SnoozeReminder(c.Request.Context(), userID, reminderID, req.SnoozedUntil); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to snooze reminder", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to snooze reminder"})
		return
	}

	c.Status(http.StatusNoContent)
}
