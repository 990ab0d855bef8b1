package handlers

import (
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LogHandler handles audit log endpoints
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// List returns audit logs filtered by type and status
// @Summary List logs
// @Description type=ALL&status=ALL returns everything; type=ALL filters by status; otherwise filters by type
// @Tags Logs
// @Produce json
// @Param type query string false "Log type or ALL"
// @Param status query string false "UNREAD, READ or ALL"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	logType := c.Query("type", "ALL")
	status := c.Query("status", "ALL")
	params := pagination.GetParams(c, pagination.DefaultLogLimit)

	logs, err := h.logService.List(c.Context(), logType, status, params)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Logs fetched successfully", logs)
}

// MarkAsRead flags one log entry as read
// @Summary Mark a log as read
// @Tags Logs
// @Accept json
// @Produce json
// @Param body body IDRequest true "Log id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /logs/mark-as-read [post]
func (h *LogHandler) MarkAsRead(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	entry, err := h.logService.MarkAsRead(c.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			return response.NotFound(c, "Log not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Log marked as read successfully", entry)
}

// Delete removes one log entry
// @Summary Delete a log
// @Tags Logs
// @Accept json
// @Produce json
// @Param body body IDRequest true "Log id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /logs/delete-log [post]
func (h *LogHandler) Delete(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	entry, err := h.logService.Delete(c.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			return response.NotFound(c, "Log not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Log deleted successfully", entry)
}

// DeleteRead removes every log entry already marked as read
// @Summary Delete read logs
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /logs/delete-read-logs [post]
func (h *LogHandler) DeleteRead(c *fiber.Ctx) error {
	if err := h.logService.DeleteRead(c.Context()); err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Logs deleted successfully", nil)
}
