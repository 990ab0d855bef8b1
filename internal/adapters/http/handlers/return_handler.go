package handlers

import (
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReturnHandler handles stock return endpoints
type ReturnHandler struct {
	returnService *services.ReturnService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService *services.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// ChangeReturnStatusRequest moves a return to a new status
type ChangeReturnStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// Create creates a return and cancels its order
// @Summary Create a return
// @Description Creates the return record and cancels the referenced order
// @Tags Returns
// @Accept json
// @Produce json
// @Param body body services.CreateReturnInput true "Return data"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /returns/create-return [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var input services.CreateReturnInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.OrderID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	ret, err := h.returnService.Create(c.Context(), &input, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Created(c, "Return created successfully", ret)
}

// List returns all returns
// @Summary List returns
// @Tags Returns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	returns, err := h.returnService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Returns fetched successfully", returns)
}

// Search finds returns by invoice number substring
// @Summary Search returns
// @Tags Returns
// @Produce json
// @Param q query string true "Search term"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /returns/search [get]
func (h *ReturnHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	returns, err := h.returnService.Search(c.Context(), q)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Returns fetched successfully", returns)
}

// ChangeStatus moves one return to a new status
// @Summary Change return status
// @Tags Returns
// @Accept json
// @Produce json
// @Param body body ChangeReturnStatusRequest true "Return id and status"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /returns/change-return-status [post]
func (h *ReturnHandler) ChangeStatus(c *fiber.Ctx) error {
	var req ChangeReturnStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 || req.Status == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	ret, err := h.returnService.ChangeStatus(c.Context(), req.ID, req.Status, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReturnNotFound):
			return response.NotFound(c, "Return not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Return status updated successfully", ret)
}

// Delete removes one return permanently
// @Summary Delete a return
// @Tags Returns
// @Accept json
// @Produce json
// @Param body body IDRequest true "Return id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /returns/delete-return [post]
func (h *ReturnHandler) Delete(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	ret, err := h.returnService.Delete(c.Context(), req.ID, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReturnNotFound):
			return response.NotFound(c, "Return not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Return deleted successfully", ret)
}
