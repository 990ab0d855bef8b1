package handlers

import (
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles purchase order endpoints
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ChangeOrderStatusRequest moves an order to a new status
type ChangeOrderStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// EditOrderRequest carries a flat partial update with the order id
type EditOrderRequest struct {
	ID uint `json:"id"`
	services.EditOrderInput
}

// Create creates a new order
// @Summary Create an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body services.CreateOrderInput true "Order data"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /orders/create-order [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.InvoiceNumber == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	order, err := h.orderService.Create(c.Context(), &input, actor)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Created(c, "Order created successfully", order)
}

// List returns active orders with paging and sorting
// @Summary List orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	orders, err := h.orderService.List(c.Context(), false, params)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Orders fetched successfully", orders)
}

// ListArchived returns archived orders
// @Summary List archived orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /orders/archived [get]
func (h *OrderHandler) ListArchived(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	orders, err := h.orderService.List(c.Context(), true, params)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Orders fetched successfully", orders)
}

// Search finds orders by invoice number or vendor substring
// @Summary Search orders
// @Tags Orders
// @Produce json
// @Param q query string true "Search term"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /orders/search [get]
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	orders, err := h.orderService.Search(c.Context(), q)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Orders fetched successfully", orders)
}

// ChangeStatus moves one order to a new status
// @Summary Change order status
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body ChangeOrderStatusRequest true "Order id and status"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /orders/change-order-status [post]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var req ChangeOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 || req.Status == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	order, err := h.orderService.ChangeStatus(c.Context(), req.ID, req.Status, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Order status changed successfully", order)
}

// Edit applies a partial update to one order
// @Summary Edit an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body EditOrderRequest true "Order id and fields to update"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /orders/edit-order [post]
func (h *OrderHandler) Edit(c *fiber.Ctx) error {
	var req EditOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	order, err := h.orderService.Edit(c.Context(), req.ID, &req.EditOrderInput, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Order updated successfully", order)
}

// Delete removes one order permanently
// @Summary Delete an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body IDRequest true "Order id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /orders/delete-order [post]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	order, err := h.orderService.Delete(c.Context(), req.ID, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Order deleted successfully", order)
}

// Archive flags one order as archived
// @Summary Archive an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param body body IDRequest true "Order id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /orders/archive-order [post]
func (h *OrderHandler) Archive(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	order, err := h.orderService.Archive(c.Context(), req.ID, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Order archived successfully", order)
}
