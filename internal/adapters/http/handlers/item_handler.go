package handlers

import (
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles inventory item endpoints
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// UpdateItemRequest carries a partial update for one item
type UpdateItemRequest struct {
	ID   uint                      `json:"id"`
	Data *services.UpdateItemInput `json:"data"`
}

// UseItemRequest decrements stock of one item
type UseItemRequest struct {
	ID         uint `json:"id"`
	UsedAmount int  `json:"usedAmount"`
}

// ArchiveItemRequest toggles the archived flag of one item
type ArchiveItemRequest struct {
	ID         uint `json:"id"`
	IsArchived bool `json:"isArchived"`
}

// IDRequest identifies one record by id
type IDRequest struct {
	ID uint `json:"id"`
}

// AddCategoryRequest carries a new category name
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// List returns active items with paging and sorting
// @Summary List items
// @Tags Items
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sortby query string false "Sort column"
// @Param sortorder query string false "asc or desc"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	items, err := h.itemService.List(c.Context(), false, params)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Items fetched successfully", items)
}

// ListArchived returns archived items with paging and sorting
// @Summary List archived items
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items/archived [get]
func (h *ItemHandler) ListArchived(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.DefaultLimit)

	items, err := h.itemService.List(c.Context(), true, params)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Items fetched successfully", items)
}

// Search finds items by name or sku substring
// @Summary Search items
// @Tags Items
// @Produce json
// @Param q query string true "Search term"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /items/search [get]
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	items, err := h.itemService.Search(c.Context(), q)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Items fetched successfully", items)
}

// Warnings returns low-stock and near-expiry items
// @Summary Item warnings
// @Description Low-stock items followed by items expiring within 30 days
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items/warning [get]
func (h *ItemHandler) Warnings(c *fiber.Ctx) error {
	items, err := h.itemService.Warnings(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Items fetched successfully", items)
}

// Create creates a new item
// @Summary Create an item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body services.CreateItemInput true "Item data"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /items/create-item [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var input services.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Name == "" || input.Qty == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	item, err := h.itemService.Create(c.Context(), &input, actor)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Created(c, "Item created successfully", item)
}

// Update applies a partial update to one item
// @Summary Update an item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body UpdateItemRequest true "Item id and fields to update"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/update-item [post]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}
	if req.Data == nil {
		req.Data = &services.UpdateItemInput{}
	}

	actor, _ := c.Locals("username").(string)

	item, err := h.itemService.Update(c.Context(), req.ID, req.Data, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Item updated successfully", item)
}

// Delete removes one item permanently
// @Summary Delete an item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body IDRequest true "Item id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/delete-item [post]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	item, err := h.itemService.Delete(c.Context(), req.ID, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Item deleted successfully", item)
}

// Use decrements stock of one item
// @Summary Use an item
// @Description Decrements quantity; refuses when stock is insufficient
// @Tags Items
// @Accept json
// @Produce json
// @Param body body UseItemRequest true "Item id and amount"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/use-item [post]
func (h *ItemHandler) Use(c *fiber.Ctx) error {
	var req UseItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 || req.UsedAmount == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	item, err := h.itemService.Use(c.Context(), req.ID, req.UsedAmount, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.BadRequest(c, "Not enough items in stock")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Item used successfully", item)
}

// Archive sets or clears the archived flag of one item
// @Summary Archive an item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body ArchiveItemRequest true "Item id and flag"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/archive-item [post]
func (h *ItemHandler) Archive(c *fiber.Ctx) error {
	var req ArchiveItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	item, err := h.itemService.Archive(c.Context(), req.ID, req.IsArchived)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Item archived successfully", item)
}

// AddCategory creates a new item category
// @Summary Add a category
// @Tags Items
// @Accept json
// @Produce json
// @Param body body AddCategoryRequest true "Category name"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /items/add-category [post]
func (h *ItemHandler) AddCategory(c *fiber.Ctx) error {
	var req AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	category, err := h.itemService.AddCategory(c.Context(), req.Name)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Created(c, "Category created successfully", category)
}

// Categories lists all item categories
// @Summary List categories
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items/categories [get]
func (h *ItemHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.itemService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Categories fetched successfully", categories)
}
