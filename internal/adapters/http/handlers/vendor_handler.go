package handlers

import (
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VendorHandler handles supplier endpoints
type VendorHandler struct {
	vendorService *services.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// UpdateVendorRequest carries a partial update for one vendor
type UpdateVendorRequest struct {
	ID   uint                        `json:"id"`
	Data *services.UpdateVendorInput `json:"data"`
}

// Create creates a new vendor
// @Summary Create a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param body body services.CreateVendorInput true "Vendor data"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /vendors/create-vendor [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var input services.CreateVendorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.DisplayName == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	vendor, err := h.vendorService.Create(c.Context(), &input, actor)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Created(c, "Vendor created successfully", vendor)
}

// List returns all vendors ordered by display name
// @Summary List vendors
// @Tags Vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	vendors, err := h.vendorService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Vendors fetched successfully", vendors)
}

// Update applies a partial update to one vendor
// @Summary Update a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param body body UpdateVendorRequest true "Vendor id and fields to update"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /vendors/update-vendor [post]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var req UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}
	if req.Data == nil {
		req.Data = &services.UpdateVendorInput{}
	}

	actor, _ := c.Locals("username").(string)

	vendor, err := h.vendorService.Update(c.Context(), req.ID, req.Data, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVendorNotFound):
			return response.NotFound(c, "Vendor not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Vendor updated successfully", vendor)
}

// Delete removes one vendor permanently
// @Summary Delete a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param body body IDRequest true "Vendor id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /vendors/delete-vendor [post]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	var req IDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	vendor, err := h.vendorService.Delete(c.Context(), req.ID, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVendorNotFound):
			return response.NotFound(c, "Vendor not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Vendor deleted successfully", vendor)
}
