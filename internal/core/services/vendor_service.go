package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"

	"gorm.io/gorm"
)

// VendorService handles vendor business logic
type VendorService struct {
	vendorRepo repositories.VendorRepository
	audit      *AuditService
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repositories.VendorRepository, audit *AuditService) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, audit: audit}
}

// CreateVendorInput represents vendor creation input
type CreateVendorInput struct {
	DisplayName string `json:"display_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Contact     string `json:"contact"`
}

// UpdateVendorInput represents a partial vendor update; nil fields are
// left untouched
type UpdateVendorInput struct {
	DisplayName *string `json:"display_name"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	Contact     *string `json:"contact"`
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, input *CreateVendorInput, actor string) (*models.Vendor, error) {
	vendor := &models.Vendor{
		DisplayName: input.DisplayName,
		CompanyName: input.CompanyName,
		Email:       input.Email,
		Phone:       input.Phone,
		Website:     input.Website,
		Contact:     input.Contact,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeVendor, models.LogActionCreate,
		fmt.Sprintf("Vendor: %s created successfully by %s on %s", vendor.DisplayName, actor, Timestamp()))

	return vendor, nil
}

// List lists all vendors
func (s *VendorService) List(ctx context.Context) ([]*models.Vendor, error) {
	return s.vendorRepo.List(ctx)
}

// Update applies a partial update to a vendor
func (s *VendorService) Update(ctx context.Context, id uint, input *UpdateVendorInput, actor string) (*models.Vendor, error) {
	fields := map[string]interface{}{}
	if input.DisplayName != nil {
		fields["display_name"] = *input.DisplayName
	}
	if input.CompanyName != nil {
		fields["company_name"] = *input.CompanyName
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Website != nil {
		fields["website"] = *input.Website
	}
	if input.Contact != nil {
		fields["contact"] = *input.Contact
	}

	vendor, err := s.vendorRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeVendor, models.LogActionUpdate,
		fmt.Sprintf("Vendor: %s updated successfully by %s on %s", vendor.DisplayName, actor, Timestamp()))

	return vendor, nil
}

// Delete deletes a vendor. Orders referencing the vendor by name are not
// touched; references are informal and may dangle.
func (s *VendorService) Delete(ctx context.Context, id uint, actor string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeVendor, models.LogActionDelete,
		fmt.Sprintf("Vendor: %s deleted successfully by %s on %s", vendor.DisplayName, actor, Timestamp()))

	return vendor, nil
}
