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

// ReturnService handles return business logic
type ReturnService struct {
	returnRepo repositories.ReturnRepository
	audit      *AuditService
}

// NewReturnService creates a new return service
func NewReturnService(returnRepo repositories.ReturnRepository, audit *AuditService) *ReturnService {
	return &ReturnService{returnRepo: returnRepo, audit: audit}
}

// CreateReturnInput represents return creation input. A return is always
// raised against an existing order, which gets cancelled as part of the
// same operation.
type CreateReturnInput struct {
	OrderID     uint                `json:"order_id"`
	Reason      string              `json:"reason"`
	Attachments []models.Attachment `json:"attachments"`
	OrderInfo   struct {
		InvoiceNumber string `json:"invoice_number"`
		OrderDetails  string `json:"order_details"`
		Vendor        string `json:"vendor"`
	} `json:"orderInfo"`
}

// Create creates the return and cancels its order atomically. When the
// order id does not resolve, no return record is created.
func (s *ReturnService) Create(ctx context.Context, input *CreateReturnInput, actor string) (*models.Return, error) {
	ret := &models.Return{
		InvoiceNumber: input.OrderInfo.InvoiceNumber,
		Reason:        input.Reason,
		ReturnDetails: input.OrderInfo.OrderDetails,
		Vendor:        input.OrderInfo.Vendor,
		Attachments:   input.Attachments,
		Status:        models.ReturnStatusPending,
	}
	if ret.Attachments == nil {
		ret.Attachments = []models.Attachment{}
	}

	if _, err := s.returnRepo.CreateWithOrderCancellation(ctx, ret, input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeReturn, models.LogActionCreate,
		fmt.Sprintf("Return invoice no. : %s created successfully by %s on %s", ret.InvoiceNumber, actor, Timestamp()))

	return ret, nil
}

// List lists all returns
func (s *ReturnService) List(ctx context.Context) ([]*models.Return, error) {
	return s.returnRepo.List(ctx)
}

// Search finds returns matching the query over invoice number
func (s *ReturnService) Search(ctx context.Context, query string) ([]*models.Return, error) {
	return s.returnRepo.Search(ctx, query)
}

// ChangeStatus sets a return's status
func (s *ReturnService) ChangeStatus(ctx context.Context, id uint, status, actor string) (*models.Return, error) {
	ret, err := s.returnRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeReturn, models.LogActionUpdate,
		fmt.Sprintf("Return invoice no. : %s status updated to %s by %s on %s", ret.InvoiceNumber, status, actor, Timestamp()))

	return ret, nil
}

// Delete deletes a return
func (s *ReturnService) Delete(ctx context.Context, id uint, actor string) (*models.Return, error) {
	ret, err := s.returnRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeReturn, models.LogActionDelete,
		fmt.Sprintf("Return invoice no. : %s deleted by %s on %s", ret.InvoiceNumber, actor, Timestamp()))

	return ret, nil
}
