package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// OrderService handles purchase order business logic
type OrderService struct {
	orderRepo repositories.OrderRepository
	audit     *AuditService
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repositories.OrderRepository, audit *AuditService) *OrderService {
	return &OrderService{orderRepo: orderRepo, audit: audit}
}

// CreateOrderInput represents order creation input
type CreateOrderInput struct {
	InvoiceNumber string              `json:"invoice_number"`
	OrderDate     time.Time           `json:"order_date"`
	DeliveryDate  time.Time           `json:"delivery_date"`
	OrderDetails  string              `json:"order_details"`
	Vendor        string              `json:"vendor"`
	Attachments   []models.Attachment `json:"attachments"`
	Status        string              `json:"status"`
}

// EditOrderInput represents a partial order update; nil fields are left
// untouched
type EditOrderInput struct {
	InvoiceNumber *string              `json:"invoice_number"`
	OrderDate     *time.Time           `json:"order_date"`
	DeliveryDate  *time.Time           `json:"delivery_date"`
	OrderDetails  *string              `json:"order_details"`
	Vendor        *string              `json:"vendor"`
	Attachments   *[]models.Attachment `json:"attachments"`
}

// Create creates a new order
func (s *OrderService) Create(ctx context.Context, input *CreateOrderInput, actor string) (*models.Order, error) {
	order := &models.Order{
		InvoiceNumber: input.InvoiceNumber,
		OrderDate:     input.OrderDate,
		DeliveryDate:  input.DeliveryDate,
		OrderDetails:  input.OrderDetails,
		Vendor:        input.Vendor,
		Attachments:   input.Attachments,
		Status:        input.Status,
	}
	if order.Status == "" {
		order.Status = models.OrderStatusOpen
	}
	if order.Attachments == nil {
		order.Attachments = []models.Attachment{}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeOrder, models.LogActionCreate,
		fmt.Sprintf("Order invoice no. : %s created successfully by %s on %s", order.InvoiceNumber, actor, Timestamp()))

	return order, nil
}

// List lists orders partitioned by the archived flag
func (s *OrderService) List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, archived, params)
}

// Search finds orders matching the query over invoice number and vendor
func (s *OrderService) Search(ctx context.Context, query string) ([]*models.Order, error) {
	return s.orderRepo.Search(ctx, query)
}

// ChangeStatus sets an order's status
func (s *OrderService) ChangeStatus(ctx context.Context, id uint, status, actor string) (*models.Order, error) {
	order, err := s.orderRepo.Update(ctx, id, map[string]interface{}{"status": status})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeOrder, models.LogActionUpdate,
		fmt.Sprintf("Order invoice no. : %s status changed to %s by %s on %s", order.InvoiceNumber, status, actor, Timestamp()))

	return order, nil
}

// Edit applies a partial update to an order
func (s *OrderService) Edit(ctx context.Context, id uint, input *EditOrderInput, actor string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if input.InvoiceNumber != nil {
		order.InvoiceNumber = *input.InvoiceNumber
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = *input.DeliveryDate
	}
	if input.OrderDetails != nil {
		order.OrderDetails = *input.OrderDetails
	}
	if input.Vendor != nil {
		order.Vendor = *input.Vendor
	}
	if input.Attachments != nil {
		order.Attachments = *input.Attachments
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeOrder, models.LogActionUpdate,
		fmt.Sprintf("Order invoice no. : %s updated successfully by %s on %s", order.InvoiceNumber, actor, Timestamp()))

	return order, nil
}

// Delete deletes an order
func (s *OrderService) Delete(ctx context.Context, id uint, actor string) (*models.Order, error) {
	order, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeOrder, models.LogActionDelete,
		fmt.Sprintf("Order invoice no. : %s deleted successfully by %s on %s", order.InvoiceNumber, actor, Timestamp()))

	return order, nil
}

// Archive moves an order to the archive view
func (s *OrderService) Archive(ctx context.Context, id uint, actor string) (*models.Order, error) {
	order, err := s.orderRepo.SetArchived(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeOrder, models.LogActionArchive,
		fmt.Sprintf("Order invoice no. : %s archived successfully by %s on %s", order.InvoiceNumber, actor, Timestamp()))

	return order, nil
}
