package services

import (
	"context"
	"errors"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// LogService handles the admin audit log feed
type LogService struct {
	logRepo repositories.LogRepository
}

// NewLogService creates a new log service
func NewLogService(logRepo repositories.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// List lists log entries filtered by type and status
func (s *LogService) List(ctx context.Context, logType, status string, params *pagination.Params) ([]*models.Log, error) {
	return s.logRepo.List(ctx, logType, status, params)
}

// MarkAsRead transitions a log entry to READ
func (s *LogService) MarkAsRead(ctx context.Context, id uint) (*models.Log, error) {
	entry, err := s.logRepo.MarkAsRead(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Delete deletes a single log entry
func (s *LogService) Delete(ctx context.Context, id uint) (*models.Log, error) {
	entry, err := s.logRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

// DeleteRead bulk-deletes all READ entries
func (s *LogService) DeleteRead(ctx context.Context) error {
	return s.logRepo.DeleteRead(ctx)
}
