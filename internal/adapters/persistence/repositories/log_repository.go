package repositories

import (
	"context"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// FilterAll is the wildcard value for the log type/status filters
const FilterAll = "ALL"

// logRepository implements LogRepository interface
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

// Create appends a log entry
func (r *logRepository) Create(ctx context.Context, entry *models.Log) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List lists log entries newest first, paginated. Filter semantics follow
// the admin feed: type=ALL and status=ALL returns everything, type=ALL
// with a status returns that status only, otherwise the type filter wins.
func (r *logRepository) List(ctx context.Context, logType, status string, params *pagination.Params) ([]*models.Log, error) {
	var logs []*models.Log

	q := r.db.WithContext(ctx).Model(&models.Log{})
	switch {
	case logType == FilterAll && status == FilterAll:
		// no filter
	case logType == FilterAll:
		q = q.Where("status = ?", status)
	default:
		q = q.Where("type = ?", logType)
	}

	err := q.Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&logs).Error
	return logs, err
}

// MarkAsRead transitions a log entry to READ and returns it
func (r *logRepository) MarkAsRead(ctx context.Context, id uint) (*models.Log, error) {
	var entry models.Log
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entry).Update("status", models.LogStatusRead).Error; err != nil {
		return nil, err
	}
	entry.Status = models.LogStatusRead
	return &entry, nil
}

// Delete deletes a log entry by ID and returns the deleted record
func (r *logRepository) Delete(ctx context.Context, id uint) (*models.Log, error) {
	var entry models.Log
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Log{}, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteRead bulk-deletes every READ log entry
func (r *logRepository) DeleteRead(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("status = ?", models.LogStatusRead).Delete(&models.Log{}).Error
}

// CountByType counts log entries by type
func (r *logRepository) CountByType(ctx context.Context, logType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Log{}).Where("type = ?", logType).Count(&count).Error
	return count, err
}
