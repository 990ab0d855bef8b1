package services

import (
	"context"
	"log"
	"time"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
)

// AuditService appends entries to the audit log after successful
// mutations. Appends are best-effort: a failed append never rolls back or
// fails the mutation it describes, it is only logged server-side.
type AuditService struct {
	logRepo repositories.LogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(logRepo repositories.LogRepository) *AuditService {
	return &AuditService{logRepo: logRepo}
}

// Record appends one audit log entry
func (s *AuditService) Record(ctx context.Context, logType, action, message string) {
	entry := &models.Log{
		Type:    logType,
		Action:  action,
		Message: message,
		Status:  models.LogStatusUnread,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to write audit log (%s/%s): %v", logType, action, err)
	}
}

// Timestamp formats the current time the way audit messages embed it:
// localized time of day, two spaces, long-form date.
func Timestamp() string {
	now := time.Now()
	return now.Format("3:04 PM") + "  " + now.Format("Monday, January 2, 2006")
}
