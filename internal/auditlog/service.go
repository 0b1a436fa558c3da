package auditlog

import (
	"context"
	"encoding/json"
	"log"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string) error
	GetLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service {
	return &service{repo}
}

func (s *service) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string) error {
	var payload []byte
	if details != nil {
		var err error
		payload, err = json.Marshal(details)
		if err != nil {
			log.Printf("⚠️ audit details marshal failed for %s: %v", action, err)
			payload = nil
		}
	}

	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   payload,
		IPAddress: ip,
		Status:    status,
	}
	return s.repo.Create(ctx, entry)
}

func (s *service) GetLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}
