package reports

import (
	"context"

	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
)

type Service interface {
	MemberList(ctx context.Context) ([]MemberReportRow, error)
	ExportMemberList(ctx context.Context, format string, userID uint, ip string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter Exporter
	auditSvc auditlog.Service
}

func NewService(repo Repository, exporter Exporter, auditSvc auditlog.Service) Service {
	return &service{repo: repo, exporter: exporter, auditSvc: auditSvc}
}

func (s *service) MemberList(ctx context.Context) ([]MemberReportRow, error) {
	return s.repo.MemberList()
}

func (s *service) ExportMemberList(ctx context.Context, format string, userID uint, ip string) ([]byte, string, string, error) {
	rows, err := s.repo.MemberList()
	if err != nil {
		return nil, "", "", err
	}

	data, filename, contentType, err := s.exporter.Export(format, rows)
	if err != nil {
		return nil, "", "", err
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.LogAction(ctx, &userID, "REPORT_EXPORTED", map[string]interface{}{
			"report": "member_list",
			"format": format,
			"rows":   len(rows),
		}, ip, "success")
	}
	return data, filename, contentType, nil
}
