package services

import (
	"context"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/logging"
)

type reportsAPI interface {
	ListReports(ctx context.Context) ([]models.Record, error)
	PostReport(ctx context.Context, report models.Report) error
	UpdateReport(ctx context.Context, boreholeID string, fields map[string]string) error
	DeleteReport(ctx context.Context, boreholeID string) error
}

// ReportsService wraps report CRUD. Mutations do not patch any cached
// collection; callers refetch to pick up server-side normalization.
type ReportsService struct {
	api    reportsAPI
	logger logging.Logger
}

func NewReportsService(api reportsAPI, logger logging.Logger) *ReportsService {
	return &ReportsService{api: api, logger: logger}
}

func (s *ReportsService) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.api.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "reports fetched", "count", len(records))
	return records, nil
}

func (s *ReportsService) Submit(ctx context.Context, report models.Report) error {
	if err := s.api.PostReport(ctx, report); err != nil {
		return err
	}
	s.logger.Info(ctx, "report submitted", "borehole", report.BoreholeID)
	return nil
}

// Update sends the full edit draft as a replacement for the editable fields
// of one report.
func (s *ReportsService) Update(ctx context.Context, boreholeID string, draft map[string]string) error {
	if err := s.api.UpdateReport(ctx, boreholeID, draft); err != nil {
		return err
	}
	s.logger.Info(ctx, "report updated", "borehole", boreholeID)
	return nil
}

func (s *ReportsService) Delete(ctx context.Context, boreholeID string) error {
	if err := s.api.DeleteReport(ctx, boreholeID); err != nil {
		return err
	}
	s.logger.Info(ctx, "report deleted", "borehole", boreholeID)
	return nil
}
