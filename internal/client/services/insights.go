package services

import (
	"context"
	"fmt"
	"time"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/common"
	"github.com/geofield/borelog/internal/logging"
)

// Summary periods.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type insightsAPI interface {
	GetSummary(ctx context.Context, period string, filters map[string]string) (models.SummaryResponse, error)
	GetDashboard(ctx context.Context) (models.DashboardResponse, error)
}

// SummaryRequest selects a reporting window. Weekly requires both dates;
// monthly defaults to the current month when month or year is unset.
type SummaryRequest struct {
	Period    string
	StartDate string
	EndDate   string
	Month     int
	Year      int
}

// InsightsService fetches the aggregate views: periodic summaries and the
// overview dashboard.
type InsightsService struct {
	api    insightsAPI
	logger logging.Logger
	now    func() time.Time
}

func NewInsightsService(api insightsAPI, logger logging.Logger) *InsightsService {
	return &InsightsService{api: api, logger: logger, now: time.Now}
}

func (s *InsightsService) Summary(ctx context.Context, req SummaryRequest) (models.SummaryResponse, error) {
	filters := map[string]string{}

	switch req.Period {
	case PeriodWeekly:
		if req.StartDate == "" || req.EndDate == "" {
			return models.SummaryResponse{}, fmt.Errorf("weekly summary: start and end dates are required")
		}
		filters["start_date"] = req.StartDate
		filters["end_date"] = req.EndDate
	case PeriodMonthly:
		month, year := req.Month, req.Year
		if month == 0 {
			month = int(s.now().Month())
		}
		if year == 0 {
			year = s.now().Year()
		}
		filters["month"] = fmt.Sprintf("%d", month)
		filters["year"] = fmt.Sprintf("%d", year)
	default:
		return models.SummaryResponse{}, fmt.Errorf("%w: %q", common.ErrInvalidPeriod, req.Period)
	}

	resp, err := s.api.GetSummary(ctx, req.Period, filters)
	if err != nil {
		return models.SummaryResponse{}, err
	}
	s.logger.Debug(ctx, "summary fetched", "period", req.Period)
	return resp, nil
}

func (s *InsightsService) Dashboard(ctx context.Context) (models.DashboardResponse, error) {
	return s.api.GetDashboard(ctx)
}
