package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/client/repositories/localstore"
	"github.com/geofield/borelog/internal/logging"
)

// MethodOptions and USCSOptions are the fixed choice lists of the entry form.
// The first entry of each is the default.
var (
	MethodOptions = []string{
		"Wash Boring + SPT",
		"Rotary Wash + SPT",
		"Hollow Stem Auger",
		"Coring + SPT",
	}
	USCSOptions = []string{"CL", "ML", "SM", "SC", "GC", "SP", "SW"}
)

// DefaultReport returns a fresh form pre-filled with the standard rig setup.
func DefaultReport() models.Report {
	return models.Report{
		DrillingMethod:         MethodOptions[0],
		BoreholeDiameter:       "150",
		CasingInstalled:        "100",
		USCSClass:              USCSOptions[0],
		GroundwaterEncountered: true,
	}
}

// DraftService persists the in-progress entry form so an interrupted session
// resumes where the operator left off.
type DraftService struct {
	repo   localstore.Repository
	logger logging.Logger
}

func NewDraftService(repo localstore.Repository, logger logging.Logger) *DraftService {
	return &DraftService{repo: repo, logger: logger}
}

// Load returns the saved draft when one exists; otherwise ok is false. A
// corrupt snapshot is treated as absent.
func (s *DraftService) Load(ctx context.Context) (models.Report, bool, error) {
	data, err := s.repo.Get(ctx, localstore.KeyReportDraft)
	if err != nil {
		return models.Report{}, false, err
	}
	if data == nil {
		return models.Report{}, false, nil
	}

	var draft models.Report
	if err := json.Unmarshal(data, &draft); err != nil {
		s.logger.Warn(ctx, "discarding unreadable form draft")
		return models.Report{}, false, nil
	}
	return draft, true, nil
}

func (s *DraftService) Save(ctx context.Context, draft models.Report) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, localstore.KeyReportDraft, data)
}

func (s *DraftService) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, localstore.KeyReportDraft)
}

// Validate checks a completed form. Missing drilling dates short-circuit:
// only the date message comes back until both are present. Past that gate,
// every violation found is returned, so the operator sees the full list at
// once instead of one problem per attempt. Optional numeric fields are only
// checked when non-empty.
func Validate(r models.Report) []string {
	if strings.TrimSpace(r.StartDate) == "" || strings.TrimSpace(r.EndDate) == "" {
		return []string{"start date and end date are required"}
	}

	var problems []string

	if v, ok := parseOptional(r.Latitude); ok && (v < -90 || v > 90) {
		problems = append(problems, "latitude must be between -90 and 90")
	}
	if v, ok := parseOptional(r.Longitude); ok && (v < -180 || v > 180) {
		problems = append(problems, "longitude must be between -180 and 180")
	}
	if r.BoreholeDiameter != "" {
		if v, ok := parseOptional(r.BoreholeDiameter); !ok || v <= 0 {
			problems = append(problems, "borehole diameter must be a positive number")
		}
	}

	final, finalOK := parseOptional(r.FinalDepth)
	if !finalOK {
		problems = append(problems, "final depth is required and must be a number")
	}
	if target, ok := parseOptional(r.TargetDepth); ok && finalOK && final > 1.5*target {
		problems = append(problems,
			fmt.Sprintf("final depth %.1f m exceeds 150%% of target depth %.1f m", final, target))
	}

	if r.StartDate > r.EndDate {
		problems = append(problems, "start date must not be after end date")
	}

	return problems
}

func parseOptional(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
