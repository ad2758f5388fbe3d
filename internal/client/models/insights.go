package models

// PeriodRange labels the date coverage of a summary or dashboard payload.
type PeriodRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// SummaryStats are server-computed aggregates; the client only renders them.
type SummaryStats struct {
	AsOf             string         `json:"as_of"`
	Boreholes        int            `json:"boreholes"`
	Projects         []string       `json:"projects"`
	Sites            []string       `json:"sites"`
	AvgFinalDepth    *float64       `json:"avg_final_depth_m"`
	AvgGroundwater   *float64       `json:"avg_groundwater_depth_m"`
	AvgSPTN60        *float64       `json:"avg_spt_n60"`
	TotalMeterage    float64        `json:"total_meterage_m"`
	MethodBreakdown  map[string]int `json:"method_breakdown"`
	USCSBreakdown    map[string]int `json:"uscs_breakdown"`
	TopContractor    string         `json:"top_contractor,omitempty"`
	PeriodRangeLabel *PeriodRange   `json:"period_range,omitempty"`
	PeriodLabel      string         `json:"period_label,omitempty"`
}

// SummaryResponse is the payload of GET /api/summaries.
type SummaryResponse struct {
	Period      string        `json:"period"`
	Text        string        `json:"text"`
	Stats       *SummaryStats `json:"stats,omitempty"`
	Highlights  []string      `json:"highlights,omitempty"`
	Narrative   string        `json:"narrative,omitempty"`
	PeriodRange *PeriodRange  `json:"period_range,omitempty"`
	PeriodLabel string        `json:"period_label,omitempty"`
}

// DashboardRecent is one row of the dashboard's recent-activity list.
type DashboardRecent struct {
	BoreholeID       string   `json:"borehole_id,omitempty"`
	Project          string   `json:"project,omitempty"`
	Site             string   `json:"site,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	FinalDepth       *float64 `json:"final_depth_m,omitempty"`
	GroundwaterDepth *float64 `json:"groundwater_depth_m,omitempty"`
	Method           string   `json:"method,omitempty"`
}

// DashboardResponse is the payload of GET /api/dashboard.
type DashboardResponse struct {
	TotalBoreholes  int               `json:"total_boreholes"`
	AvgFinalDepth   *float64          `json:"avg_final_depth_m"`
	AvgGroundwater  *float64          `json:"avg_groundwater_depth_m"`
	TotalMeterage   float64           `json:"total_meterage_m"`
	ActiveProjects  int               `json:"active_projects"`
	ProjectList     []string          `json:"project_list,omitempty"`
	MethodBreakdown map[string]int    `json:"method_breakdown,omitempty"`
	USCSBreakdown   map[string]int    `json:"uscs_breakdown,omitempty"`
	TopContractor   string            `json:"top_contractor,omitempty"`
	RecentReports   []DashboardRecent `json:"recent_reports,omitempty"`
	Narrative       string            `json:"narrative,omitempty"`
	PeriodRange     *PeriodRange      `json:"period_range,omitempty"`
	PeriodLabel     string            `json:"period_label,omitempty"`
}
