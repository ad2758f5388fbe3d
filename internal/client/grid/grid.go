// Package grid implements the report table engine: column derivation over
// loosely-shaped records, AND-combined filtering, numeric/locale sorting,
// clamped pagination, edit drafts and CSV export. It operates purely on an
// in-memory collection; fetching and refetching belong to the services layer.
package grid

import (
	"sort"
	"strings"

	"github.com/geofield/borelog/internal/client/models"
)

// PageSizes is the fixed page-size option set.
var PageSizes = []int{5, 10, 15, 25}

// BoreholeColumns is the canonical display order of borehole fields. Columns
// found in the data are shown in this order first, ahead of any extras.
var BoreholeColumns = []string{
	"BoreholeID",
	"ProjectName",
	"SiteName",
	"StartDate",
	"EndDate",
	"DrillingMethod",
	"BoreholeDiameter_mm",
	"TargetDepth_m",
	"FinalDepth_m",
	"GroundwaterDepth_m",
	"GroundwaterEncountered",
	"USCS_Class",
	"Avg_SPT_N60",
	"Contractor",
	"LoggingGeologist",
	"Latitude",
	"Longitude",
	"GroundElevation_mRL",
	"CasingInstalled_mm",
	"SoilDescription",
	"Remarks",
}

// extraColumns are server-added fields shown after the canonical set.
var extraColumns = []string{"SubmittedBy"}

// EditableFields is the fixed subset a row edit may change. Saving sends the
// whole draft as a replace-by-identifier request.
var EditableFields = []string{
	"ProjectName",
	"SiteName",
	"StartDate",
	"EndDate",
	"DrillingMethod",
	"FinalDepth_m",
	"GroundwaterDepth_m",
	"USCS_Class",
	"Avg_SPT_N60",
	"Remarks",
}

// Columns derives the displayed column set: the union of keys across all
// records, canonical borehole fields first, then known extras, then anything
// unrecognized in discovery order. An empty collection has no columns.
func Columns(records []models.Record) []string {
	if len(records) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	var discovery []string
	for _, r := range records {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				discovery = append(discovery, k)
			}
		}
	}

	pick := func(order []string) []string {
		var out []string
		for _, k := range order {
			if _, ok := seen[k]; ok {
				out = append(out, k)
			}
		}
		return out
	}

	borehole := pick(BoreholeColumns)
	if len(borehole) == 0 {
		return discovery
	}
	return append(borehole, pick(extraColumns)...)
}

// Filter holds the independent predicates combined with logical AND. Zero
// values mean "no constraint".
type Filter struct {
	Project  string
	Site     string
	Method   string
	USCS     string
	DateFrom string
	DateTo   string
	Search   string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether r passes every active predicate. Date bounds compare
// lexically (dates are ISO formatted) and skip records whose date field is
// empty. The free-text search matches the lowercase space-joined values.
func (f Filter) Match(r models.Record) bool {
	if f.Project != "" && r.Get("ProjectName") != f.Project {
		return false
	}
	if f.Site != "" && r.Get("SiteName") != f.Site {
		return false
	}
	if f.Method != "" && r.Get("DrillingMethod") != f.Method {
		return false
	}
	if f.USCS != "" && r.Get("USCS_Class") != f.USCS {
		return false
	}
	if f.DateFrom != "" && r.Get("StartDate") != "" && r.Get("StartDate") < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.Get("EndDate") != "" && r.Get("EndDate") > f.DateTo {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	var values []string
	for _, k := range r.Keys() {
		values = append(values, strings.ToLower(r.Get(k)))
	}
	return strings.Contains(strings.Join(values, " "), term)
}

// Apply returns the records passing f, preserving input order.
func Apply(records []models.Record, f Filter) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// UniqueValues returns the sorted distinct non-empty values under key,
// feeding the filter choice lists.
func UniqueValues(records []models.Record, key string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		v := r.Get(key)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// EditDraft snapshots the editable field subset of a row.
func EditDraft(r models.Record) map[string]string {
	draft := make(map[string]string, len(EditableFields))
	for _, field := range EditableFields {
		draft[field] = r.Get(field)
	}
	return draft
}
