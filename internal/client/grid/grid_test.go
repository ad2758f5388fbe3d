package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofield/borelog/internal/client/models"
)

func rec(pairs ...string) models.Record {
	var r models.Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func ids(records []models.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Get("BoreholeID"))
	}
	return out
}

func TestColumns_EmptyCollection(t *testing.T) {
	assert.Nil(t, Columns(nil))
	assert.Nil(t, Columns([]models.Record{}))
}

func TestColumns_CanonicalOrderBeforeExtras(t *testing.T) {
	records := []models.Record{
		rec("SubmittedBy", "tech@geofield.example", "FinalDepth_m", "12.5", "BoreholeID", "BH-1"),
		rec("BoreholeID", "BH-2", "ProjectName", "Metro Line 4"),
	}

	cols := Columns(records)
	require.Equal(t, []string{"BoreholeID", "ProjectName", "FinalDepth_m", "SubmittedBy"}, cols)
}

func TestColumns_NoCanonicalFieldFallsBackToDiscoveryOrder(t *testing.T) {
	records := []models.Record{
		rec("zeta", "1", "alpha", "2"),
		rec("alpha", "3", "mid", "4"),
	}

	require.Equal(t, []string{"zeta", "alpha", "mid"}, Columns(records))
}

func TestFilter_ExactMatchesAreANDed(t *testing.T) {
	r := rec("ProjectName", "Metro Line 4", "SiteName", "North Portal", "DrillingMethod", "Coring + SPT", "USCS_Class", "CL")

	assert.True(t, Filter{Project: "Metro Line 4", USCS: "CL"}.Match(r))
	assert.False(t, Filter{Project: "Metro Line 4", USCS: "SM"}.Match(r))
	assert.False(t, Filter{Project: "Metro"}.Match(r), "project filter is exact, not substring")
}

func TestFilter_DateBoundsSkipEmptyFields(t *testing.T) {
	dated := rec("StartDate", "2026-03-10", "EndDate", "2026-03-12")
	undated := rec("StartDate", "", "EndDate", "")

	f := Filter{DateFrom: "2026-03-11", DateTo: "2026-03-11"}
	assert.False(t, f.Match(dated))
	assert.True(t, f.Match(undated), "records without dates pass date bounds")

	assert.True(t, Filter{DateFrom: "2026-03-01", DateTo: "2026-03-31"}.Match(dated))
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	r := rec("BoreholeID", "BH-7", "SoilDescription", "Stiff CLAY with gravel")

	assert.True(t, Filter{Search: "stiff clay"}.Match(r))
	assert.True(t, Filter{Search: "  BH-7 "}.Match(r))
	assert.False(t, Filter{Search: "granite"}.Match(r))
}

func TestApply_PreservesOrder(t *testing.T) {
	records := []models.Record{
		rec("BoreholeID", "BH-1", "SiteName", "A"),
		rec("BoreholeID", "BH-2", "SiteName", "B"),
		rec("BoreholeID", "BH-3", "SiteName", "A"),
	}

	got := Apply(records, Filter{Site: "A"})
	require.Equal(t, []string{"BH-1", "BH-3"}, ids(got))
}

func TestSort_NumericWhenBothValuesParse(t *testing.T) {
	records := []models.Record{
		rec("BoreholeID", "BH-1", "FinalDepth_m", "10"),
		rec("BoreholeID", "BH-2", "FinalDepth_m", "9.5"),
		rec("BoreholeID", "BH-3", "FinalDepth_m", "100"),
	}

	got := Sort(records, "FinalDepth_m", false)
	require.Equal(t, []string{"BH-2", "BH-1", "BH-3"}, ids(got), "9.5 < 10 < 100 numerically, not lexically")
}

func TestSort_FallsBackToStringOrderOnNonNumeric(t *testing.T) {
	records := []models.Record{
		rec("BoreholeID", "BH-1", "USCS_Class", "SM"),
		rec("BoreholeID", "BH-2", "USCS_Class", "CL"),
		rec("BoreholeID", "BH-3", "USCS_Class", "GC"),
	}

	got := Sort(records, "USCS_Class", false)
	require.Equal(t, []string{"BH-2", "BH-3", "BH-1"}, ids(got))
}

func TestSort_DescendingReversesAscending(t *testing.T) {
	records := []models.Record{
		rec("BoreholeID", "BH-1", "StartDate", "2026-01-02"),
		rec("BoreholeID", "BH-2", "StartDate", "2026-01-01"),
		rec("BoreholeID", "BH-3", "StartDate", "2026-01-03"),
	}

	got := Sort(records, "StartDate", true)
	require.Equal(t, []string{"BH-3", "BH-1", "BH-2"}, ids(got))
}

func TestSort_IsStableAndLeavesInputUntouched(t *testing.T) {
	records := []models.Record{
		rec("BoreholeID", "BH-1", "SiteName", "A"),
		rec("BoreholeID", "BH-2", "SiteName", "A"),
		rec("BoreholeID", "BH-3", "SiteName", "A"),
	}

	got := Sort(records, "SiteName", false)
	require.Equal(t, []string{"BH-1", "BH-2", "BH-3"}, ids(got))
	require.Equal(t, []string{"BH-1", "BH-2", "BH-3"}, ids(records))
}

func TestToggleSort(t *testing.T) {
	s := NewState()
	require.Equal(t, "StartDate", s.SortKey)
	require.True(t, s.SortDesc)

	s.ToggleSort("StartDate")
	assert.False(t, s.SortDesc, "same column flips direction")

	s.ToggleSort("FinalDepth_m")
	assert.Equal(t, "FinalDepth_m", s.SortKey)
	assert.False(t, s.SortDesc, "new column starts ascending")
}

func TestSetPageSize_ResetsPage(t *testing.T) {
	s := NewState()
	s.Page = 3
	s.SetPageSize(25)
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, 25, s.PageSize)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(0, 0, 5), "empty collection stays on page zero")
	assert.Equal(t, 2, ClampPage(7, 11, 5), "11 items at size 5 end on page 2")
	assert.Equal(t, 0, ClampPage(-1, 11, 5))
	assert.Equal(t, 1, ClampPage(1, 11, 5))
}

func TestView_ClampsAfterFilterShrinksCollection(t *testing.T) {
	var records []models.Record
	for _, id := range []string{"BH-1", "BH-2", "BH-3", "BH-4", "BH-5", "BH-6"} {
		records = append(records, rec("BoreholeID", id, "SiteName", "A"))
	}
	records = append(records, rec("BoreholeID", "BH-7", "SiteName", "B"))

	s := NewState()
	s.SortKey = "BoreholeID"
	s.SortDesc = false
	s.Page = 1

	view := s.View(records)
	require.Len(t, view, 7)
	require.Equal(t, 1, s.Page)

	s.Filter = Filter{Site: "B"}
	view = s.View(records)
	require.Len(t, view, 1)
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, []string{"BH-7"}, ids(s.PageRows(view)))
}

func TestPageRows_SlicesCurrentPage(t *testing.T) {
	var records []models.Record
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		records = append(records, rec("BoreholeID", id))
	}

	s := State{SortKey: "BoreholeID", PageSize: 5}
	view := s.View(records)

	require.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(s.PageRows(view)))

	s.NextPage(len(view))
	require.Equal(t, []string{"f", "g"}, ids(s.PageRows(view)))

	s.NextPage(len(view))
	assert.Equal(t, 1, s.Page, "cannot advance past the last page")

	s.PrevPage()
	s.PrevPage()
	assert.Equal(t, 0, s.Page)
}

func TestUniqueValues_SortedDistinctNonEmpty(t *testing.T) {
	records := []models.Record{
		rec("ProjectName", "Metro Line 4"),
		rec("ProjectName", "Airport East"),
		rec("ProjectName", "Metro Line 4"),
		rec("ProjectName", ""),
	}

	require.Equal(t, []string{"Airport East", "Metro Line 4"}, UniqueValues(records, "ProjectName"))
}

func TestEditDraft_CoversEditableSubsetOnly(t *testing.T) {
	r := rec(
		"BoreholeID", "BH-9",
		"ProjectName", "Metro Line 4",
		"FinalDepth_m", "18.0",
		"Latitude", "1.29",
	)

	draft := EditDraft(r)
	require.Len(t, draft, len(EditableFields))
	assert.Equal(t, "Metro Line 4", draft["ProjectName"])
	assert.Equal(t, "18.0", draft["FinalDepth_m"])
	assert.Equal(t, "", draft["Remarks"], "missing editable fields default to empty")
	_, hasID := draft["BoreholeID"]
	assert.False(t, hasID, "identifier is never editable")
	_, hasLat := draft["Latitude"]
	assert.False(t, hasLat)
}
