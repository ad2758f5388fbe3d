package grid

import "github.com/geofield/borelog/internal/client/models"

// State is the view state of the data grid: active filter, sort selection and
// pagination. It mirrors what a table header and pager would hold.
type State struct {
	Filter   Filter
	SortKey  string
	SortDesc bool
	Page     int
	PageSize int
}

// NewState returns the initial grid state: newest drilling starts first.
func NewState() State {
	return State{
		SortKey:  "StartDate",
		SortDesc: true,
		PageSize: PageSizes[0],
	}
}

// ToggleSort selects col for sorting. Re-selecting the current column flips
// the direction; a new column starts ascending.
func (s *State) ToggleSort(col string) {
	if s.SortKey == col {
		s.SortDesc = !s.SortDesc
		return
	}
	s.SortKey = col
	s.SortDesc = false
}

// SetPageSize switches the page size and resets to the first page.
func (s *State) SetPageSize(size int) {
	s.PageSize = size
	s.Page = 0
}

// PageCount returns the number of pages for n items.
func PageCount(n, pageSize int) int {
	if n == 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage bounds page into [0, PageCount-1], never negative.
func ClampPage(page, n, pageSize int) int {
	last := PageCount(n, pageSize) - 1
	if last < 0 {
		last = 0
	}
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// View applies the filter and sort to records and clamps the current page to
// the resulting collection. The full filtered-and-sorted view is returned;
// use PageRows for the visible slice.
func (s *State) View(records []models.Record) []models.Record {
	view := Apply(records, s.Filter)
	view = Sort(view, s.SortKey, s.SortDesc)
	s.Page = ClampPage(s.Page, len(view), s.PageSize)
	return view
}

// PageRows slices the current page out of the view produced by View.
func (s *State) PageRows(view []models.Record) []models.Record {
	if len(view) == 0 {
		return nil
	}
	start := s.Page * s.PageSize
	if start >= len(view) {
		return nil
	}
	end := start + s.PageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// NextPage advances within the view of n items; PrevPage steps back.
func (s *State) NextPage(n int) {
	s.Page = ClampPage(s.Page+1, n, s.PageSize)
}

func (s *State) PrevPage() {
	if s.Page > 0 {
		s.Page--
	}
}
