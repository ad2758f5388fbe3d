package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/geofield/borelog/internal/client/grid"
	"github.com/geofield/borelog/internal/client/models"
)

// Data opens the report browser: a sub-loop over the fetched collection with
// filter, sort, paging, export, edit and delete commands. Mutations refetch
// from the server so server-side normalization is always reflected.
func (a *App) Data(ctx context.Context) error {
	if _, err := a.auth.RequireSession(); err != nil {
		printlnFn("Please log in first.")
		return err
	}

	records, err := a.reports.List(ctx)
	if err != nil {
		printlnFn("Error loading reports:", err)
		return err
	}

	state := grid.NewState()
	a.renderGrid(&state, records)

	for {
		fmt.Fprint(a.out, "data> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

		switch cmd {
		case "help":
			printlnFn("Commands: show, search <text>, project <name>, site <name>, method <name>, uscs <class>,")
			printlnFn("  from <date>, to <date>, clear, filters, sort <column>, size <n>, next, prev,")
			printlnFn("  export [file], edit <borehole>, del <borehole>, reload, back")

		case "show":
			a.renderGrid(&state, records)

		case "search":
			state.Filter.Search = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "project":
			state.Filter.Project = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "site":
			state.Filter.Site = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "method":
			state.Filter.Method = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "uscs":
			state.Filter.USCS = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "from":
			state.Filter.DateFrom = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "to":
			state.Filter.DateTo = arg
			state.Page = 0
			a.renderGrid(&state, records)

		case "clear":
			state.Filter = grid.Filter{}
			state.Page = 0
			a.renderGrid(&state, records)

		case "filters":
			for _, f := range []struct{ label, key string }{
				{"projects", "ProjectName"},
				{"sites", "SiteName"},
				{"methods", "DrillingMethod"},
				{"uscs", "USCS_Class"},
			} {
				printlnFn(f.label+":", strings.Join(grid.UniqueValues(records, f.key), ", "))
			}

		case "sort":
			if arg == "" {
				printlnFn("Usage: sort <column>")
				continue
			}
			state.ToggleSort(arg)
			a.renderGrid(&state, records)

		case "size":
			n, convErr := strconv.Atoi(arg)
			if convErr != nil || !validPageSize(n) {
				printlnFn("Page size must be one of:", pageSizeList())
				continue
			}
			state.SetPageSize(n)
			a.renderGrid(&state, records)

		case "next":
			view := state.View(records)
			state.NextPage(len(view))
			a.renderGrid(&state, records)

		case "prev":
			state.PrevPage()
			a.renderGrid(&state, records)

		case "export":
			a.exportGrid(&state, records, arg)

		case "edit":
			if arg == "" {
				printlnFn("Usage: edit <borehole>")
				continue
			}
			if a.editReport(ctx, records, arg) {
				if refreshed, listErr := a.reports.List(ctx); listErr == nil {
					records = refreshed
				}
				a.renderGrid(&state, records)
			}

		case "del":
			if arg == "" {
				printlnFn("Usage: del <borehole>")
				continue
			}
			if a.deleteReport(ctx, arg) {
				if refreshed, listErr := a.reports.List(ctx); listErr == nil {
					records = refreshed
				}
				a.renderGrid(&state, records)
			}

		case "reload":
			if refreshed, listErr := a.reports.List(ctx); listErr == nil {
				records = refreshed
				a.renderGrid(&state, records)
			} else {
				printlnFn("Error loading reports:", listErr)
			}

		case "back", "exit", "quit":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) renderGrid(state *grid.State, records []models.Record) {
	view := state.View(records)
	// Column order comes from the whole collection, not the filtered view, so
	// a column does not vanish when the filter excludes the rows carrying it.
	columns := grid.Columns(records)
	rows := state.PageRows(view)

	if len(view) == 0 {
		printlnFn("No reports match.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = cell(r.Get(col))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	direction := "asc"
	if state.SortDesc {
		direction = "desc"
	}
	printlnFn(fmt.Sprintf("%d reports, page %d/%d (size %d), sort %s %s",
		len(view), state.Page+1, grid.PageCount(len(view), state.PageSize), state.PageSize, state.SortKey, direction))
}

// cell truncates long values so the table stays readable in a terminal.
// Truncation counts runes, never splitting a multi-byte character.
func cell(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	runes := []rune(v)
	if len(runes) > 28 {
		return string(runes[:27]) + "…"
	}
	return v
}

func (a *App) exportGrid(state *grid.State, records []models.Record, path string) {
	if path == "" {
		path = "reports.csv"
	}
	view := state.View(records)
	columns := grid.Columns(records)

	f, err := os.Create(path)
	if err != nil {
		printlnFn("Export failed:", err)
		return
	}
	defer f.Close()

	if err := grid.ExportCSV(f, columns, view); err != nil {
		printlnFn("Export failed:", err)
		return
	}
	printlnFn(fmt.Sprintf("Exported %d reports to %s", len(view), path))
}

// editReport prompts through the editable subset of the chosen row and sends
// the full draft. Returns true when the server accepted the update.
func (a *App) editReport(ctx context.Context, records []models.Record, boreholeID string) bool {
	var target *models.Record
	for i := range records {
		if records[i].Get("BoreholeID") == boreholeID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		printlnFn("No report with borehole ID", boreholeID)
		return false
	}

	draft := grid.EditDraft(*target)
	for _, field := range grid.EditableFields {
		value, err := GetTextDefault(a.reader, field, draft[field], a.out)
		if err != nil {
			printlnFn("Input aborted:", err)
			return false
		}
		draft[field] = value
	}

	if err := a.reports.Update(ctx, boreholeID, draft); err != nil {
		printlnFn("Update failed:", err)
		return false
	}
	printlnFn("Report", boreholeID, "updated.")
	return true
}

func (a *App) deleteReport(ctx context.Context, boreholeID string) bool {
	confirmed, err := GetYesNo(a.reader, "Delete report "+boreholeID+"?", false, a.out)
	if err != nil || !confirmed {
		printlnFn("Not deleted.")
		return false
	}
	if err := a.reports.Delete(ctx, boreholeID); err != nil {
		printlnFn("Delete failed:", err)
		return false
	}
	printlnFn("Report", boreholeID, "deleted.")
	return true
}

func validPageSize(n int) bool {
	for _, s := range grid.PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

func pageSizeList() string {
	parts := make([]string, len(grid.PageSizes))
	for i, s := range grid.PageSizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
