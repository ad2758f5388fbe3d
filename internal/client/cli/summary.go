package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/client/services"
)

// Summary fetches the weekly or monthly roll-up and prints it as plain text.
// The sanitized HTML rendition can optionally be written to a file for
// sharing outside the terminal.
func (a *App) Summary(ctx context.Context) error {
	if _, err := a.auth.RequireSession(); err != nil {
		printlnFn("Please log in first.")
		return err
	}

	period, err := GetChoice(a.reader, "Summary period",
		[]string{services.PeriodWeekly, services.PeriodMonthly}, services.PeriodWeekly, a.out)
	if err != nil {
		return err
	}

	req := services.SummaryRequest{Period: period}
	switch period {
	case services.PeriodWeekly:
		if req.StartDate, err = GetSimpleText(a.reader, "Start date (YYYY-MM-DD)", a.out); err != nil {
			return err
		}
		if req.EndDate, err = GetSimpleText(a.reader, "End date (YYYY-MM-DD)", a.out); err != nil {
			return err
		}
	case services.PeriodMonthly:
		month, merr := GetSimpleText(a.reader, "Month 1-12 (empty for current)", a.out)
		if merr != nil {
			return merr
		}
		year, yerr := GetSimpleText(a.reader, "Year (empty for current)", a.out)
		if yerr != nil {
			return yerr
		}
		req.Month, _ = strconv.Atoi(month)
		req.Year, _ = strconv.Atoi(year)
	}

	resp, err := a.insights.Summary(ctx, req)
	if err != nil {
		printlnFn("Summary failed:", err)
		return err
	}

	if resp.PeriodLabel != "" {
		printlnFn("==", resp.PeriodLabel, "==")
	}
	text, err := a.renderer.Text(resp.Text)
	if err != nil {
		text = resp.Text
	}
	printlnFn(text)

	if resp.Stats != nil {
		a.printSummaryStats(resp.Stats)
	}
	for _, h := range resp.Highlights {
		printlnFn("  *", h)
	}
	if resp.Narrative != "" {
		if narrative, nerr := a.renderer.Text(resp.Narrative); nerr == nil {
			printlnFn(narrative)
		}
	}

	path, err := GetSimpleText(a.reader, "Write HTML to file (empty to skip)", a.out)
	if err != nil || path == "" {
		return nil
	}
	html, err := a.renderer.SafeHTML(resp.Text)
	if err != nil {
		printlnFn("Rendering failed:", err)
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		printlnFn("Write failed:", err)
		return err
	}
	printlnFn("Saved", path)
	return nil
}

func (a *App) printSummaryStats(stats *models.SummaryStats) {
	printlnFn(fmt.Sprintf("boreholes: %d, total meterage: %.1f m", stats.Boreholes, stats.TotalMeterage))
	if stats.AvgFinalDepth != nil {
		printlnFn(fmt.Sprintf("avg final depth: %.1f m", *stats.AvgFinalDepth))
	}
	if stats.AvgGroundwater != nil {
		printlnFn(fmt.Sprintf("avg groundwater depth: %.1f m", *stats.AvgGroundwater))
	}
	if stats.AvgSPTN60 != nil {
		printlnFn(fmt.Sprintf("avg SPT N60: %.1f", *stats.AvgSPTN60))
	}
	if len(stats.Projects) > 0 {
		printlnFn("projects:", strings.Join(stats.Projects, ", "))
	}
	if len(stats.Sites) > 0 {
		printlnFn("sites:", strings.Join(stats.Sites, ", "))
	}
	printBreakdown("methods", stats.MethodBreakdown)
	printBreakdown("uscs", stats.USCSBreakdown)
	if stats.TopContractor != "" {
		printlnFn("top contractor:", stats.TopContractor)
	}
}

func printBreakdown(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	parts := make([]string, 0, len(counts))
	for _, k := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	printlnFn(label+":", strings.Join(parts, ", "))
}
