package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

func (a *App) Dashboard(ctx context.Context) error {
	if _, err := a.auth.RequireSession(); err != nil {
		printlnFn("Please log in first.")
		return err
	}

	resp, err := a.insights.Dashboard(ctx)
	if err != nil {
		printlnFn("Dashboard failed:", err)
		return err
	}

	if resp.PeriodLabel != "" {
		printlnFn("==", resp.PeriodLabel, "==")
	}
	printlnFn(fmt.Sprintf("boreholes: %d, active projects: %d, total meterage: %.1f m",
		resp.TotalBoreholes, resp.ActiveProjects, resp.TotalMeterage))
	if resp.AvgFinalDepth != nil {
		printlnFn(fmt.Sprintf("avg final depth: %.1f m", *resp.AvgFinalDepth))
	}
	if resp.AvgGroundwater != nil {
		printlnFn(fmt.Sprintf("avg groundwater depth: %.1f m", *resp.AvgGroundwater))
	}
	if len(resp.ProjectList) > 0 {
		printlnFn("projects:", strings.Join(resp.ProjectList, ", "))
	}
	printBreakdown("methods", resp.MethodBreakdown)
	printBreakdown("uscs", resp.USCSBreakdown)
	if resp.TopContractor != "" {
		printlnFn("top contractor:", resp.TopContractor)
	}

	if len(resp.RecentReports) > 0 {
		printlnFn("recent activity:")
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Borehole\tProject\tSite\tStart\tFinal m\tMethod")
		for _, r := range resp.RecentReports {
			depth := ""
			if r.FinalDepth != nil {
				depth = fmt.Sprintf("%.1f", *r.FinalDepth)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.BoreholeID, r.Project, r.Site, r.StartDate, depth, r.Method)
		}
		_ = tw.Flush()
	}

	if resp.Narrative != "" {
		if narrative, nerr := a.renderer.Text(resp.Narrative); nerr == nil {
			printlnFn(narrative)
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
