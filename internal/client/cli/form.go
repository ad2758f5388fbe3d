package cli

import (
	"context"
	"strings"

	"github.com/geofield/borelog/internal/client/services"
)

// NewReport runs the borehole entry wizard. The form is snapshotted after
// every answer, so a dropped connection or an interrupted session resumes
// with the values already entered. Submission clears the draft; a validation
// failure keeps it.
func (a *App) NewReport(ctx context.Context) error {
	if _, err := a.auth.RequireSession(); err != nil {
		printlnFn("Please log in first.")
		return err
	}

	form := services.DefaultReport()
	if draft, ok, err := a.drafts.Load(ctx); err == nil && ok {
		resume, _ := GetYesNo(a.reader, "A saved draft exists. Resume it?", true, a.out)
		if resume {
			form = draft
		} else {
			_ = a.drafts.Clear(ctx)
		}
	}

	steps := []struct {
		prompt string
		ask    func() error
	}{
		{"Borehole ID", func() (err error) { form.BoreholeID, err = a.text("Borehole ID", form.BoreholeID); return }},
		{"Project name", func() (err error) { form.ProjectName, err = a.text("Project name", form.ProjectName); return }},
		{"Site name", func() (err error) { form.SiteName, err = a.text("Site name", form.SiteName); return }},
		{"Latitude", func() (err error) { form.Latitude, err = a.text("Latitude (deg)", form.Latitude); return }},
		{"Longitude", func() (err error) { form.Longitude, err = a.text("Longitude (deg)", form.Longitude); return }},
		{"Ground elevation", func() (err error) { form.GroundElevation, err = a.text("Ground elevation (m RL)", form.GroundElevation); return }},
		{"Start date", func() (err error) { form.StartDate, err = a.text("Start date (YYYY-MM-DD)", form.StartDate); return }},
		{"End date", func() (err error) { form.EndDate, err = a.text("End date (YYYY-MM-DD)", form.EndDate); return }},
		{"Drilling method", func() (err error) {
			form.DrillingMethod, err = GetChoice(a.reader, "Drilling method", services.MethodOptions, form.DrillingMethod, a.out)
			return
		}},
		{"Borehole diameter", func() (err error) { form.BoreholeDiameter, err = a.text("Borehole diameter (mm)", form.BoreholeDiameter); return }},
		{"Target depth", func() (err error) { form.TargetDepth, err = a.text("Target depth (m)", form.TargetDepth); return }},
		{"Final depth", func() (err error) { form.FinalDepth, err = a.text("Final depth (m)", form.FinalDepth); return }},
		{"Casing installed", func() (err error) { form.CasingInstalled, err = a.text("Casing installed (mm)", form.CasingInstalled); return }},
		{"Groundwater encountered", func() (err error) {
			form.GroundwaterEncountered, err = GetYesNo(a.reader, "Groundwater encountered?", form.GroundwaterEncountered, a.out)
			return
		}},
		{"Groundwater depth", func() (err error) {
			if !form.GroundwaterEncountered {
				form.GroundwaterDepth = ""
				return nil
			}
			form.GroundwaterDepth, err = a.text("Groundwater depth (m)", form.GroundwaterDepth)
			return
		}},
		{"Soil description", func() (err error) {
			form.SoilDescription, err = a.multiline("Soil description", form.SoilDescription)
			return
		}},
		{"USCS class", func() (err error) {
			form.USCSClass, err = GetChoice(a.reader, "USCS classification", services.USCSOptions, form.USCSClass, a.out)
			return
		}},
		{"Avg SPT N60", func() (err error) { form.AvgSPTN60, err = a.text("Average SPT N60", form.AvgSPTN60); return }},
		{"Contractor", func() (err error) { form.Contractor, err = a.text("Contractor", form.Contractor); return }},
		{"Logging geologist", func() (err error) { form.LoggingGeologist, err = a.text("Logging geologist", form.LoggingGeologist); return }},
		{"Remarks", func() (err error) { form.Remarks, err = a.multiline("Remarks", form.Remarks); return }},
	}

	for _, step := range steps {
		if err := step.ask(); err != nil {
			printlnFn("Input aborted at", step.prompt+":", err)
			return err
		}
		if err := a.drafts.Save(ctx, form); err != nil {
			a.logger.Warn(ctx, "saving form draft", "error", err)
		}
	}

	if problems := services.Validate(form); len(problems) > 0 {
		printlnFn("The form has problems; it was saved as a draft:")
		for _, p := range problems {
			printlnFn("  -", p)
		}
		return nil
	}

	submit, err := GetYesNo(a.reader, "Submit this report?", true, a.out)
	if err != nil || !submit {
		printlnFn("Draft kept, not submitted.")
		return err
	}

	if err := a.reports.Submit(ctx, form); err != nil {
		printlnFn("Submission failed, draft kept:", err)
		return err
	}
	if err := a.drafts.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "clearing form draft", "error", err)
	}
	printlnFn("Report", form.BoreholeID, "submitted.")
	return nil
}

func (a *App) text(prompt, current string) (string, error) {
	return GetTextDefault(a.reader, prompt, current, a.out)
}

func (a *App) multiline(prompt, current string) (string, error) {
	shown := prompt
	if current != "" {
		preview := current
		if i := strings.IndexByte(preview, '\n'); i >= 0 {
			preview = preview[:i] + "…"
		}
		shown = prompt + " [" + preview + "]"
	}
	value, err := GetMultiline(a.reader, shown, a.out)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}
