package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/rendertext"
)

// Ask sends a question about the logged boreholes to the analysis endpoint.
// Prior turns travel with the request so follow-up questions resolve, and the
// new pair lands in the stored history.
func (a *App) Ask(ctx context.Context) error {
	if _, err := a.auth.RequireSession(); err != nil {
		printlnFn("Please log in first.")
		return err
	}

	question, err := GetSimpleText(a.reader, "Your question", a.out)
	if err != nil {
		return err
	}
	contextText, err := GetMultiline(a.reader, "Extra context (optional)", a.out)
	if err != nil {
		return err
	}

	entry, err := a.qa.Ask(ctx, question, contextText)
	if err != nil {
		printlnFn("Ask failed:", err)
		return err
	}

	a.printAnswer(entry)

	path, err := GetSimpleText(a.reader, "Write answer HTML to file (empty to skip)", a.out)
	if err != nil || path == "" {
		return nil
	}
	html, err := a.renderer.SafeHTML(entry.Answer)
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

// History prints stored question/answer pairs, newest first.
func (a *App) History(ctx context.Context) error {
	entries, err := a.qa.History(ctx)
	if err != nil {
		printlnFn("Error loading history:", err)
		return err
	}
	if len(entries) == 0 {
		printlnFn("No questions asked yet.")
		return nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		printlnFn(fmt.Sprintf("--- %s ---", e.Asked().Format("2006-01-02 15:04")))
		a.printAnswer(e)
	}
	return nil
}

func (a *App) ForgetHistory(ctx context.Context) error {
	if err := a.qa.Clear(ctx); err != nil {
		printlnFn("Error clearing history:", err)
		return err
	}
	printlnFn("Question history cleared.")
	return nil
}

func (a *App) printAnswer(e models.QAEntry) {
	printlnFn("Q:", e.Question)
	answer, err := a.renderer.Text(e.Answer)
	if err != nil {
		answer = e.Answer
	}
	printlnFn("A:", answer)

	if ev := rendertext.ParseEvidence(e.Evidence); ev != nil {
		printlnFn("evidence:")
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(ev.Header, "\t"))
		for _, row := range ev.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		_ = tw.Flush()
	}
}
