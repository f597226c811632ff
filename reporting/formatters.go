package reporting

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/verdictkit/verdict/i18n"
)

const separatorWidth = 40

func paint(c text.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// SuiteTable renders the per-suite results table with localized headers and a
// totals footer.
func SuiteTable(stats []SuiteStats, r *i18n.Renderer, colored bool) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{
		capitalize(r.Render("results.suite")),
		capitalize(r.Render("results.passed")),
		capitalize(r.Render("results.failed")),
		capitalize(r.Render("results.total")),
		capitalize(r.Render("results.detail")),
	})
	totalPassed, totalFailed, total := 0, 0, 0
	for _, s := range stats {
		t.AppendRow(table.Row{s.Name, s.Passed, s.Failed, s.Total, s.Details})
		totalPassed += s.Passed
		totalFailed += s.Failed
		total += s.Total
	}
	t.AppendFooter(table.Row{"", totalPassed, totalFailed, total, ""})
	if colored {
		t.SetStyle(table.StyleColoredBright)
	} else {
		t.SetStyle(table.StyleLight)
	}
	return t.Render()
}

// FormatSummary renders the localized cross-suite summary block.
func FormatSummary(stats []SuiteStats, r *i18n.Renderer, colored bool) string {
	totalPassed, totalFailed, total := 0, 0, 0
	for _, s := range stats {
		totalPassed += s.Passed
		totalFailed += s.Failed
		total += s.Total
	}
	rate := 1.0
	if total > 0 {
		rate = float64(totalPassed) / float64(total)
	}

	sep := paint(text.FgBlue, strings.Repeat("=", separatorWidth), colored)
	var b strings.Builder
	b.WriteString(sep + "\n")
	b.WriteString(paint(text.Bold, r.Render("summary.title"), colored) + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(r.Render("summary.suites.run", len(stats)) + "\n")
	b.WriteString(r.Render("summary.total.tests", total) + "\n")
	b.WriteString(fmt.Sprintf("%s: %d\n",
		paint(text.FgGreen, capitalize(r.Render("results.passed")), colored), totalPassed))
	b.WriteString(fmt.Sprintf("%s: %d\n",
		paint(text.FgRed, capitalize(r.Render("results.failed")), colored), totalFailed))
	b.WriteString(r.Render("summary.success.rate", rate*100) + "\n")
	b.WriteString(sep)
	return b.String()
}
