package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "stylefit.dev/pkg/stylefit/internal/model"
)

const (
	sourceBaseline = "baseline"
	sourceInferred = "inferred"
)

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

// renderSettingsTable lists the resulting configuration and where each value
// comes from.
func renderSettingsTable(result m.ScoredConfiguration, baseline m.Configuration) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Setting", "Value", "Source")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, key := range result.Configuration.Keys() {
		source := sourceBaseline
		if v, ok := baseline.Get(key); !ok || v != result.Configuration[key] {
			source = sourceInferred
		}

		table.Append([]string{key, result.Configuration[key], source})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d settings", len(result.Configuration)),
		"",
		fmt.Sprintf("%d inferred", result.Overrides),
	})
	table.Render()

	return buf.String()
}

// renderFilesTable lists the per-file cost of the result.
func renderFilesTable(files []m.Path, score m.Score) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Path", "Cost")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for i, path := range files {
		cost := "-"
		if i < len(score.Files) {
			cost = score.Files[i].String()
		}

		table.Append([]string{string(path), cost})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), score.String()})
	table.Render()

	return buf.String()
}

func renderChanges(changes []m.Trial) string {
	if len(changes) == 0 {
		return "No setting changed from the baseline.\n"
	}

	var b strings.Builder

	b.WriteString("Accepted changes:\n")

	for _, c := range changes {
		fmt.Fprintf(&b, "  pass %d: %s=%s -> %s\n", c.Pass, c.Setting, c.Value, c.Total)
	}

	return b.String()
}

func renderStats(stats m.SearchStats) string {
	status := "converged"

	switch {
	case stats.DeadlineReached:
		status = "deadline reached"
	case !stats.Converged:
		status = "pass limit reached"
	}

	return fmt.Sprintf("%d presets, %d trials (%d accepted) in %d passes, %s, %s\n",
		stats.PresetsScored, stats.TrialsEvaluated, stats.TrialsAccepted, stats.Passes,
		status, stats.Elapsed.Round(time.Millisecond))
}

// renderReport renders a full report as plain text.
func renderReport(report m.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s\n", report.RunID)
	fmt.Fprintf(&b, "Baseline: %s\n", report.Result.Baseline)
	fmt.Fprintf(&b, "Score: %s\n\n", report.Result.Score)

	b.WriteString(renderSettingsTable(report.Result, baselineOf(report)))
	b.WriteString("\n")

	if len(report.Files) > 0 {
		b.WriteString(renderFilesTable(report.Files, report.Result.Score))
		b.WriteString("\n")
	}

	b.WriteString(renderChanges(report.Changes))
	b.WriteString(renderStats(report.Stats))

	return b.String()
}

// baselineOf reconstructs the baseline settings by undoing accepted changes
// that the baseline did not already hold.
func baselineOf(report m.Report) m.Configuration {
	changed := make(map[string]struct{}, len(report.Changes))
	for _, c := range report.Changes {
		changed[c.Setting] = struct{}{}
	}

	base := make(m.Configuration, len(report.Result.Configuration))
	for k, v := range report.Result.Configuration {
		if _, ok := changed[k]; !ok {
			base[k] = v
		}
	}

	return base
}

// renderPresets renders the option space.
func renderPresets(space m.OptionSpace) string {
	var buf bytes.Buffer

	options := newTable(&buf, "Option", "Values", "Description")
	options.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range space.Settings() {
		opt, _ := space.Option(name)
		options.Append([]string{name, strings.Join(quoteEmpty(opt.Values), ", "), opt.Description})
	}

	options.SetFooter([]string{fmt.Sprintf("%d options", len(space.Settings())), "", ""})
	options.Render()

	buf.WriteString("\n")

	presets := newTable(&buf, "Preset", "Settings", "Pinned")
	presets.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, p := range space.Presets() {
		pairs := make([]string, 0, len(p.Settings))
		for _, k := range p.Settings.Keys() {
			pairs = append(pairs, k+"="+p.Settings[k])
		}

		presets.Append([]string{p.Name, strings.Join(pairs, " "), strings.Join(p.Pinned, ", ")})
	}

	presets.SetFooter([]string{fmt.Sprintf("%d presets", len(space.Presets())), "", ""})
	presets.Render()

	return buf.String()
}

func quoteEmpty(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = strconv.Quote(v)
		}

		out[i] = v
	}

	return out
}

func renderCost(original, formatted m.Path, cost m.Cost) string {
	return fmt.Sprintf("%s -> %s: %s\n", original, formatted, cost)
}
