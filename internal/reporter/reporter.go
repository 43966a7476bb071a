// Package reporter renders an engine.Report as a colored terminal table,
// JSON, or TOON, adapted from panbanda-omen's internal/output formatter.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	toon "github.com/toon-format/toon-go"

	"github.com/kestrelcode/godscan/internal/engine"
)

// Format is an output rendering mode.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOON Format = "toon"
)

// ParseFormat converts a string to Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "toon":
		return FormatTOON
	default:
		return FormatText
	}
}

// Render writes report to w in the requested format.
func Render(w io.Writer, report engine.Report, format Format, colored bool) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, report)
	case FormatTOON:
		return renderTOON(w, report)
	default:
		return renderText(w, report, colored)
	}
}

func renderJSON(w io.Writer, report engine.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func renderTOON(w io.Writer, report engine.Report) error {
	out, err := toon.Marshal(report, toon.WithIndent(2))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderText(w io.Writer, report engine.Report, colored bool) error {
	heading(w, "godscan report", colored, color.FgCyan)
	fmt.Fprintf(w, "files analyzed: %d, classes analyzed: %d\n\n", report.TotalFiles, report.TotalClasses)

	if len(report.GodFiles) > 0 {
		renderGodFiles(w, report, colored)
	} else {
		fmt.Fprintln(w, "no god files found")
		fmt.Fprintln(w)
	}

	if len(report.GodClasses) > 0 {
		renderGodClasses(w, report, colored)
	} else {
		fmt.Fprintln(w, "no god classes found")
		fmt.Fprintln(w)
	}

	if len(report.GodMethodClasses) > 0 {
		renderGodMethodClasses(w, report)
	} else if report.TotalGodMethods == 0 {
		fmt.Fprintln(w, "no god methods found")
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "god methods: %d, healthy classes: %d\n", report.TotalGodMethods, len(report.HealthyClasses))
	return nil
}

func heading(w io.Writer, title string, colored bool, attr color.Attribute) {
	if colored {
		color.New(color.Bold, attr).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)
}

func renderGodFiles(w io.Writer, report engine.Report, colored bool) {
	table := newTable(w)
	table.Header([]string{"file", "classes", "lines", "score", "violations"})
	for _, f := range report.GodFiles {
		score := fmt.Sprintf("%d", f.ViolationScore)
		if colored {
			score = color.RedString(score)
		}
		table.Append([]string{
			f.Path,
			fmt.Sprintf("%d", f.ClassCount),
			fmt.Sprintf("%d", f.TotalLines),
			score,
			strings.Join(f.Violations, "; "),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderGodClasses(w io.Writer, report engine.Report, colored bool) {
	table := newTable(w)
	table.Header([]string{"file", "class", "violations", "god methods", "clusters"})
	for _, c := range report.GodClasses {
		name := c.ClassName
		if colored {
			name = color.YellowString(name)
		}
		table.Append([]string{
			c.FilePath,
			name,
			strings.Join(c.Violations, "; "),
			fmt.Sprintf("%d", len(c.GodMethodNames)),
			fmt.Sprintf("%d", c.ClusterCount),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderGodMethodClasses(w io.Writer, report engine.Report) {
	table := newTable(w)
	table.Header([]string{"file", "class", "god methods"})
	for _, c := range report.GodMethodClasses {
		table.Append([]string{c.FilePath, c.ClassName, strings.Join(c.GodMethodNames, ", ")})
	}
	table.Render()
	fmt.Fprintln(w)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)
}
