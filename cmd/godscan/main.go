package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kestrelcode/godscan/internal/config"
	"github.com/kestrelcode/godscan/internal/engine"
	"github.com/kestrelcode/godscan/internal/progress"
	"github.com/kestrelcode/godscan/internal/reporter"
)

var version = "dev"

// getPaths returns paths from positional args, defaulting to ["."].
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

func main() {
	app := &cli.App{
		Name:    "godscan",
		Usage:   "Detects god files, god classes, and god methods, and suggests extraction clusters",
		Version: version,
		Description: `godscan walks a directory tree, scores every class and method against
configurable size and complexity thresholds, and flags the ones that have
outgrown a single responsibility. Flagged classes are additionally
clustered by method similarity to suggest how they might be split.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"GODSCAN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, toon",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			scanCmd(),
			mcpCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"detect"},
		Usage:     "Scan one or more directories for god files, god classes, and god methods",
		ArgsUsage: "[path...]",
		Action:    runScanCmd,
	}
}

func runScanCmd(c *cli.Context) error {
	paths := getPaths(c)
	colored := !c.Bool("no-color")
	cfg := config.LoadOrDefault(c.String("config"))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	eng := engine.New(nil, cfg.Thresholds, cfg.Exclude.Dirs...)

	var combined engine.Report
	for _, root := range paths {
		spinner := progress.NewSpinner(fmt.Sprintf("Analyzing %s...", root))
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					spinner.Tick()
				}
			}
		}()

		_, report, err := eng.Run(ctx, root)
		close(done)
		spinner.Finish()
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", root, err)
		}
		combined = mergeReports(combined, report)
	}

	format := reporter.ParseFormat(c.String("format"))
	if err := reporter.Render(os.Stdout, combined, format, colored); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if hasFindings(combined) {
		os.Exit(1)
	}
	return nil
}

// hasFindings reports whether combined contains any god file, god class, or
// god method, matching spec.md §6's exit-status contract: success only when
// none of the three were found.
func hasFindings(r engine.Report) bool {
	return len(r.GodFiles) > 0 || len(r.GodClasses) > 0 || r.TotalGodMethods > 0
}

func mergeReports(acc, r engine.Report) engine.Report {
	acc.TotalFiles += r.TotalFiles
	acc.TotalClasses += r.TotalClasses
	acc.GodFiles = append(acc.GodFiles, r.GodFiles...)
	acc.GodClasses = append(acc.GodClasses, r.GodClasses...)
	acc.GodMethodClasses = append(acc.GodMethodClasses, r.GodMethodClasses...)
	acc.HealthyClasses = append(acc.HealthyClasses, r.HealthyClasses...)
	acc.TotalGodMethods += r.TotalGodMethods
	acc.GodMethodNames = append(acc.GodMethodNames, r.GodMethodNames...)
	return acc
}
