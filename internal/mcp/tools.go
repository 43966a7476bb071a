package mcp

import (
	"bytes"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kestrelcode/godscan/internal/config"
	"github.com/kestrelcode/godscan/internal/engine"
	"github.com/kestrelcode/godscan/internal/reporter"
	"github.com/kestrelcode/godscan/pkg/parser"
)

// DetectInput is the input for the detect_god_objects tool.
type DetectInput struct {
	Paths  []string `json:"paths,omitempty" jsonschema:"Directories to scan. Defaults to the current directory if empty."`
	Config string   `json:"config,omitempty" jsonschema:"Path to a godscan config file overriding default thresholds."`
	Format string   `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or text."`
}

func getPaths(input DetectInput) []string {
	if len(input.Paths) == 0 {
		return []string{"."}
	}
	return input.Paths
}

func getFormat(input DetectInput) reporter.Format {
	switch input.Format {
	case "json":
		return reporter.FormatJSON
	case "text":
		return reporter.FormatText
	default:
		return reporter.FormatTOON
	}
}

func toolResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + msg}},
		IsError: true,
	}, nil, nil
}

// makeDetectHandler closes over a shared parser registry and a default
// config, letting each call override the config path without re-reading
// Default() thresholds for every request.
func makeDetectHandler(registry *parser.Registry, defaultCfg *config.Config) func(context.Context, *mcp.CallToolRequest, DetectInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, any, error) {
		cfg := defaultCfg
		if input.Config != "" {
			loaded, err := config.Load(input.Config)
			if err != nil {
				return toolError(err.Error())
			}
			cfg = loaded
		}

		eng := engine.New(registry, cfg.Thresholds, cfg.Exclude.Dirs...)
		format := getFormat(input)

		var combined engine.Report
		for _, root := range getPaths(input) {
			_, report, err := eng.Run(ctx, root)
			if err != nil {
				return toolError(err.Error())
			}
			combined = mergeReports(combined, report)
		}

		var buf bytes.Buffer
		if err := reporter.Render(&buf, combined, format, false); err != nil {
			return toolError(err.Error())
		}
		return toolResult(buf.String())
	}
}

// mergeReports folds one path's Report into an accumulator so multiple
// scanned paths produce a single combined result, matching the tool's
// one-call-many-paths input shape.
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
