package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/kestrelcode/godscan/internal/config"
	godscanmcp "github.com/kestrelcode/godscan/internal/mcp"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run godscan as a Model Context Protocol server over stdio",
		Description: `Exposes a single detect_god_objects tool over stdio, suitable for
registering godscan with an MCP-aware assistant (e.g. a Claude Desktop
config entry with "command": "godscan", "args": ["mcp"]).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a default config file (TOML, YAML, or JSON)",
				EnvVars: []string{"GODSCAN_CONFIG"},
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	cfg := config.LoadOrDefault(c.String("config"))
	server := godscanmcp.NewServer(version, cfg)
	return server.Run(context.Background())
}
