package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fixturelab/shenfen/pkg/api"
)

// cmdServe runs the MCP tool server on stdin/stdout.
func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	fs.Parse(args)

	logger := newLogger()
	gen, err := newGenerator(loadConfig(*cfgPath, logger), *seed, logger)
	if err != nil {
		logger.Error("generator init failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewMCPServer("shenfen", "1.0.0")
	api.RegisterMCPTools(srv, gen)

	logger.Info("shenfen MCP server on stdio")
	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
