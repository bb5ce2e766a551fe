package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/vincera/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// vincera-mcp speaks MCP over stdio and proxies data from a running Vincera
// server (typically reached over Tailscale).
func main() {
	baseURL := flag.String("url", "", "base URL of the Vincera server (required)")
	apiKey := flag.String("api-key", os.Getenv("VINCERA_AUTH_API_KEY"), "API key, if the server requires one")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *baseURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: vincera-mcp -url http://vincera:8080 [-api-key KEY]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ds := mcp.NewHTTPClient(*baseURL, *apiKey)
	s := mcp.New(ds, Version, log)

	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
