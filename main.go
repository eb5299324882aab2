package main

import (
	"github.com/ayayoy/lendhub/internal/config"
	"github.com/ayayoy/lendhub/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
