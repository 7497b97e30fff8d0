package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	optimizercmd "github.com/louisbranch/gameforge/internal/cmd/optimizer"
	"github.com/louisbranch/gameforge/internal/platform/config"
)

// main reports optimization advice for a game data document.
func main() {
	cfg, err := optimizercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[OPTIMIZER] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := optimizercmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
