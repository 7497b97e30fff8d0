package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	gamegencmd "github.com/louisbranch/gameforge/internal/cmd/gamegen"
	"github.com/louisbranch/gameforge/internal/platform/config"
)

// main generates a game project from a specification.
func main() {
	cfg, err := gamegencmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[GAMEGEN] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gamegencmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
