package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/BoobaMarket_Go/internal/config"
	"github.com/osse101/BoobaMarket_Go/internal/database"
)

const usage = `Usage: migrate <command> [args]

Commands:
  up        apply all pending migrations
  down      roll back the latest migration
  status    print the state of every migration
  version   print the current schema version
  redo      roll back and re-apply the latest migration`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), 1, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	command := flag.Arg(0)
	if err := database.Migrate(context.Background(), pool, command, flag.Args()[1:]...); err != nil {
		pool.Close()
		log.Fatalf("migrate %s: %v", command, err)
	}
}
