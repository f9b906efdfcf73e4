package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/catalog"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/sim"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/storage"
)

func main() {
	config, err := sim.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&config.BlueprintDir, "blueprints", config.BlueprintDir, "Directory of <name>.json blueprints.")
	flag.StringVar(&config.Blueprint, "blueprint", config.Blueprint, "Blueprint of the body.")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "Damage RNG seed, 0 for random.")
	flag.StringVar(&config.DB, "db", config.DB, "SQLite file to save bodies to.")
	flag.StringVar(&config.ID, "id", config.ID, "Name of the body in the database.")
	flag.StringVar(&config.LogFile, "log", config.LogFile, "Rotated log file, in addition to stderr.")
	flag.StringVar(&config.AuditLog, "audit", config.AuditLog, "File to append combat events to as JSON lines.")
	script := flag.String("c", "", "Semicolon separated commands to run instead of reading stdin.")

	flag.Parse()

	if config.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store *storage.Store
	if config.DB != "" {
		if store, err = storage.Open(ctx, config.DB); err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	var audit *storage.AuditLogger
	if config.AuditLog != "" {
		if audit, err = storage.NewAuditLogger(config.AuditLog); err != nil {
			log.Fatal(err)
		}
		defer audit.Close()
	}

	if config.Seed == 0 {
		if config.Seed, err = sim.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("seed %d", config.Seed)

	cat := catalog.New(config.BlueprintDir, config.CacheTTL, catalog.DefaultMaxKeys)
	session, err := sim.NewSession(ctx, config.ID, config.Blueprint, cat, store, audit, sim.NewRand(config.Seed), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	var input io.Reader = os.Stdin
	if *script != "" {
		input = strings.NewReader(strings.ReplaceAll(*script, ";", "\n"))
	}
	if err := session.Run(ctx, input); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		if err := session.Save(ctx); err != nil {
			log.Fatal(err)
		}
	}
}
