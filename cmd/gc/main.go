package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"design-vault/internal/config"
	"design-vault/internal/db"
	"design-vault/internal/designs"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	maxDesigns := flag.Int("max-designs", 0, "designs to reclaim per sweep (overrides GC_MAX_DESIGNS)")
	maxBytes := flag.Int64("max-bytes", 0, "byte budget per sweep (overrides GC_MAX_BYTES)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.ConfigurePool(conn, cfg); err != nil {
		log.Fatalf("pool configuration failed: %v", err)
	}

	target := designs.SweepTarget{MaxDesigns: cfg.GCMaxDesigns, MaxBytes: cfg.GCMaxBytes}
	if *maxDesigns > 0 {
		target.MaxDesigns = *maxDesigns
	}
	if *maxBytes > 0 {
		target.MaxBytes = *maxBytes
	}

	store := designs.NewStore(conn)
	if *once {
		result, err := store.Reclaim(target)
		if err != nil {
			log.Fatalf("sweep failed after reclaiming %d designs: %v", result.Designs, err)
		}
		log.Printf("sweep reclaimed %d designs (%d bytes)", result.Designs, result.Bytes)
		return
	}

	interval := time.Duration(cfg.GCSweepSeconds) * time.Second
	log.Printf("design-vault gc sweeping every %s", interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	designs.NewSweeper(store, interval, target).Run(ctx)
}
