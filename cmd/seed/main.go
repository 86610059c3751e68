package main

import (
	"context"
	"flag"
	"log"
	"time"

	"mingus/internal/config"
	"mingus/internal/database/migration"
	"mingus/internal/database/postgres"
	"mingus/internal/database/seeder"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "directory holding V<version>__<name>.sql files")
	skipSeed := flag.Bool("skip-seed", false, "apply migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: *migrationsDir}).Run(ctx, db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Printf("migrations applied dir=%s", *migrationsDir)

	if *skipSeed {
		return
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeding complete")
}
