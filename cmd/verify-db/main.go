package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"bill-generator/internal/db"
)

// verify-db checks that the configured database is reachable and carries the
// bill_runs schema. Intended for deploy-time smoke checks.
func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	var exists bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'bill_runs')`,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("[SCHEMA] query failed: %v", err)
	}
	if !exists {
		log.Fatalf("[SCHEMA] bill_runs table missing; run cmd/migrate first")
	}
	log.Println("[SCHEMA] bill_runs present")

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM bill_runs").Scan(&count); err != nil {
		log.Fatalf("[DATA] count failed: %v", err)
	}
	log.Printf("[DATA] %d recorded runs", count)
	log.Println("[DONE] database verified")
}
