package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bill-generator/internal/adapters/cli"
	"bill-generator/internal/app"
	"bill-generator/internal/db"
	"bill-generator/internal/history"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: app <generate|summary|runs> [flags]")
		fmt.Fprintln(os.Stderr, "  generate -file <workbook.xlsx> [-premium N] [-direction add|deduct] [-prior N] [-out path]")
		fmt.Fprintln(os.Stderr, "  summary  -file <workbook.xlsx> [-premium N] [-direction add|deduct] [-prior N]")
		fmt.Fprintln(os.Stderr, "  runs")
		os.Exit(1)
	}

	ctx := context.Background()

	var hist history.Service
	pool, err := db.NewPool(ctx)
	switch {
	case err == nil:
		defer pool.Close()
		hist = history.NewService(pool)
	case errors.Is(err, db.ErrNoDatabase):
		// Run history is optional for one-shot use.
	default:
		log.Fatalf("database: %v", err)
	}

	svc := app.NewAppService(hist)
	cli.Run(ctx, svc, os.Args[1:])
}
