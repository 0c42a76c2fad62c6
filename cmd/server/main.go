package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "bill-generator/internal/adapters/web"
	"bill-generator/internal/app"
	"bill-generator/internal/db"
	"bill-generator/internal/history"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var hist history.Service
	pool, err := db.NewPool(ctx)
	switch {
	case err == nil:
		defer pool.Close()
		hist = history.NewService(pool)
	case errors.Is(err, db.ErrNoDatabase):
		log.Println("Warning: DATABASE_URL is not set; run history is disabled")
	default:
		log.Fatalf("database: %v", err)
	}

	svc := app.NewAppService(hist)
	server := webAdapter.NewServer(svc)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, server.Router()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
