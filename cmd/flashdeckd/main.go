package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"flashdeck"
)

func main() {
	// Load .env for local development; in deployment the variables come
	// from the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := flashdeck.FromEnv()
	flashdeck.SetVerbose(cfg.Verbose)

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	history, err := flashdeck.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open history database: %v", err)
	}
	defer history.CloseDB()

	if err := history.CreateTables(); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}

	generator := flashdeck.NewGenerator(cfg.OpenAIAPIKey, cfg.LogDir)
	server := flashdeck.NewServer(cfg, generator, history)

	log.Printf("flashdeckd listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, server.Routes()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
