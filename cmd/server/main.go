package main

import (
	"container-tracking-service/internal/adapters/cache"
	"container-tracking-service/internal/adapters/repositories"
	"container-tracking-service/internal/adapters/summary"
	"container-tracking-service/internal/adapters/weather"
	"container-tracking-service/internal/api"
	"container-tracking-service/internal/config"
	"container-tracking-service/internal/ports"
	"container-tracking-service/internal/services"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads the static container dataset into SQLite, wires the scoring
// and summary services behind ports, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	datasetPath := config.Get("DATASET_PATH", "data/containers.json")
	modelPath := config.Get("MODEL_PATH", "data/eta_model.json")
	riskPath := config.Get("RISK_PATH", "data/region_risk.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// The dataset is read-only for the process lifetime; seeding at
	// startup is the only write path.
	if err := initAndSeed(db, datasetPath); err != nil {
		log.Fatal(err)
	}

	weights, err := services.LoadWeights(modelPath)
	if err != nil {
		log.Fatal(err)
	}
	riskTable, err := services.LoadRiskTable(riskPath)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteContainerRepository(db)
	scorer := &services.Scorer{
		Repo:    repo,
		Weights: weights,
		Risk:    riskTable,
	}

	// Redis caches are optional; without them every delegated summary
	// and weather lookup goes straight to the upstream service.
	var summaryCache *cache.RedisSummaryCache
	var weatherCache *cache.RedisWeatherCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		summaryCache = cache.NewRedisSummaryCache(client, 5*time.Minute)
		weatherCache = cache.NewRedisWeatherCache(client, 10*time.Minute)
		log.Printf("Redis cache enabled addr=%s", addr)
	}

	// Without a credential the delegated strategy is never constructed
	// and summaries are template-only.
	var summaryClient ports.SummaryClient
	if key := os.Getenv("GEMINI_API_KEY"); strings.TrimSpace(key) != "" {
		client, err := summary.NewGenAIClient(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatal(err)
		}
		summaryClient = client
	} else {
		log.Println("GEMINI_API_KEY not set (template summaries only)")
	}

	summarizer := &services.Summarizer{
		Client:  summaryClient,
		Cache:   summaryCache,
		Timeout: time.Duration(config.GetInt("SUMMARY_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	router := api.NewRouter(scorer, summarizer, weather.NewOpenMeteoProvider(), weatherCache)

	// Write timeout leaves room for a slow delegated summary call plus
	// its template fallback.
	log.Printf("Server listening addr=:%s dataset=%s", port, datasetPath)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, datasetPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, datasetPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
