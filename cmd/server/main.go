package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shopsage/backend/config"
	httpDelivery "github.com/shopsage/backend/internal/delivery/http"
	"github.com/shopsage/backend/internal/infrastructure/cache"
	"github.com/shopsage/backend/internal/infrastructure/llm"
	"github.com/shopsage/backend/internal/infrastructure/serpapi"
	"github.com/shopsage/backend/internal/usecase"
)

func main() {
	// Load .env before viper picks up the environment
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopSage Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Search region: %s (%s/%s)", cfg.SerpAPI.Location, cfg.SerpAPI.CountryCode, cfg.SerpAPI.Currency)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	searchClient := serpapi.NewClient(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL, serpapi.ClientConfig{
		Location:    cfg.SerpAPI.Location,
		CountryCode: cfg.SerpAPI.CountryCode,
		Language:    cfg.SerpAPI.Language,
		Currency:    cfg.SerpAPI.Currency,
	})

	completionClient := llm.NewClient(cfg.OpenAI.APIKey, llm.ClientConfig{
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
		BaseURL:     cfg.OpenAI.BaseURL,
	})

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		searchClient.SetDebug(true)
		completionClient.SetDebug(true)
		log.Printf("API client debug mode enabled")
	}

	log.Printf("SerpAPI configured: %s", cfg.SerpAPI.BaseURL)
	log.Printf("OpenAI configured: model=%s, max_tokens=%d", cfg.OpenAI.Model, cfg.OpenAI.MaxTokens)

	// Initialize usecase layer
	shoppingService := usecase.NewShoppingService(
		memoryCache,
		searchClient,
		completionClient,
		usecase.ShoppingServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)
	sessionStore := usecase.NewSessionStore()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(shoppingService, sessionStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
