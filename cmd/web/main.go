package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	apphttp "github.com/LucasBarberan/sra-burga-pedidos/internal/http"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		// Not fatal: the storefront stays up and renders empty screens.
		logger.Warn("CATALOG_BASE_URL not set, catalog fetches disabled")
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		log.Fatal("COOKIE_SECRET environment variable is required")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cat := catalog.NewClient(baseURL, &http.Client{}, logger)
	mgr := cart.NewManager()

	r, err := apphttp.NewRouter(logger, cat, mgr, apphttp.Config{
		CookieSecret: []byte(secret),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		TemplatesDir: "templates",
	})
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	logger.Info("listening", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
