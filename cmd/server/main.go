package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adeia/internal/application"
	"adeia/internal/catalog"
	"adeia/internal/catalog/settings"
	"adeia/internal/document/render/pdf"
	"adeia/internal/holidays"
	"adeia/internal/middleware"
	"adeia/internal/platform/config"
	"adeia/internal/transport/http/handlers/cataloghandler"
	"adeia/internal/transport/http/handlers/documenthandler"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	port, cleanup, err := openSettingsPort(ctx, cfg)
	if err != nil {
		log.Fatalf("settings store failed: %v", err)
	}
	defer cleanup()

	fetcher := holidays.NewFetcher(cfg.HolidaySourceURL, cfg.ImportTimeout)
	store, err := catalog.NewStore(ctx, port, fetcher)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	builder := application.NewBuilder(store)
	renderer := pdf.NewRenderer(cfg.FontDir)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.BodyLimit(1 << 20))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		cataloghandler.NewHandler(store).RegisterRoutes(r)
		documenthandler.NewHandler(builder, renderer).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	slog.Info("server listening", "addr", cfg.Addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// openSettingsPort picks the persistence backend: Postgres when DATABASE_URL
// is set, an embedded SQLite file otherwise.
func openSettingsPort(ctx context.Context, cfg config.Config) (catalog.Port, func(), error) {
	if cfg.DatabaseURL != "" {
		port, err := settings.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return port, port.Close, nil
	}

	if dir := filepath.Dir(cfg.SettingsPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	port, err := settings.NewSQLite(cfg.SettingsPath)
	if err != nil {
		return nil, nil, err
	}
	return port, func() { _ = port.Close() }, nil
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
