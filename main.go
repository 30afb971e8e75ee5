package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"Portfolio/internal/calc/batch"
	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/concrete"
	"Portfolio/internal/calc/detailed"
	"Portfolio/internal/calc/importer"
	"Portfolio/internal/calc/materials"
	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/quick"
	"Portfolio/internal/calc/report"
	"Portfolio/internal/calc/respond"
	"Portfolio/internal/calc/slab"
	"Portfolio/internal/config"
	"Portfolio/internal/content"
	"Portfolio/internal/logging"
	"Portfolio/internal/middleware"
)

var wg sync.WaitGroup

func HandleList(r *mux.Router, cfg config.Config, catalog *content.Catalog) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	buildingH := &building.Handler{}
	slabH := &slab.Handler{}
	quickH := &quick.Handler{}
	detailedH := &detailed.Handler{}
	materialsH := &materials.Handler{}
	concreteH := &concrete.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}

	calc := api.PathPrefix("/calc").Subrouter()
	calc.HandleFunc("/defaults", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, params.Default())
	}).Methods("GET")
	calc.HandleFunc("/building", buildingH.Calc).Methods("POST")
	calc.HandleFunc("/building/pdf", reportH.PDF).Methods("POST")
	calc.HandleFunc("/building/xlsx", reportH.XLSX).Methods("POST")
	calc.HandleFunc("/slab", slabH.Calc).Methods("POST")
	calc.HandleFunc("/quick", quickH.Calc).Methods("POST")
	calc.HandleFunc("/detailed", detailedH.Calc).Methods("POST")
	calc.HandleFunc("/materials", materialsH.Calc).Methods("POST")
	calc.HandleFunc("/concrete", concreteH.Calc).Methods("POST")
	calc.HandleFunc("/batch/building", batchH.Building).Methods("POST")
	calc.HandleFunc("/import/building", importerH.Building).Methods("POST")

	contentH := &content.Handler{Catalog: catalog}
	api.HandleFunc("/content", contentH.All).Methods("GET")
	api.HandleFunc("/content/projects", contentH.Projects).Methods("GET")
	api.HandleFunc("/content/posts", contentH.Posts).Methods("GET")
	api.HandleFunc("/content/categories/{kind}", contentH.Categories).Methods("GET")
	api.HandleFunc("/content/{section}", contentH.Section).Methods("GET")

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
}

// NewHandler builds the full middleware chain around the router.
func NewHandler(cfg config.Config, catalog *content.Catalog) http.Handler {
	r := mux.NewRouter()
	HandleList(r, cfg, catalog)
	return middleware.Recover(middleware.RequestLogger(middleware.CORS(cfg.AllowedOrigin, r)))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	catalog, err := content.Load(cfg.ContentFile)
	if err != nil {
		logging.Fatal("load content", "file", cfg.ContentFile, "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(cfg, catalog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "addr", server.Addr, "tls", cfg.TLS(), "static", cfg.StaticDir)
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Fatal("server shutdown", "error", err)
	}
	wg.Wait()
	slog.Info("server stopped")
}
