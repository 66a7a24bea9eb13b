package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/bodytest"
	"github.com/yusufkecer/body-test-backend/internal/config"
	"github.com/yusufkecer/body-test-backend/internal/db"
	"github.com/yusufkecer/body-test-backend/internal/handler"
	"github.com/yusufkecer/body-test-backend/internal/metrics"
	"github.com/yusufkecer/body-test-backend/internal/middleware"
	"github.com/yusufkecer/body-test-backend/internal/repository"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable must be set")
	}

	nine := bodycomp.NineSiteFormula(cfg.NineSiteFormula)
	if nine != bodycomp.NineSiteDurnin && nine != bodycomp.NineSiteParillo {
		log.Fatalf("NINE_SITE_FORMULA must be %q or %q, got %q", bodycomp.NineSiteDurnin, bodycomp.NineSiteParillo, cfg.NineSiteFormula)
	}
	opts := bodytest.Options{NineSite: nine}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	bodyTestRepo := repository.NewBodyTestRepository(database)

	bodyTestHandler := handler.NewBodyTestHandler(bodyTestRepo, opts)
	calcHandler := handler.NewCalculationHandler(opts)

	calcRL := middleware.NewRateLimiter(cfg.CalcRateLimit, cfg.CalcRateWindow).TrustProxy(cfg.TrustProxy)

	r := mux.NewRouter()

	// Global middleware: Request ID → CORS → Security Headers → MaxBytesReader
	r.Use(middleware.RequestID)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	if cfg.MetricsEnabled {
		metrics.Register()
		r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.Handle("/calculations/body-composition", calcRL.Middleware(http.HandlerFunc(calcHandler.BodyComposition))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/calculations/one-rep-max", calcRL.Middleware(http.HandlerFunc(calcHandler.OneRepMax))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/calculations/strength-standards", calcHandler.StrengthStandards).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/calculations/training-plan", calcHandler.TrainingPlan).Methods(http.MethodGet, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.HandleFunc("/body-tests", bodyTestHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/body-tests", bodyTestHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/body-tests/today", bodyTestHandler.Today).Methods(http.MethodGet, http.MethodOptions)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	log.Printf("server starting on %s (9-site formula: %s)", srv.Addr, nine)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
