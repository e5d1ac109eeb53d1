package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingbot-service/internal/infrastructure/config"
	"bookingbot-service/internal/infrastructure/persistence"
	"bookingbot-service/internal/interface/repository"
	"bookingbot-service/internal/interface/webhook"
	"bookingbot-service/internal/usecase"
	"bookingbot-service/pkg/logger"
	"bookingbot-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Booking Bot Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection for booking episodes
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection for reference data and the archive
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Load the reference tables once; a bad table is a startup error
	employeeRepo := repository.NewGormEmployeeRepository(gormDB)
	hotelRepo := repository.NewGormHotelRepository(gormDB)
	historyRepo := repository.NewGormStayHistoryRepository(gormDB)

	refStore, err := usecase.LoadRefStore(ctx, employeeRepo, hotelRepo, historyRepo, log)
	if err != nil {
		log.Fatal("Failed to load reference data", "error", err)
	}

	// Set up repositories
	bookingRepo := repository.NewMongoBookingRepository(db)
	archiveRepo, err := repository.NewGormBookingArchiveRepository(gormDB)
	if err != nil {
		log.Fatal("Failed to set up booking archive", "error", err)
	}

	// Set up the conversation core
	m := metrics.NewMetrics("bookingbot", prometheus.DefaultRegisterer)
	recommender := usecase.NewRecommender(refStore, log)
	conversation := usecase.NewConversation(bookingRepo, archiveRepo, recommender, refStore, m, log, cfg.MinPrevStayRating)

	// Set up the webhook
	limiter := webhook.NewPhoneLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	handler := webhook.NewHandler(conversation, limiter, log)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Booking Bot Service stopped")
}
