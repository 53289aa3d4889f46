package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/api/handlers"
	"github.com/Marga-Ghale/projectflow/internal/api/middleware"
	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/cron"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/seed"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()
	loc := cfg.Location()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Open Store
	// ============================================
	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer st.Close()

	if err := store.EnsureSchema(ctx, st); err != nil {
		log.Fatalf("❌ Store schema check failed: %v", err)
	}
	log.Printf("✅ Store ready (%s)", cfg.StoreBackend)

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(st)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.SeedData && !cfg.IsProduction() {
		if _, err := seed.SeedData(ctx, repos, time.Now().In(loc)); err != nil {
			log.Printf("⚠️  Seeding failed: %v", err)
		}
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)
	log.Println("🔌 WebSocket hub initialized")

	// ============================================
	// Initialize All Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		Broadcaster: broadcaster,
	})
	log.Println("✨ All services initialized")

	wsHandler := socket.NewHandler(hub, services.Auth)
	h := handlers.NewHandlers(services, loc)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(services, loc, nil)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"store":      cfg.StoreBackend,
			"websocket":  "active",
			"ws_clients": hub.GetConnectedClientsCount(),
		})
	})

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	api.GET("/ws", wsHandler.HandleWebSocket)
	handlers.RegisterRoutes(api, h, middleware.AuthMiddleware(services.Auth))

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
