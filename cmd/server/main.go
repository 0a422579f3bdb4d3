package main // Entry point package

import (
	"context"
	"log" // Logging library
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // .env loading, optional in production
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/Alena-Semenova/plan-d-back/internal/config"     // Internal config loader
	"github.com/Alena-Semenova/plan-d-back/internal/database"   // Store connector
	"github.com/Alena-Semenova/plan-d-back/internal/handler"    // HTTP handlers
	"github.com/Alena-Semenova/plan-d-back/internal/queue"      // registration audit consumer
	"github.com/Alena-Semenova/plan-d-back/internal/repository" // DB repositories
	"github.com/Alena-Semenova/plan-d-back/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // .env is a convenience; absence is not an error
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pinger := database.NewPinger(db, cfg.PingInterval)
	pinger.Start(ctx)
	defer pinger.Stop()

	if cfg.RabbitURL != "" {
		go queue.StartRegistrationConsumer(ctx, cfg.RabbitURL)
	}

	users := repository.NewUserRepo(db)
	auth := handler.NewAuthHandler(cfg, users)

	e := echo.New()
	router.RegisterRoutes(e, auth)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)

	go func() {
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
