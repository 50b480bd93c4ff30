package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                       // Loads .env files into the environment
	"github.com/labstack/echo/v4"                    // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"  // Echo built-in middleware
	"golang.org/x/time/rate"                         // Token bucket limits for the rate limiter

	"github.com/iliyamo/hotel-reservation/internal/config"                 // Internal config loader
	"github.com/iliyamo/hotel-reservation/internal/engine"                 // Reservation engine
	"github.com/iliyamo/hotel-reservation/internal/handler"                // HTTP handlers
	"github.com/iliyamo/hotel-reservation/internal/queue"                  // Event consumer
	"github.com/iliyamo/hotel-reservation/internal/repository"             // In-memory stores
	"github.com/iliyamo/hotel-reservation/internal/router"                 // Route registration
	queuepublisher "github.com/iliyamo/hotel-reservation/internal/service" // Event publisher
	"github.com/iliyamo/hotel-reservation/internal/utils"                  // Password hashing
)

func main() {
	_ = godotenv.Load() // optional .env file; real env vars win
	cfg := config.Load()

	// Hash the operator password once at startup so the plain form is
	// never kept around or compared directly.
	passwordHash, err := utils.HashPassword(cfg.OperatorPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash operator password: %v", err)
	}

	// The three stores live for the lifetime of the process; the
	// engine is their only writer.
	eng := engine.New(repository.NewRoomRepo(), repository.NewGuestRepo(), repository.NewReservationRepo())

	// Lifecycle events are published only when a broker is configured.
	var events handler.EventPublisher
	if cfg.AMQPURL != "" {
		events = queuepublisher.New(cfg.AMQPURL)
	}
	if cfg.ConsumerEnabled {
		go func() {
			if err := queue.StartReservationConsumer(cfg.AMQPURL); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	if rl := config.LoadRateLimitConfig(); rl.Enabled {
		e.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
			Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(rl.Rate),
				Burst:     rl.Burst,
				ExpiresIn: rl.ExpiresIn,
			}),
		}))
	}

	auth := handler.NewAuthHandler(cfg, passwordHash)
	op := handler.NewOperatorHandler(eng, events)
	router.RegisterRoutes(e, auth, op, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
