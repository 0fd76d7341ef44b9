package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/brandvault/trademark-search/internal/config"
	"github.com/brandvault/trademark-search/internal/handler"
	"github.com/brandvault/trademark-search/internal/middleware"
	"github.com/brandvault/trademark-search/internal/queue"
	"github.com/brandvault/trademark-search/internal/repository"
	"github.com/brandvault/trademark-search/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environment wins
	cfg := config.Load()

	// The catalog lives only in process memory and is reseeded on
	// every start. The store handle is passed explicitly to every
	// handler; there is no global singleton.
	store := repository.NewStore()
	repository.Seed(store)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, handler.NewPublicHandler(store), handler.NewWaitlistHandler(store), cacheMW, limitMW)

	go func() {
		if err := queue.StartWaitlistConsumer(); err != nil {
			log.Printf("waitlist consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
