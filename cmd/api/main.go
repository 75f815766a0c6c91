package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/mardiana36/anemone-outlet-system/docs"
	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	"github.com/mardiana36/anemone-outlet-system/internal/config"
	"github.com/mardiana36/anemone-outlet-system/internal/metrics"
	"github.com/mardiana36/anemone-outlet-system/internal/order"
	"github.com/mardiana36/anemone-outlet-system/internal/product"
	"github.com/mardiana36/anemone-outlet-system/internal/user"
)

// @title        Anemone Outlet System API
// @version      1.0
// @description  Multi-tenant order-taking: head office manages the catalog
// @description  and order statuses, outlets place orders against shared stock.
// @BasePath     /api
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	var store auth.TokenStore
	if cfg.RedisAddr != "" {
		rs, err := auth.NewRedisStore(cfg.RedisAddr, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		defer rs.Close()
		store = rs
	} else {
		log.Printf("[api] REDIS_ADDR empty, using in-memory token store")
		store = auth.NewMemoryStore(cfg.TokenTTL)
	}

	r := newRouter(routerDeps{
		store:    store,
		users:    user.NewPGRepo(pool),
		products: product.NewPGRepo(pool),
		orders:   order.NewPGRepo(pool),
		engine:   order.NewEngine(order.NewPGUnitOfWork(pool)),
		metrics:  metrics.NewHTTPMetrics(),
	})

	log.Printf("api listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
