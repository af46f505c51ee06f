package main

import (
	"context"
	"database/sql"
	"net/http"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	server "sporthub/internal/adapters/http_server"
	"sporthub/internal/adapters/observability"
	redisad "sporthub/internal/adapters/redis"
	"sporthub/internal/app"
	"sporthub/internal/catalog"
	"sporthub/internal/shared"
	mysqlrepo "sporthub/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// optional user-state archive
	var archive *mysqlrepo.Repo
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		archive = mysqlrepo.New(db)
		if err := archive.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("archive schema failed")
		}
		log.Info().Msg("user-state archive connected")
	}

	// catalog + deps
	var store *catalog.Store
	if archive != nil {
		store = catalog.New(archive)
	} else {
		store = catalog.New(nil)
	}
	store.Restore(ctx)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := redisad.NewSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	q := app.NewQueryService(store, cache, cfg.CacheTTL, cfg.SectionLimit)
	c := app.NewCommandService(store, cache)
	s := app.NewSessionService(sessions, c)
	s.Restore(ctx)

	go warmCache(ctx, q, store, cfg.WarmWorkers)

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c, S: s})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// warmCache primes the per-venue cache entries so first requests after
// boot hit warm keys. Worker count is bounded with a semaphore.
func warmCache(ctx context.Context, q *app.QueryService, store *catalog.Store, workers int) {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, v := range store.All() {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("cache warm-up aborted")
			return
		}
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := q.VenueByID(ctx, id); err != nil {
				log.Warn().Int64("id", id).Err(err).Msg("warm venue failed")
				return
			}
			if _, err := q.Reviews(ctx, id); err != nil {
				log.Warn().Int64("id", id).Err(err).Msg("warm reviews failed")
			}
		}(v.ID)
	}

	wg.Wait()
	log.Info().Msg("cache warm-up completed")
}
