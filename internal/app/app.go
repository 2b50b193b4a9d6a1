package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/cache"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/card"
	deckrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/deck"
	knownrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/known"
	newsrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/news"
	"github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	"github.com/heartmarshall/flashdeck-backend/internal/service/card"
	"github.com/heartmarshall/flashdeck-backend/internal/service/cardlist"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/service/news"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/dataloader"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer rateLimiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// Pool is the database handle the HTTP stack runs on.
type Pool interface {
	postgres.Querier
	postgres.TxBeginner
	Ping(ctx context.Context) error
}

// NewHandler wires repositories, services and transport into the root
// handler. rateLimiter may be nil to disable rate limiting.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool Pool, rateLimiter *middleware.RateLimiter) http.Handler {
	cards := cardrepo.New(pool)
	decks := deckrepo.New(pool)
	known := knownrepo.New(pool)
	newsItems := newsrepo.New(pool)

	txm := postgres.NewTxManager(pool)
	knownCache := cache.NewKnownIDs(known, cfg.Cache.KnownSize, cfg.Cache.KnownTTL)

	cardListSvc := cardlist.NewService(logger, cards, decks, knownCache, cfg.Cards.PageSize)
	cardSvc := card.NewService(logger, cards, decks, known, knownCache, txm)
	deckSvc := deck.NewService(logger, decks, knownCache, txm)
	newsSvc := news.NewService(logger, newsItems)

	mux := rest.NewMux(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Deck:   rest.NewDeckHandler(deckSvc, logger),
		Card:   rest.NewCardHandler(cardListSvc, cardSvc, logger),
		News:   rest.NewNewsHandler(newsSvc, logger),
	})

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(), // nil when rate limiting is disabled
		middleware.Auth(jwt),
		dataloader.Middleware(&dataloader.Repos{Deck: decks}),
		middleware.Metrics(),
	)(mux)
}
