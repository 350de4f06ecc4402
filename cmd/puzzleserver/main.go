package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/config"
	"github.com/domino14/anagrid/internal/puzzleserver"
	"github.com/domino14/anagrid/internal/stores"
	"github.com/domino14/anagrid/internal/wordbank"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func openStore(ctx context.Context, cfg *config.Config) (stores.Store, error) {
	switch {
	case cfg.DBURI != "":
		if err := stores.MigratePostgres(cfg.DBURI); err != nil {
			return nil, err
		}
		return stores.NewPGStore(ctx, cfg.DBURI)
	case cfg.DBPath != "":
		return stores.NewSQLiteStore(cfg.DBPath)
	}
	return nil, nil
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.SecretKey == "" {
		log.Warn().Msg("no secret-key set; authenticated endpoints will reject every request")
	}

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open store")
	}
	if store != nil {
		defer store.Close()
	}

	// Load the default dictionary up front so the first request isn't slow.
	if _, err := wordbank.Default.ForLanguage(cfg.DataPath, cfg.Language); err != nil {
		log.Fatal().Err(err).Str("language", cfg.Language).Msg("could not load dictionary")
	}

	server := puzzleserver.NewServer(cfg, store, wordbank.Default)
	middlewares := alice.New(
		hlog.NewHandler(log.Logger),
		hlog.AccessHandler(accessLog),
		hlog.RemoteAddrHandler("ip"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
	)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: middlewares.Then(server.Routes()),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
