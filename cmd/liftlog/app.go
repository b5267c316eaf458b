package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/lildude/liftlog/internal/cache"
	"github.com/lildude/liftlog/internal/calendarevent"
	"github.com/lildude/liftlog/internal/config"
	"github.com/lildude/liftlog/internal/database"
	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/logger"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/sessions"
)

// app is everything a command needs.
type app struct {
	cfg *config.Config
	log logrus.FieldLogger
	api *liftlog.API
	nav *navigator.Stack
	cal calendarevent.CalendarEventGetter
	out io.Writer

	closers []io.Closer
}

func newApp(ctx context.Context, out io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	a := &app{cfg: cfg, log: log, out: out}
	store, catalog, err := a.openStore(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	a.api = liftlog.New(cfg.BaseURL(), store,
		liftlog.WithHTTPClient(hc),
		liftlog.WithLogger(log),
		liftlog.WithCatalogTTL(cfg.CatalogTTL),
		liftlog.WithCatalogStore(catalog),
	)
	if cfg.CalendarURL != "" {
		a.cal = calendarevent.NewCalendarService(hc, cfg.CalendarURL)
	}

	start := navigator.RouteLogin
	if s, err := a.api.Session(ctx); err == nil && s.Authenticated() {
		start = navigator.RouteHome
	}
	a.nav = navigator.NewStack(start)
	return a, nil
}

// openStore opens the session store and the store that keeps the exercise
// catalog between runs. Both live in the configured backend.
func (a *app) openStore(ctx context.Context) (sessions.Store, sessions.KV, error) {
	switch a.cfg.SessionBackend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, a.cfg.RedisURL, cache.WithPrefix("liftlog:session:"))
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis session store: %w", err)
		}
		a.closers = append(a.closers, rc)
		cc, err := cache.NewRedisCache(ctx, a.cfg.RedisURL, cache.WithPrefix("liftlog:catalog:"), cache.WithTTL(a.cfg.CatalogTTL))
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis catalog store: %w", err)
		}
		a.closers = append(a.closers, cc)
		return sessions.NewKVStore(rc), cc, nil
	default:
		db, err := database.InitDB(a.cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		a.closers = append(a.closers, sqlDB)
		kv := database.NewKV(db)
		return sessions.NewKVStore(kv), kv, nil
	}
}

func (a *app) Close() error {
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

// alert turns an error into the one line shown to the user.
func alert(err error) string {
	var e *liftlog.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case liftlog.KindNotAuthenticated:
		return "you are not logged in; run `liftlog login` first"
	case liftlog.KindRemote:
		if e.StatusCode != 0 {
			return fmt.Sprintf("%s failed (%d): %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	default:
		return e.Error()
	}
}
