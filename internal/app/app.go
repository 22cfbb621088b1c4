package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/shelf"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	// RefreshEvery overrides refresh_every from config when positive.
	RefreshEvery int // seconds
	Version      string
}

// Run boots the shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshEvery = time.Duration(opts.RefreshEvery) * time.Second
	}

	log, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	clientOpts := []catalog.Option{catalog.WithLogger(log), catalog.WithTimeout(cfg.RequestTimeout)}
	if opts.Version != "" {
		clientOpts = append(clientOpts, catalog.WithUserAgent("shelf/"+opts.Version))
	}
	client, err := catalog.NewClient(cfg.APIURL, clientOpts...)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := &state.Store{}
	controller, err := shelf.New(shelf.Options{
		Backend:            client,
		View:               store,
		MaxPublicationYear: cfg.MaxPublicationYear,
		Logger:             log,
	})
	if err != nil {
		return fmt.Errorf("init controller: %w", err)
	}

	log.Info("starting",
		zap.String("api_url", client.BaseURL()),
		zap.Duration("refresh_every", cfg.RefreshEvery),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if poller := NewPoller(controller, cfg.RefreshEvery, log); poller != nil {
		g.Go(func() error { return poller.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return ui.Run(ui.Options{
			Context:     gctx,
			Actions:     controller,
			Store:       store,
			LogPath:     cfg.LogFile,
			APIURL:      client.BaseURL(),
			ThemeName:   userPrefs.Theme,
			ListOnStart: userPrefs.ListOnStart,
			PrefsPath:   opts.PrefsPath,
			Logger:      log,
		})
	})

	err = g.Wait()
	log.Info("stopped", zap.Error(err))
	return err
}
