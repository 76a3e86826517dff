package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"guesthouse/internal/config"
	"guesthouse/internal/fallback"
	"guesthouse/internal/http/handlers"
	"guesthouse/internal/http/server"
	applog "guesthouse/internal/log"
	"guesthouse/internal/mail"
	"guesthouse/internal/media"
	"guesthouse/internal/metrics"
	"guesthouse/internal/repos"
	"guesthouse/internal/sessions"
	"guesthouse/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the public site and the admin panel",
	RunE:  runServe,
}

var templatesDir string

func init() {
	serveCmd.Flags().StringVar(&templatesDir, "templates", "./web/templates", "template directory reloaded on each request when APP_ENV=dev")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closer, err := applog.Setup(cfg.AppEnv, cfg.LogFile)
	defer closer.Close()
	if err != nil {
		applog.L().Warn().Err(err).Str("file", cfg.LogFile).Msg("log file unavailable")
	}
	log := applog.L()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.SeedOnStart {
		if err := repos.Seed(ctx, db, seedOptions(cfg)); err != nil {
			return err
		}
	}

	var sess sessions.Store
	if cfg.Session.Backend == "redis" {
		rs := sessions.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.TTL)
		defer rs.Close()
		if err := rs.Ping(ctx); err != nil {
			return err
		}
		sess = rs
	}

	transport, err := mailTransport(cfg)
	if err != nil {
		return err
	}
	gallery, err := newGallery(ctx, cfg)
	if err != nil {
		return err
	}

	reg := metrics.InitRegistry()
	deps := handlers.NewDeps(db, cfg, sess, transport, gallery)
	app := server.New(cfg, deps, server.Options{
		Views:    web.Views(cfg.IsDev(), templatesDir),
		Static:   web.Static(),
		Registry: reg,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("lang", cfg.DefaultLang).Str("mail", transport.Name()).Msg("site listening")
		return app.Listen(":" + cfg.Port)
	})
	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(reg), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listening")
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(shutdownCtx)
		}
		return app.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}

func seedOptions(cfg config.Config) repos.SeedOptions {
	return repos.SeedOptions{
		AdminEmail:    cfg.Admin.Email,
		AdminName:     cfg.Admin.Name,
		AdminPassword: cfg.Admin.Password,
	}
}

func mailTransport(cfg config.Config) (mail.Transport, error) {
	var t mail.Transport = mail.LogTransport{}
	if cfg.Mail.Transport == "smtp" {
		smtp, err := mail.NewSMTPTransport(mail.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			Timeout:  cfg.Mail.Timeout,
		})
		if err != nil {
			return nil, err
		}
		t = smtp
	}
	return mail.NewThrottled(t, cfg.Mail.PerMinute), nil
}

func newGallery(ctx context.Context, cfg config.Config) (media.Gallery, error) {
	if cfg.Media.Endpoint == "" {
		images := cfg.Media.Images
		if len(images) == 0 {
			images = fallback.Images()
		}
		return media.StaticGallery{Images: images}, nil
	}
	return media.NewMinIOGallery(ctx, media.MinIOConfig{
		Endpoint:  cfg.Media.Endpoint,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Bucket:    cfg.Media.Bucket,
		Region:    cfg.Media.Region,
		UseSSL:    cfg.Media.UseSSL,
		PublicURL: cfg.Media.PublicURL,
	})
}
