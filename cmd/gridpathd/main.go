// Command gridpathd serves the gridpath HTTP API.
//
// Every flag falls back to an environment variable:
//
//	-addr          GRIDPATH_ADDR          listen address (default :8080)
//	-log-level     GRIDPATH_LOG_LEVEL     debug, info, warn, error (default info)
//	-locale-dir    GRIDPATH_LOCALE_DIR    gettext catalogue root (default locales)
//	-lang          GRIDPATH_LANG          catalogue language (default en_US)
//	-allow-origin  GRIDPATH_ALLOW_ORIGIN  CORS origin, empty to disable (default *)
//	-max-size      GRIDPATH_MAX_SIZE      largest accepted board side
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/server"
)

const shutdownTimeout = 5 * time.Second

type config struct {
	Addr        string
	LogLevel    logrus.Level
	LocaleDir   string
	Lang        string
	AllowOrigin string
	MaxSize     int
}

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "gridpathd:", err)
		os.Exit(2)
	}

	log := newLogger(cfg, os.Stderr)
	gin.SetMode(ginMode(cfg))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = serve(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// loadConfig parses args; unset flags take their value from getenv.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	envOr := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("gridpathd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		addr        = fs.String("addr", envOr("GRIDPATH_ADDR", ":8080"), "Listen address")
		level       = fs.String("log-level", envOr("GRIDPATH_LOG_LEVEL", "info"), "Log level")
		localeDir   = fs.String("locale-dir", envOr("GRIDPATH_LOCALE_DIR", "locales"), "Gettext catalogue root (<dir>/<lang>/LC_MESSAGES/default.po)")
		lang        = fs.String("lang", envOr("GRIDPATH_LANG", "en_US"), "Catalogue language")
		allowOrigin = fs.String("allow-origin", envOr("GRIDPATH_ALLOW_ORIGIN", "*"), "CORS Access-Control-Allow-Origin; empty disables CORS")
		maxSize     = fs.String("max-size", envOr("GRIDPATH_MAX_SIZE", strconv.Itoa(server.DefaultMaxSize)), "Largest accepted board side")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return config{}, err
	}
	n, err := strconv.Atoi(*maxSize)
	if err != nil || n < 1 {
		return config{}, fmt.Errorf("invalid max-size %q", *maxSize)
	}

	return config{
		Addr:        *addr,
		LogLevel:    lvl,
		LocaleDir:   *localeDir,
		Lang:        *lang,
		AllowOrigin: *allowOrigin,
		MaxSize:     n,
	}, nil
}

func newLogger(cfg config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.JSONFormatter{})

	return log
}

// ginMode picks the router mode: debug only when debug logging is on.
func ginMode(cfg config) string {
	if cfg.LogLevel < logrus.DebugLevel {
		return gin.ReleaseMode
	}

	return gin.DebugMode
}

// newHandler wires the locale and the server options from cfg.
func newHandler(cfg config, log *logrus.Logger) http.Handler {
	opts := []server.Option{
		server.WithLogger(log),
		server.WithAllowOrigin(cfg.AllowOrigin),
		server.WithMaxSize(cfg.MaxSize),
	}
	if cfg.LocaleDir != "" {
		loc := gotext.NewLocale(cfg.LocaleDir, cfg.Lang)
		loc.AddDomain("default")
		opts = append(opts, server.WithTranslator(loc))
	}

	return server.New(opts...).Handler()
}

// serve runs until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, cfg config, log *logrus.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
