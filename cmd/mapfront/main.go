package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mapfront/extension/internal/cache"
	"github.com/mapfront/extension/internal/config"
	"github.com/mapfront/extension/internal/database"
	"github.com/mapfront/extension/internal/files"
	"github.com/mapfront/extension/internal/geocode"
	"github.com/mapfront/extension/internal/influx"
	"github.com/mapfront/extension/internal/inserttag"
	"github.com/mapfront/extension/internal/logging"
	"github.com/mapfront/extension/internal/prefetch"
	"github.com/mapfront/extension/internal/render"
	"github.com/mapfront/extension/internal/storage"
	"github.com/mapfront/extension/internal/template"
	"github.com/mapfront/extension/internal/translate"
	"github.com/mapfront/extension/internal/web"
)

// Version can be set at build time via ldflags.
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	ServiceName string = "mapfront"
)

func main() {
	configDir := flag.String("config", ".", "directory containing mapfront.cfg.json")
	renderID := flag.Uint("render", 0, "render one map element to stdout and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (built %s)\n", ServiceName, Version, BuildDate)
		return
	}

	if err := config.Load(*configDir); err != nil {
		// defaults still apply without a config file
		fmt.Fprintf(os.Stderr, "%v, continuing with defaults\n", err)
	}

	// logging
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating logs dir: %v\n", err)
		os.Exit(1)
	}

	logPath := logging.LogFilePath(logsDir, ServiceName, time.Now())
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var gelfWriter io.Writer
	if config.GetBool("graylog.enabled") {
		w, err := gelf.NewWriter(config.GetString("graylog.address"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error connecting to graylog: %v\n", err)
		} else {
			gelfWriter = w
		}
	}

	logManager := logging.NewManager()
	logManager.Setup(logFile, gelfWriter, config.GetString("logLevel"))
	logger := logManager.Logger()
	logger.Info("Starting mapfront", "version", Version, "buildDate", BuildDate)

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// database
	dbManager := database.NewManager(zlog)
	dbManager.SqliteFilePath = filepath.Join(*configDir, "mapfront.db")
	if err := dbManager.Connect(); err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbManager.Close()
	if err := dbManager.Setup(); err != nil {
		logger.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	// editor record storage
	backend, err := storage.NewBackend(config.GetStorageConfig(), dbManager.DB)
	if err != nil {
		logger.Error("Storage backend setup failed", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		logger.Error("Storage backend init failed", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	// geocode cache
	cacheCfg := config.GetCacheConfig()
	var addressStore geocode.Store
	switch cacheCfg.Backend {
	case "gorm":
		addressStore = cache.NewGormCache(dbManager.DB)
	default:
		addressStore = cache.NewAddressCache(cacheCfg.TTL)
	}

	geocoderCfg := config.GetGeocoderConfig()
	resolver, err := geocode.NewResolver(
		addressStore,
		geocode.NewClient(geocoderCfg.Endpoint),
		geocoderCfg.APIKey,
		logger,
	)
	if err != nil {
		logger.Error("Resolver setup failed", "error", err)
		os.Exit(1)
	}

	// content helpers
	fileResolver := files.NewGormResolver(dbManager.DB)
	templates := template.NewDirRenderer(config.GetString("templatesDir"))

	tags := inserttag.NewRegistry()
	tags.Register("file", func(arg string) string {
		path, _ := fileResolver.PathFromFileID(arg)
		return path
	})
	tags.Register("page", func(arg string) string {
		return "/?id=" + arg
	})

	translator := translate.New(translate.Dependencies{
		Resolver:   resolver,
		Files:      fileResolver,
		Templates:  templates,
		InsertTags: tags,
		Logger:     logger,
	})

	// metrics
	var perf *influx.Manager
	if config.GetBool("influx.enabled") {
		perf = influx.NewManager(zlog, filepath.Join(logsDir, "influx_backup.gz"))
		if err := perf.Connect(); err != nil {
			logger.Warn("InfluxDB unavailable, render metrics disabled", "error", err)
			perf = nil
		} else {
			defer perf.Close()
		}
	}

	renderManager, err := render.NewManager(backend, translator, resolver, perf, logger)
	if err != nil {
		logger.Error("Render manager setup failed", "error", err)
		os.Exit(1)
	}

	if *renderID > 0 {
		if err := renderOnce(renderManager, uint(*renderID)); err != nil {
			logger.Error("Render failed", "mapId", *renderID, "error", err)
			os.Exit(1)
		}
		return
	}

	var warmer *prefetch.Warmer
	if config.GetBool("prefetch.enabled") {
		warmer = prefetch.NewWarmer(backend, resolver, config.GetInt("prefetch.workers"), logger)
	}

	gin.SetMode(gin.ReleaseMode)
	server := web.NewServer(renderManager, warmer, logger)

	addr := config.GetString("server.address")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}

// renderOnce renders a single map element and writes the result to stdout,
// for use from cron jobs and cache-busting scripts.
func renderOnce(m *render.Manager, id uint) error {
	result, err := m.Render(context.Background(), id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
