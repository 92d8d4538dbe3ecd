package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inkclash/inkclash-server/internal/config"
	"github.com/inkclash/inkclash-server/internal/lobby"
	"github.com/inkclash/inkclash-server/internal/repository"
	"github.com/inkclash/inkclash-server/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting inkclash server",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	// The stats store is optional: without a database URL the server
	// runs matches without persisting anything.
	var stats lobby.StatsRecorder
	if cfg.Database.URL != "" {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		statsRepo := repository.NewStatsRepository(db)
		if err := statsRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare stats schema", zap.Error(err))
		}
		stats = statsRepo
		logger.Info("player stats store enabled")
	} else {
		logger.Info("no database configured, player stats disabled")
	}

	lobbyMgr := lobby.NewManager(lobby.Config{
		BoardWidth:  cfg.Game.BoardWidth,
		BoardHeight: cfg.Game.BoardHeight,
		Turns:       cfg.Game.Turns,
	}, stats, logger)
	logger.Info("lobby initialized",
		zap.Int("board_width", cfg.Game.BoardWidth),
		zap.Int("board_height", cfg.Game.BoardHeight),
		zap.Int("turns", cfg.Game.Turns),
	)

	srv := server.New(lobbyMgr, logger)
	if err := srv.Start(ctx, cfg.Server.Addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
