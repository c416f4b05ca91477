package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZJUSCT/CSBoard/internal/api"
	"github.com/ZJUSCT/CSBoard/internal/board"
	"github.com/ZJUSCT/CSBoard/internal/command"
	"github.com/ZJUSCT/CSBoard/internal/config"
	"github.com/ZJUSCT/CSBoard/internal/database"
	"github.com/ZJUSCT/CSBoard/internal/export"
	"github.com/ZJUSCT/CSBoard/internal/pubsub"
	"github.com/ZJUSCT/CSBoard/internal/writers"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Version = "dev-build"

const (
	stdioName = "-"

	configFlag   = "config"
	inputFlag    = "input"
	outputFlag   = "output"
	resultsFlag  = "results"
	listenFlag   = "listen"
	databaseFlag = "database"
	logLevelFlag = "log-level"
	holdFlag     = "hold"

	// replayed to spectators that connect late
	feedCacheLimit = 64
)

func main() {
	fmt.Fprintf(os.Stderr, "ZJUSCT CSBoard %s - ICPC Scoreboard with Freeze and Scroll\n\n", Version)

	app := &cli.App{
		Name:    "CSBoard",
		Usage:   "Replay an ICPC contest command stream and reveal the frozen board",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "path to config file",
				EnvVars: []string{"CSBOARD_CONFIG"},
			},
			&cli.StringFlag{
				Name:    inputFlag,
				Aliases: []string{"i"},
				Usage:   "command stream to read, or \"-\" for stdin",
				Value:   stdioName,
			},
			&cli.StringFlag{
				Name:    outputFlag,
				Aliases: []string{"o"},
				Usage:   "where to write scoreboard output, or \"-\" for stdout",
				Value:   stdioName,
			},
			&cli.StringFlag{
				Name:  resultsFlag,
				Usage: "write the final standings as YAML to this path (overrides export.results)",
			},
			&cli.StringFlag{
				Name:  listenFlag,
				Usage: "serve the spectator API on this address (overrides listen)",
			},
			&cli.StringFlag{
				Name:  databaseFlag,
				Usage: "archive the run into this sqlite file (overrides storage.database)",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "debug, info, warn or error (overrides logger.level)",
			},
			&cli.BoolFlag{
				Name:  holdFlag,
				Usage: "keep the spectator API up after the command stream ends, until interrupted",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := cCtx.String(configFlag); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if v := cCtx.String(resultsFlag); v != "" {
		cfg.Export.Results = v
	}
	if v := cCtx.String(listenFlag); v != "" {
		cfg.Listen = v
	}
	if v := cCtx.String(databaseFlag); v != "" {
		cfg.Storage.Database = v
	}
	if v := cCtx.String(logLevelFlag); v != "" {
		cfg.Logger.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the zap logger. Logs never go to stdout.
func newLogger(cfg config.Logger) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Level == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = level
	}
	zc.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}
	return zc.Build()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == stdioName {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) io.WriteCloser {
	if path == stdioName {
		return writers.NopCloser(os.Stdout)
	}
	return writers.NewLazyFile(path)
}

func run(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	// logger
	logger, err := newLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(cCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := openInput(cCtx.String(inputFlag))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out := openOutput(cCtx.String(outputFlag))
	defer func() {
		if err := out.Close(); err != nil {
			zap.S().Errorf("failed to close output: %v", err)
		}
	}()

	b := board.New()
	var observers []command.Observer

	// archive
	var archive *database.Archive
	var db *gorm.DB
	if cfg.Storage.Database != "" {
		db, err = database.Init(cfg.Storage.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		zap.S().Info("database initialized successfully")
		archive, err = database.NewArchive(db, cfg.Contest.Name)
		if err != nil {
			return err
		}
		observers = append(observers, archive)
	}

	// spectator API
	var srv *http.Server
	broker := pubsub.NewBroker(feedCacheLimit)
	if cfg.Listen != "" {
		gin.SetMode(gin.ReleaseMode)
		gin.DefaultWriter = os.Stderr
		gin.DefaultErrorWriter = os.Stderr

		feed := api.NewFeed(broker)
		observers = append(observers, feed)
		srv = &http.Server{
			Addr:    cfg.Listen,
			Handler: api.NewRouter(cfg, feed, broker, db),
		}
		go func() {
			zap.S().Infof("starting spectator server at %s", cfg.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zap.S().Errorf("spectator server stopped: %v", err)
			}
		}()
	}

	runner := command.NewRunner(b, out, observers...)
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx, in)
	}()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		// a second signal kills the process
		stop()
		zap.S().Warn("interrupted, finishing up")
		runErr = <-done
	}
	if ctx.Err() != nil {
		runErr = nil
	} else if runErr != nil {
		zap.S().Errorf("command stream aborted: %v", runErr)
	}

	if archive != nil {
		if err := archive.Close(); err != nil {
			zap.S().Errorf("failed to archive pending submissions: %v", err)
		}
		zap.S().Infof("run archived as %s", archive.RunID())
	}

	if cfg.Export.Results != "" {
		if err := writeResults(cfg.Export.Results, cfg.Contest.Name, b); err != nil {
			zap.S().Errorf("failed to export results: %v", err)
		} else {
			zap.S().Infof("results written to %s", cfg.Export.Results)
		}
	}

	if srv != nil {
		if cCtx.Bool(holdFlag) && ctx.Err() == nil {
			zap.S().Info("command stream finished, spectator API stays up until interrupted")
			<-ctx.Done()
		}
		zap.S().Info("shutting down spectator server...")
		broker.CloseTopic(api.StandingsTopic)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.S().Errorf("spectator server shutdown: %v", err)
		}
	}

	return runErr
}

func writeResults(path, contest string, b *board.Board) error {
	w := writers.NewLazyFile(path)
	if err := export.Write(w, export.Build(contest, b)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
