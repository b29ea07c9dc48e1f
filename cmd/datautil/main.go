// Command datautil inspects the dataset store and checks database connectivity.
//
// Usage:
//
//	datautil [flags] dbcheck
//	datautil [flags] versions NAME...
//	datautil [flags] show NAME...
//	datautil -version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/datautils/internal/config"
	"github.com/rickgao/datautils/internal/database"
	"github.com/rickgao/datautils/internal/dataset"
	"github.com/rickgao/datautils/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("datautil", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", config.DefaultEnvFile, "environment file loaded before reading DB_* variables")
	configPath := fs.String("config", "", "optional YAML config file; overrides the environment")
	dir := fs.String("dir", "", "dataset directory (default from config)")
	legacy := fs.Bool("prefix-match", false, "match dataset files by name prefix")
	verbose := fs.Bool("v", false, "debug logging")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, "datautil", version.String())
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Debug("starting datautil", "version", version.String())

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: datautil [flags] dbcheck | versions NAME... | show NAME...")
		return 2
	}

	cfg, err := loadConfig(*envFile, *configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	if *dir != "" {
		cfg.Store.Dir = *dir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []dataset.Option{dataset.WithLogger(logger)}
	if *legacy {
		opts = append(opts, dataset.WithPrefixMatch())
	}
	store := dataset.New(cfg.Store.Dir, opts...)

	cmd, names := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "dbcheck":
		err = dbcheck(ctx, cfg, logger)
	case "versions":
		err = versions(store, names, stdout)
	case "show":
		err = show(store, names, stdout)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Error(cmd+" failed", "error", err)
		return 1
	}
	return 0
}

func loadConfig(envFile, configPath string) (config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}
	if configPath == "" {
		return config.FromEnv(), nil
	}
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func dbcheck(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// Missing variables are reported but not fatal; the connect attempt
	// decides.
	if err := cfg.Validate(); err != nil {
		logger.Warn("incomplete database configuration", "error", err)
	}

	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Setup(ctx, cfg.Database, database.WithLogger(logger))
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}

var errNoNames = errors.New("at least one dataset name is required")

func versions(store *dataset.Store, names []string, w io.Writer) error {
	if len(names) == 0 {
		return errNoNames
	}
	for _, name := range names {
		vs, err := store.Versions(name)
		if err != nil {
			return err
		}
		for _, v := range vs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, v.Timestamp.Format("2006-01-02 15:04:05"), v.Path)
		}
	}
	return nil
}

func show(store *dataset.Store, names []string, w io.Writer) error {
	if len(names) == 0 {
		return errNoNames
	}
	loaded, err := store.Load(names)
	if err != nil {
		return err
	}
	for _, name := range names {
		df, ok := loaded[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "== %s\n%v\n", name, df)
	}
	return nil
}
