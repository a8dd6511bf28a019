package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/stderr"
	"github.com/llehouerou/reel/internal/ui/pageart"
)

func main() {
	configPath := flag.String("config", "", "config file (default: XDG config locations)")
	page := flag.Int("page", 0, "page to open, 1-based (default: last viewed)")
	noAuto := flag.Bool("no-auto", false, "disable the auto-advance slideshow")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [folder]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *page-1, *noAuto); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run starts the TUI. startPage is 0-based; -1 restores the saved position.
func run(configPath, folder string, startPage int, noAuto bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logger := setupLogging(cfg.GetLogLevel())
	defer func() { _ = logging.Close() }()

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	icons.Init(cfg.GetIconStyle())
	art := pageart.New(pageart.Detect(cfg.GetImageProtocol()), openCache(logger))

	opts := app.Options{
		Config:    cfg,
		State:     stateMgr,
		Art:       art,
		Stderr:    stderr.Messages,
		Logger:    logger,
		Folder:    folder,
		StartPage: max(startPage, -1),
		NoAuto:    noAuto,
	}

	remote, err := mpris.New(logger)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpRemoteStart, err))
	} else {
		defer remote.Close()
		opts.Remote = remote
	}

	if cfg.Notifications {
		if n, err := notify.New(logger); err == nil {
			opts.Notify = n
		}
	}

	m, err := app.New(opts)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	// Capture stderr once the terminal belongs to the TUI.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture disabled", "error", err)
	}
	defer stderr.Stop()

	logger.Info("starting",
		"folder", m.Folder(),
		"images", art.Protocol(),
		"auto", cfg.AutoAdvanceEnabled() && !noAuto)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func setupLogging(level string) *slog.Logger {
	path, err := logging.DefaultPath()
	if err == nil {
		var logger *slog.Logger
		if logger, err = logging.SetupFile(level, path); err == nil {
			return logger
		}
	}
	// Without a log file, keep logging off the terminal.
	return logging.Get()
}

func openCache(logger *slog.Logger) *pageart.Cache {
	cache, err := pageart.NewCache("")
	if err != nil {
		logger.Warn("page image cache disabled", "error", err)
		return nil
	}
	return cache
}
