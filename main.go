package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"notesaver/internal/cli"
	"notesaver/internal/config"
	"notesaver/internal/logs"
	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui"
	"notesaver/internal/watch"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags
	configFlag := flag.String("config", "", "Config file path")
	dirFlag := flag.String("dir", "", "Notes directory")
	flag.StringVar(dirFlag, "d", "", "Notes directory (shorthand)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")
	noWatchFlag := flag.Bool("no-watch", false, "Do not watch the notes directory in the TUI")
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{
		ConfigPath:   *configFlag,
		NotesDir:     *dirFlag,
		LogLevel:     *logLevelFlag,
		DisableWatch: *noWatchFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	logger, closer, err := logs.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
		logger = logs.Nop()
	} else {
		defer closer.Close()
	}

	store := notes.NewStore(notes.StoreConfig{
		Dir:        cfg.NotesDir,
		SlugMaxLen: cfg.SlugMaxLen,
		Logger:     logger,
	})
	svc := service.NewNoteService(store, logger)

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		logger.Debug().Strs("args", args).Msg("running command")
		return cli.Run(args, svc, os.Stdin, os.Stdout, os.Stderr)
	}

	// TUI mode
	if err := cfg.EnsureNotesDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create notes directory: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events <-chan watch.Event
	if !cfg.DisableWatch {
		events, err = watch.Watch(ctx, cfg.NotesDir, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("could not watch notes directory")
		}
	}

	logger.Info().Str("dir", cfg.NotesDir).Msg("starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(svc, events, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return 1
	}
	return 0
}
