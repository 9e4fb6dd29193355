package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/detectaive/detectaive/internal/app"
	"github.com/detectaive/detectaive/internal/config"
	"github.com/detectaive/detectaive/internal/logger"
	"github.com/detectaive/detectaive/internal/progress"
	"github.com/detectaive/detectaive/internal/router"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
)

type options struct {
	debug        bool
	logFile      string
	progress     string
	progressFile string
	noMouse      bool
	execCmd      string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "detectaive",
		Short: "Landing screen for the DetectAive mystery game",
		Long: `DetectAive is a detective game of procedurally generated murder mysteries.

This command shows the landing screen. Picking a case hands its route
(e.g. /game?mode=quick) to the game engine: the route is printed on stdout
and, with --exec, passed as the last argument to the given command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			applyFlags(cmd, &cfg, opts)
			return run(cmd.Context(), cfg, opts.execCmd, cmd.OutOrStdout())
		},
	}

	cmd.SetVersionTemplate(versionTemplate())

	f := cmd.Flags()
	f.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	f.StringVar(&opts.logFile, "log-file", "", "Log file path (default "+logger.DefaultLogPath+")")
	f.StringVar(&opts.progress, "progress", "", "Progress label shown next to New Case (default "+config.DefaultProgressLabel+")")
	f.StringVar(&opts.progressFile, "progress-file", "", "JSON file the game engine writes progress to")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")
	f.StringVar(&opts.execCmd, "exec", "", "Command to run with the selected route as its last argument")

	return cmd
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("detectaive %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("detectaive %s\n", version)
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	f := cmd.Flags()
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if f.Changed("progress") {
		cfg.ProgressLabel = opts.progress
	}
	if f.Changed("progress-file") {
		cfg.ProgressFile = opts.progressFile
	}
	if f.Changed("no-mouse") {
		cfg.Mouse = !opts.noMouse
	}
}

func run(ctx context.Context, cfg config.Config, execCmd string, stdout io.Writer) error {
	logger.SetDebug(cfg.Debug)
	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return err
		}
	}
	defer logger.Close()
	log := logger.ComponentLogger("main")

	label := cfg.ProgressLabel
	var watcher *progress.Watcher
	if cfg.ProgressFile != "" {
		if p, err := progress.Load(cfg.ProgressFile); err == nil {
			label = p.Label()
		}
		w, err := progress.NewWatcher(cfg.ProgressFile)
		if err != nil {
			return fmt.Errorf("error watching progress: %w", err)
		}
		defer w.Close()
		watcher = w
	}

	zones := zone.New()
	defer zones.Close()

	handoff := router.NewHandoff()
	m := app.New(app.Options{
		Navigator:     handoff,
		ProgressLabel: label,
		Progress:      watcher,
		Zones:         zones,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if ctx != nil {
		programOpts = append(programOpts, tea.WithContext(ctx))
	}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)
	handoff.Bind(p.Quit)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	target := handoff.Target()
	if target == "" {
		return nil
	}
	log.Info("handing off", "route", target)
	fmt.Fprintln(stdout, target)

	if execCmd == "" {
		return nil
	}
	return handOff(execCmd, target)
}

// handOff runs the external router command with the route appended.
func handOff(command, route string) error {
	c := exec.Command("sh", "-c", command+` "$0"`, route)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("error running %q: %w", command, err)
	}
	return nil
}
