package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"signupdesk/internal/config"
	"signupdesk/internal/trace"
	"signupdesk/internal/ui"
)

type runFlags struct {
	configPath string
	layout     string
	noAnimate  bool
}

func newRootCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "signupdesk",
		Short: "Signup services step with a collapsible sidebar",
		Long: `signupdesk runs the services step of the signup flow in the terminal:
a collapsible sidebar (hover on desktop, menu toggle on mobile) and a dialog
for adding a service with its duration, name and price.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/signupdesk/config.yml)")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "sidebar layout: desktop or mobile (overrides config)")
	cmd.Flags().BoolVar(&flags.noAnimate, "no-animate", false, "keep the sidebar expanded and labels visible")
	return cmd
}

func run(ctx context.Context, flags runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.noAnimate {
		cfg.Animate = false
	}
	layout, err := ui.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so the standard logger goes to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "signupdesk")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	logger := log.Default()

	recorder, err := trace.NewRecorder(ctx, trace.Options{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.OTelServiceName,
	})
	if err != nil {
		logger.Printf("tracing disabled: %v", err)
		recorder = nil
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			logger.Printf("trace shutdown: %v", err)
		}
	}()

	app, err := ui.NewAppModel(ui.AppOptions{
		Layout:    layout,
		NoAnimate: !cfg.Animate,
		Durations: cfg.Durations,
		Logger:    logger,
		Recorder:  recorder,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
