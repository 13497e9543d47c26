package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"selectlist/internal/config"
	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/prompt"
	"selectlist/internal/selection"
	"selectlist/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, modeFlag, logPath string
	flag.StringVar(&configPath, "config", config.FileName, "Path to the list config file")
	flag.StringVar(&configPath, "c", config.FileName, "Path to the list config file (shorthand)")
	flag.StringVar(&modeFlag, "mode", "", "Override the selection mode: single or multiple")
	flag.StringVar(&logPath, "log", "selectlist.log", "Log file")
	plain := flag.Bool("plain", false, "Use a line-based prompt instead of the full-screen UI")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logging; stdout belongs to the UI
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Logger = zerolog.Nop()
	} else {
		defer logFile.Close()
		log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Error().Err(err).Msg("Error loading config")
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	mode := cfg.SelectionMode()
	if modeFlag != "" {
		if mode, err = selection.ParseMode(modeFlag); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(2)
		}
	}

	controller := selection.NewController(
		cfg.People(),
		selection.WithMode(mode),
		selection.WithNotifier(eventbus.Notifier(bus)),
	)
	log.Info().Str("mode", mode.String()).Int("items", controller.Len()).Msg("List ready")

	var save bool
	if *plain {
		save, err = runPrompt(cfg, controller)
	} else {
		save, err = runUI(ctx, bus, cfg, controller)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if save && cfg.UISettings.AutosaveOnExit {
		cfg.ApplySelection(controller.Items(), controller.Mode())
		if err := configSvc.Save(cfg); err != nil {
			log.Error().Err(err).Msg("Failed to save config")
		} else {
			log.Info().Str("path", configSvc.Path()).Msg("Config saved")
		}
	}

	prompt.PrintSummary(os.Stdout, cfg.Title, controller.Selected())
}

// runUI runs the full-screen list and reports whether the selection should be saved
func runUI(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, controller *selection.Controller[domain.Person]) (bool, error) {
	var opts []ui.Option
	if os.Getenv("SELECTLIST_E2E_TEST") == "1" {
		opts = append(opts, ui.WithReadyMarker())
	}

	uiModel := ui.NewModel(bus, cfg, controller, opts...)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Forward bus events to the UI
	forward := func(e eventbus.DomainEvent) {
		select {
		case <-ctx.Done():
		default:
			p.Send(ui.EventMsg{Event: e})
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventRedrawRequested,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		unsubscribe := bus.Subscribe(eventType, forward)
		defer unsubscribe()
	}

	log.Info().Msg("Starting UI")
	if _, err := p.Run(); err != nil {
		return false, errors.Wrap(err, "ui failed")
	}
	log.Info().Bool("save", uiModel.SaveOnQuit()).Msg("UI exited normally")

	return uiModel.SaveOnQuit(), nil
}

// runPrompt runs the line-based prompt; an interrupt leaves the config untouched
func runPrompt(cfg *config.Config, controller *selection.Controller[domain.Person]) (bool, error) {
	err := prompt.New(cfg.Title, controller).Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return false, nil
	}
	return err == nil, err
}
