package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.design/x/hotkey/mainthread"

	"github.com/openwhisper/shell/internal/app"
	"github.com/openwhisper/shell/internal/config"
	"github.com/openwhisper/shell/internal/dialog"
	"github.com/openwhisper/shell/internal/events"
	"github.com/openwhisper/shell/internal/inject"
	"github.com/openwhisper/shell/internal/logging"
	"github.com/openwhisper/shell/internal/notify"
	"github.com/openwhisper/shell/internal/shortcut"
	"github.com/openwhisper/shell/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logging.NewWithLevel(cfg.LogLevel)

	// Global hotkeys need the process main thread on macOS; the tray
	// runs inside the same init.
	mainthread.Init(func() {
		run(cfg, log)
	})
}

func run(cfg *config.Config, log zerolog.Logger) {
	bus := events.NewBus()
	notifier := notify.New(cfg.Notifications)

	injector := inject.New(inject.Options{
		Config: cfg.Inject,
		Logger: log,
	})

	// Hotkey registration failure is fatal: another process owns the
	// chord and a dictation shell without shortcuts is useless.
	registrar := shortcut.New(bus, log)
	if err := registrar.Register(); err != nil {
		notifier.StartupFailure(err.Error())
		dialog.FatalStartup("OpenWhisper could not register its global shortcuts: " + err.Error())
		log.Fatal().Err(err).Msg("Failed to register global shortcuts")
	}

	application := app.New(app.Config{
		Injector: injector,
		Hotkeys:  registrar,
		Logger:   log,
	})

	// The UI layer binds application.InjectText and application.StartDrag
	// over its own transport and listens on the bus; neither is consumed
	// here.
	trayCtl, err := tray.New(tray.Options{
		Sink:            bus,
		Subscriber:      bus,
		DefaultLanguage: cfg.Language,
		Logger:          log,
	})
	if err != nil {
		notifier.StartupFailure(err.Error())
		dialog.FatalStartup("OpenWhisper could not build its tray menu: " + err.Error())
		log.Fatal().Err(err).Msg("Failed to build tray")
	}

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		if err := application.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
		trayCtl.Quit()
	}()

	log.Info().Str("version", Version).Str("commit", Commit).Msg("OpenWhisper shell starting...")

	// Tray event loop - blocks until quit
	trayCtl.Run(nil)
}
