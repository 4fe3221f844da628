package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ytget/mp3-player/internal/config"
	"github.com/ytget/mp3-player/internal/library"
	"github.com/ytget/mp3-player/internal/logging"
	"github.com/ytget/mp3-player/internal/metadata"
	"github.com/ytget/mp3-player/internal/playback"
	"github.com/ytget/mp3-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.mp3-player"
)

func main() {
	settings, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil && !errors.Is(err, config.ErrInvalidConfig) {
		fmt.Fprintf(os.Stderr, "failed to parse arguments: %v\n", err)
		os.Exit(2)
	}

	logger, logErr := logging.New(settings.GetLogLevel(), settings.IsDevelopment())
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", logErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Music player starting", zap.String("version", version))
	if err != nil {
		logger.Warn("Ignoring config file, using defaults", zap.Error(err))
	} else if used := settings.ConfigFileUsed(); used != "" {
		logger.Info("Config file loaded", zap.String("path", used))
	}

	if err := run(settings, logger); err != nil {
		logger.Fatal("Music player failed", zap.Error(err))
	}
}

func run(settings *config.Settings, logger *zap.Logger) error {
	// Scan once before the window opens
	scanner := library.NewScanner(settings.GetLibraryDirectory(), settings.GetPlayableExtensions(), logger)
	lib, err := scanner.Scan(context.Background())
	if err != nil {
		return fmt.Errorf("failed to scan library: %w", err)
	}

	backend, err := playback.NewBeepBackend(playback.DefaultSampleRate, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize audio output: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("Failed to close audio backend", zap.Error(err))
		}
	}()

	player := playback.NewController(backend, settings.GetDefaultVolume(), logger)
	presenter := metadata.NewPresenter(settings.GetArtworkSize(), logger)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply player theme
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(settings.GetWindowSize()))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("App icon not loaded", zap.Error(err))
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, lib, player, presenter, settings, logger)

	// Show and run
	myWindow.ShowAndRun()

	logger.Info("Music player stopped")
	return nil
}
