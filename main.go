package main

import (
	"context"
	"embed"
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/Vipul-Mhatre/RunCat365/autostart"
	"github.com/Vipul-Mhatre/RunCat365/control"
	"github.com/Vipul-Mhatre/RunCat365/logging"
	"github.com/Vipul-Mhatre/RunCat365/monitor"
	"github.com/Vipul-Mhatre/RunCat365/singleinstance"
	"github.com/Vipul-Mhatre/RunCat365/ui"
)

const appVersion = "3.0.1"

//go:embed assets/*
var content embed.FS

func main() {
	logger := logging.New("runcat")

	lock, err := singleinstance.Acquire("RunCat365")
	if errors.Is(err, singleinstance.ErrAlreadyRunning) {
		// Second launch: leave quietly, the first instance owns the tray.
		return
	}
	if err != nil {
		logger.Error("could not acquire instance lock", "error", err)
		os.Exit(1)
	}

	sampler, err := monitor.NewCPUSampler(logger.Named("monitor"))
	if err != nil {
		logger.Error("cpu counter unavailable", "error", err)
		lock.Release()
		os.Exit(1)
	}

	fyneApp := app.NewWithID("com.github.vipulmhatre.runcat365")
	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		logger.Warn("failed to load app icon", "error", err)
	}

	desk, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("no system tray support on this platform")
		lock.Release()
		os.Exit(1)
	}

	autostartStore, err := autostart.NewStore()
	if err != nil {
		logger.Error("could not open autostart store", "error", err)
		lock.Release()
		os.Exit(1)
	}

	appearance := ui.NewAppearance(fyneApp.Settings())
	a := NewAppManager(logger, content, sampler, fyneApp.Preferences(),
		autostartStore, appearance, fyneApp.Quit)

	tray := ui.NewTray(a, desk)
	a.SetTray(tray)

	ctx, cancel := context.WithCancel(context.Background())
	appearance.Subscribe(ctx, func() {
		a.Enqueue(control.Command{Type: control.CmdAppearanceChanged})
	})
	fyneApp.Lifecycle().SetOnStarted(func() {
		a.Start(ctx)
	})

	fyneApp.Run()

	cancel()
	a.Shutdown()
	lock.Release()
}
