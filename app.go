// Package main contains the application wiring and the AppManager which
// coordinates the CPU sampler, the animation driver and the tray menu. This
// file centralizes the shared application state and the command loop used to
// serialize option mutations.
//
// Maintenance notes / tips:
//   - Concurrency model: the application uses a single command-loop goroutine
//     (see `commandLoop`) to serialize every option mutation coming from the
//     menu and from the OS appearance listener. The animation driver and the
//     load driver run on their own tickers; they only read options through
//     the mutex-guarded snapshot getter, so they never race the command loop.
//   - `cmdCh` is a buffered channel used to enqueue commands from the menu.
//     The current implementation drops commands when the channel stays full
//     to avoid blocking the UI. Menu events are sparse, so drops only happen
//     if the command loop has wedged.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Vipul-Mhatre/RunCat365/autostart"
	"github.com/Vipul-Mhatre/RunCat365/control"
	"github.com/Vipul-Mhatre/RunCat365/monitor"
	"github.com/Vipul-Mhatre/RunCat365/runner"
)

// loadPeriod is how often the load driver re-samples CPU utilization and
// retunes the animation. Not user-configurable.
const loadPeriod = 5 * time.Second

// traySurface is what the AppManager needs from the tray beyond the frame
// sink the animator already holds.
type traySurface interface {
	runner.Surface
	SetStatusText(string)
	RefreshChecks(runner.Options, bool)
}

// appearanceSource probes the OS light/dark preference.
type appearanceSource interface {
	Current() runner.Theme
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	log        hclog.Logger
	assets     runner.AssetSource
	sampler    *monitor.CPUSampler
	store      runner.Store
	autostart  *autostart.Store
	appearance appearanceSource
	quit       func()

	tray     traySurface
	animator *runner.Animator

	optsMu sync.Mutex
	opts   runner.Options

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
}

// NewAppManager creates the application manager. Options are loaded once,
// here; each key falls back to its default independently.
func NewAppManager(log hclog.Logger, assets runner.AssetSource, sampler *monitor.CPUSampler,
	store runner.Store, autostartStore *autostart.Store, appearance appearanceSource, quit func()) *AppManager {

	a := &AppManager{
		log:        log,
		assets:     assets,
		sampler:    sampler,
		store:      store,
		autostart:  autostartStore,
		appearance: appearance,
		quit:       quit,
		opts:       runner.LoadOptions(store),
	}

	a.cmdCh = make(chan control.Command, 64)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// SetTray attaches the display surface and builds the initial frame set and
// animation driver. Must be called before Start.
func (a *AppManager) SetTray(tray traySurface) {
	a.tray = tray
	a.animator = runner.NewAnimator(tray, runner.Interval(0, a.Options().MaxRate))
	a.rebuildFrames()
}

// Start launches the animation and load drivers. The load driver fires once
// immediately so the indicator does not sit on the idle pacing for the first
// period.
func (a *AppManager) Start(ctx context.Context) {
	a.animator.Start(ctx)
	go a.loadLoop(ctx)
}

// Enqueue posts a command to the internal command loop.
func (a *AppManager) Enqueue(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		a.log.Warn("command queue full, dropping command", "type", cmd.Type)
	}
}

// Options returns a snapshot of the current user selections.
func (a *AppManager) Options() runner.Options {
	a.optsMu.Lock()
	defer a.optsMu.Unlock()
	return a.opts
}

// AutostartEnabled queries the OS store; the registration can change behind
// our back, so in-memory state is never trusted.
func (a *AppManager) AutostartEnabled() bool {
	return a.autostart.IsEnabled()
}

// Version returns the application version for the menu.
func (a *AppManager) Version() string {
	return appVersion
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			a.handleCommand(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) handleCommand(cmd control.Command) {
	switch cmd.Type {
	case control.CmdSetRunner:
		a.optsMu.Lock()
		a.opts.Character = cmd.Character
		a.optsMu.Unlock()
		a.rebuildFrames()
		a.refreshMenu()

	case control.CmdSetTheme:
		a.optsMu.Lock()
		a.opts.Theme = cmd.Theme
		a.optsMu.Unlock()
		a.rebuildFrames()
		a.refreshMenu()

	case control.CmdSetMaxRate:
		// No icon rebuild; the next load driver tick derives the new pacing.
		a.optsMu.Lock()
		a.opts.MaxRate = cmd.MaxRate
		a.optsMu.Unlock()
		a.refreshMenu()

	case control.CmdToggleAutostart:
		if err := a.toggleAutostart(); err != nil {
			a.log.Warn("autostart toggle failed", "error", err)
		}
		a.refreshMenu()

	case control.CmdAppearanceChanged:
		if a.Options().Theme == runner.ThemeSystem {
			a.rebuildFrames()
		}

	case control.CmdOpenTaskManager:
		openTaskManager(a.log)

	case control.CmdQuit:
		a.quit()
	}
}

// rebuildFrames re-resolves the frame set for the current (character, theme)
// selection. The animator clamps its cursor if the new set is shorter.
func (a *AppManager) rebuildFrames() {
	opts := a.Options()
	frames := runner.Resolve(a.assets, opts.Character, opts.Theme, a.appearance.Current)
	if len(frames) == 0 {
		a.log.Warn("no frames resolved", "runner", opts.Character.Key(), "theme", opts.Theme.Key())
	}
	a.animator.SetFrames(frames)
}

func (a *AppManager) refreshMenu() {
	a.tray.RefreshChecks(a.Options(), a.autostart.IsEnabled())
}

func (a *AppManager) toggleAutostart() error {
	if a.autostart.IsEnabled() {
		return a.autostart.Disable()
	}
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}
	return a.autostart.Enable(exePath)
}

func (a *AppManager) loadLoop(ctx context.Context) {
	ticker := time.NewTicker(loadPeriod)
	defer ticker.Stop()

	a.updateLoad()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.updateLoad()
		}
	}
}

// updateLoad is one load driver fire: sample, publish the readout, retune
// the animation pacing from the current rate limit.
func (a *AppManager) updateLoad() {
	load := a.sampler.Sample()
	a.tray.SetStatusText(fmt.Sprintf("CPU: %.1f%%", load))
	a.animator.Retune(runner.Interval(load, a.Options().MaxRate))
}

// Shutdown stops the command loop and the animation driver and persists the
// user selections. Called after the UI loop has exited.
func (a *AppManager) Shutdown() {
	a.cmdCancel()
	if a.animator != nil {
		a.animator.Stop()
	}
	a.Options().Save(a.store)
}
