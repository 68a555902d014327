package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/Vipul-Mhatre/RunCat365/control"
	"github.com/Vipul-Mhatre/RunCat365/i18n"
	"github.com/Vipul-Mhatre/RunCat365/runner"
)

// App is the minimal interface the tray needs from the application side.
type App interface {
	Enqueue(cmd control.Command)
	Options() runner.Options
	AutostartEnabled() bool
	Version() string
}

// display labels, decoupled from the persistence keys in the runner package
var characterLabels = map[runner.Character]string{
	runner.Cat:    "Cat",
	runner.Parrot: "Parrot",
	runner.Horse:  "Horse",
}

var themeLabels = map[runner.Theme]string{
	runner.ThemeSystem: "System",
	runner.ThemeLight:  "Light",
	runner.ThemeDark:   "Dark",
}

var maxRateLabels = map[runner.MaxRate]string{
	runner.FPS10: "10 fps",
	runner.FPS20: "20 fps",
	runner.FPS30: "30 fps",
	runner.FPS40: "40 fps",
}

// Tray owns the status tray icon and its menu. It is the display surface the
// animation and load drivers push to; both setters marshal onto the fyne
// UI thread, so they are safe to call from any goroutine.
type Tray struct {
	desk desktop.App
	menu *fyne.Menu

	statusItem    *fyne.MenuItem
	runnerItems   map[runner.Character]*fyne.MenuItem
	themeItems    map[runner.Theme]*fyne.MenuItem
	rateItems     map[runner.MaxRate]*fyne.MenuItem
	autostartItem *fyne.MenuItem
}

// NewTray builds the tray menu and registers it with the desktop driver.
// Selection checkmarks reflect the application's current options; the
// autostart checkmark is read from the OS store at build time.
func NewTray(a App, desk desktop.App) *Tray {
	t := &Tray{
		desk:        desk,
		runnerItems: make(map[runner.Character]*fyne.MenuItem),
		themeItems:  make(map[runner.Theme]*fyne.MenuItem),
		rateItems:   make(map[runner.MaxRate]*fyne.MenuItem),
	}

	t.statusItem = fyne.NewMenuItem("CPU: --", nil)
	t.statusItem.Disabled = true

	runnerMenu := fyne.NewMenu("")
	for _, c := range runner.Characters() {
		c := c
		item := fyne.NewMenuItem(i18n.T(characterLabels[c]), func() {
			a.Enqueue(control.Command{Type: control.CmdSetRunner, Character: c})
		})
		t.runnerItems[c] = item
		runnerMenu.Items = append(runnerMenu.Items, item)
	}
	runnerItem := fyne.NewMenuItem(i18n.T("Runner"), nil)
	runnerItem.ChildMenu = runnerMenu

	themeMenu := fyne.NewMenu("")
	for _, th := range runner.Themes() {
		th := th
		item := fyne.NewMenuItem(i18n.T(themeLabels[th]), func() {
			a.Enqueue(control.Command{Type: control.CmdSetTheme, Theme: th})
		})
		t.themeItems[th] = item
		themeMenu.Items = append(themeMenu.Items, item)
	}
	themeItem := fyne.NewMenuItem(i18n.T("Theme"), nil)
	themeItem.ChildMenu = themeMenu

	rateMenu := fyne.NewMenu("")
	for _, m := range runner.MaxRates() {
		m := m
		item := fyne.NewMenuItem(maxRateLabels[m], func() {
			a.Enqueue(control.Command{Type: control.CmdSetMaxRate, MaxRate: m})
		})
		t.rateItems[m] = item
		rateMenu.Items = append(rateMenu.Items, item)
	}
	rateItem := fyne.NewMenuItem(i18n.T("Max speed"), nil)
	rateItem.ChildMenu = rateMenu

	t.autostartItem = fyne.NewMenuItem(i18n.T("Run at startup"), func() {
		a.Enqueue(control.Command{Type: control.CmdToggleAutostart})
	})

	taskManagerItem := fyne.NewMenuItem(i18n.T("Open Task Manager"), func() {
		a.Enqueue(control.Command{Type: control.CmdOpenTaskManager})
	})

	versionItem := fyne.NewMenuItem("RunCat "+a.Version(), nil)
	versionItem.Disabled = true

	exitItem := fyne.NewMenuItem(i18n.T("Exit"), func() {
		a.Enqueue(control.Command{Type: control.CmdQuit})
	})
	exitItem.IsQuit = true

	t.menu = fyne.NewMenu("RunCat",
		t.statusItem,
		fyne.NewMenuItemSeparator(),
		runnerItem,
		themeItem,
		rateItem,
		t.autostartItem,
		taskManagerItem,
		fyne.NewMenuItemSeparator(),
		versionItem,
		exitItem,
	)

	t.applyChecks(a.Options(), a.AutostartEnabled())
	desk.SetSystemTrayMenu(t.menu)
	return t
}

// SetFrame pushes the current animation frame to the tray icon.
func (t *Tray) SetFrame(frame fyne.Resource) {
	fyne.Do(func() {
		t.desk.SetSystemTrayIcon(frame)
	})
}

// SetStatusText updates the load readout shown at the top of the menu.
func (t *Tray) SetStatusText(text string) {
	fyne.Do(func() {
		t.statusItem.Label = text
		t.menu.Refresh()
	})
}

// RefreshChecks re-marks the menu after an option or autostart change.
func (t *Tray) RefreshChecks(opts runner.Options, autostartEnabled bool) {
	fyne.Do(func() {
		t.applyChecks(opts, autostartEnabled)
		t.menu.Refresh()
	})
}

func (t *Tray) applyChecks(opts runner.Options, autostartEnabled bool) {
	for c, item := range t.runnerItems {
		item.Checked = c == opts.Character
	}
	for th, item := range t.themeItems {
		item.Checked = th == opts.Theme
	}
	for m, item := range t.rateItems {
		item.Checked = m == opts.MaxRate
	}
	t.autostartItem.Checked = autostartEnabled
}
