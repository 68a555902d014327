package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/Vipul-Mhatre/RunCat365/runner"
)

// Appearance probes the OS light/dark preference through the fyne settings
// API and surfaces appearance-change notifications.
type Appearance struct {
	settings fyne.Settings
}

// NewAppearance wraps the given settings, normally fyne.CurrentApp().Settings().
func NewAppearance(settings fyne.Settings) *Appearance {
	return &Appearance{settings: settings}
}

// Current returns the OS appearance as a concrete rendering theme. Anything
// the toolkit cannot classify as dark reads as light.
func (a *Appearance) Current() runner.Theme {
	if a.settings.ThemeVariant() == theme.VariantDark {
		return runner.ThemeDark
	}
	return runner.ThemeLight
}

// Subscribe invokes onChange whenever the OS appearance flips between light
// and dark. Settings fire for unrelated preference changes too, so events
// that leave the variant unchanged are filtered out.
func (a *Appearance) Subscribe(ctx context.Context, onChange func()) {
	ch := make(chan fyne.Settings, 4)
	a.settings.AddChangeListener(ch)

	go func() {
		last := a.settings.ThemeVariant()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				current := a.settings.ThemeVariant()
				if current == last {
					continue
				}
				last = current
				onChange()
			}
		}
	}()
}
