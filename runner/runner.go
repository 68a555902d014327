// Package runner contains the domain logic for the indicator: the selectable
// runners, themes and speed limits, the load-to-interval mapping, the icon
// frame resolution and the animation state machine.
//
// Maintenance notes:
//   - Enum variants serialize through the stable keys returned by Key() and
//     parsed by the Parse* functions. Display labels live in the ui/i18n
//     layers; renaming a label must never change a key, otherwise persisted
//     settings break.
//   - Frame counts are per runner and are not uniform. Anything holding a
//     frame cursor has to re-clamp after the active frame set is rebuilt.
package runner

// Character is a selectable animated subject. Each variant declares how many
// frames make up one full animation cycle.
type Character int

const (
	Cat Character = iota
	Parrot
	Horse
)

var characterKeys = map[Character]string{
	Cat:    "cat",
	Parrot: "parrot",
	Horse:  "horse",
}

var characterFrames = map[Character]int{
	Cat:    5,
	Parrot: 10,
	Horse:  14,
}

// Characters returns all selectable characters in menu order.
func Characters() []Character {
	return []Character{Cat, Parrot, Horse}
}

// Key returns the stable persistence key for the character.
func (c Character) Key() string {
	return characterKeys[c]
}

// FrameCount returns the number of frames in one animation cycle.
func (c Character) FrameCount() int {
	return characterFrames[c]
}

// ParseCharacter maps a persistence key back to its character. The second
// return value reports whether the key was recognized.
func ParseCharacter(key string) (Character, bool) {
	for c, k := range characterKeys {
		if k == key {
			return c, true
		}
	}
	return Cat, false
}

// Theme selects the icon color variant. ThemeSystem is an indirection: it is
// resolved against the OS appearance at frame-resolution time.
type Theme int

const (
	ThemeSystem Theme = iota
	ThemeLight
	ThemeDark
)

var themeKeys = map[Theme]string{
	ThemeSystem: "system",
	ThemeLight:  "light",
	ThemeDark:   "dark",
}

// Themes returns all selectable themes in menu order.
func Themes() []Theme {
	return []Theme{ThemeSystem, ThemeLight, ThemeDark}
}

// Key returns the stable persistence key for the theme.
func (t Theme) Key() string {
	return themeKeys[t]
}

// ParseTheme maps a persistence key back to its theme.
func ParseTheme(key string) (Theme, bool) {
	for t, k := range themeKeys {
		if k == key {
			return t, true
		}
	}
	return ThemeSystem, false
}

// MaxRate is the user-chosen ceiling on how sharply the animation speeds up
// with load. The multiplier scales the load term of the speed mapping; the
// names correspond to the frame rate reached at full load.
type MaxRate int

const (
	FPS10 MaxRate = iota
	FPS20
	FPS30
	FPS40
)

var maxRateKeys = map[MaxRate]string{
	FPS10: "fps10",
	FPS20: "fps20",
	FPS30: "fps30",
	FPS40: "fps40",
}

var maxRateMultipliers = map[MaxRate]float64{
	FPS10: 0.25,
	FPS20: 0.5,
	FPS30: 0.75,
	FPS40: 1.0,
}

// MaxRates returns all selectable rate limits in menu order.
func MaxRates() []MaxRate {
	return []MaxRate{FPS10, FPS20, FPS30, FPS40}
}

// Key returns the stable persistence key for the rate limit.
func (m MaxRate) Key() string {
	return maxRateKeys[m]
}

func (m MaxRate) multiplier() float64 {
	return maxRateMultipliers[m]
}

// ParseMaxRate maps a persistence key back to its rate limit.
func ParseMaxRate(key string) (MaxRate, bool) {
	for m, k := range maxRateKeys {
		if k == key {
			return m, true
		}
	}
	return FPS40, false
}
