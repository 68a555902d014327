package runner

// Store is the flat key-value settings store the options persist through.
// The fyne Preferences API satisfies it directly.
type Store interface {
	String(key string) string
	SetString(key string, value string)
}

// Settings keys. These are part of the persisted format; do not rename.
const (
	keyRunner  = "Runner"
	keyTheme   = "Theme"
	keyMaxRate = "FPSMaxLimit"
)

// Options holds the user selections that survive restarts. The zero-ish
// default is a cat following the OS theme at the sharpest rate limit.
type Options struct {
	Character Character
	Theme     Theme
	MaxRate   MaxRate
}

// DefaultOptions returns the options used when nothing is persisted.
func DefaultOptions() Options {
	return Options{Character: Cat, Theme: ThemeSystem, MaxRate: FPS40}
}

// LoadOptions reads the persisted selections. Each key falls back to its
// default independently: an unparseable or missing value never affects the
// other keys and is never an error.
func LoadOptions(store Store) Options {
	opts := DefaultOptions()
	if c, ok := ParseCharacter(store.String(keyRunner)); ok {
		opts.Character = c
	}
	if t, ok := ParseTheme(store.String(keyTheme)); ok {
		opts.Theme = t
	}
	if m, ok := ParseMaxRate(store.String(keyMaxRate)); ok {
		opts.MaxRate = m
	}
	return opts
}

// Save writes the selections to the store. Called once, at clean shutdown.
func (o Options) Save(store Store) {
	store.SetString(keyRunner, o.Character.Key())
	store.SetString(keyTheme, o.Theme.Key())
	store.SetString(keyMaxRate, o.MaxRate.Key())
}
