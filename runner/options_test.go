package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStore map[string]string

func (s fakeStore) String(key string) string         { return s[key] }
func (s fakeStore) SetString(key string, val string) { s[key] = val }

func TestOptionsRoundTrip(t *testing.T) {
	store := fakeStore{}
	saved := Options{Character: Horse, Theme: ThemeDark, MaxRate: FPS20}
	saved.Save(store)

	// A fresh process sees only the store contents.
	loaded := LoadOptions(store)
	assert.Equal(t, saved, loaded)
}

func TestLoadOptionsDefaults(t *testing.T) {
	assert.Equal(t, DefaultOptions(), LoadOptions(fakeStore{}))
}

func TestLoadOptionsPerKeyFallback(t *testing.T) {
	testCases := []struct {
		name     string
		store    fakeStore
		expected Options
	}{
		{
			name:     "garbage runner only affects runner",
			store:    fakeStore{"Runner": "dog", "Theme": "dark", "FPSMaxLimit": "fps20"},
			expected: Options{Character: Cat, Theme: ThemeDark, MaxRate: FPS20},
		},
		{
			name:     "missing rate falls back alone",
			store:    fakeStore{"Runner": "parrot", "Theme": "light"},
			expected: Options{Character: Parrot, Theme: ThemeLight, MaxRate: FPS40},
		},
		{
			name:     "garbage theme keeps system default",
			store:    fakeStore{"Runner": "horse", "Theme": "solarized", "FPSMaxLimit": "fps10"},
			expected: Options{Character: Horse, Theme: ThemeSystem, MaxRate: FPS10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LoadOptions(tc.store))
		})
	}
}

func TestEnumKeysRoundTrip(t *testing.T) {
	for _, c := range Characters() {
		parsed, ok := ParseCharacter(c.Key())
		assert.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	for _, th := range Themes() {
		parsed, ok := ParseTheme(th.Key())
		assert.True(t, ok)
		assert.Equal(t, th, parsed)
	}
	for _, m := range MaxRates() {
		parsed, ok := ParseMaxRate(m.Key())
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}
}

func TestFrameCountsAreNotUniform(t *testing.T) {
	counts := map[int]bool{}
	for _, c := range Characters() {
		assert.Greater(t, c.FrameCount(), 0)
		counts[c.FrameCount()] = true
	}
	assert.Greater(t, len(counts), 1)
}
