package runner

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// AssetSource defines the interface for reading icon assets from the
// embedded file system.
type AssetSource interface {
	ReadFile(name string) ([]byte, error)
}

// Resolve builds the ordered frame set for a (theme, character) pair.
//
// ThemeSystem is replaced by the probe's result before lookup; anything the
// probe reports other than dark renders light. Frames are looked up as
// assets/{theme}_{character}_{index}.png in index order. A missing index is
// skipped rather than substituted, which shortens the cycle by exactly the
// number of missing frames.
func Resolve(assets AssetSource, c Character, t Theme, probe func() Theme) []fyne.Resource {
	if t == ThemeSystem {
		t = probe()
		if t != ThemeDark {
			t = ThemeLight
		}
	}

	frames := make([]fyne.Resource, 0, c.FrameCount())
	for i := 0; i < c.FrameCount(); i++ {
		name := fmt.Sprintf("assets/%s_%s_%d.png", t.Key(), c.Key(), i)
		data, err := assets.ReadFile(name)
		if err != nil {
			continue
		}
		frames = append(frames, fyne.NewStaticResource(name, data))
	}
	return frames
}
