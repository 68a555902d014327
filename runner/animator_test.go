package runner

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	mu     sync.Mutex
	frames []fyne.Resource
}

func (s *fakeSurface) SetFrame(frame fyne.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
}

func (s *fakeSurface) pushed() []fyne.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]fyne.Resource(nil), s.frames...)
}

func testFrames(names ...string) []fyne.Resource {
	frames := make([]fyne.Resource, 0, len(names))
	for _, name := range names {
		frames = append(frames, fyne.NewStaticResource(name, []byte(name)))
	}
	return frames
}

func TestTickCyclesThroughFrames(t *testing.T) {
	surface := &fakeSurface{}
	a := NewAnimator(surface, 500*time.Millisecond)
	a.SetFrames(testFrames("f0", "f1", "f2"))

	for i := 0; i < 4; i++ {
		a.Tick()
	}

	pushed := surface.pushed()
	require.Len(t, pushed, 4)
	assert.Equal(t, "f0", pushed[0].Name())
	assert.Equal(t, "f1", pushed[1].Name())
	assert.Equal(t, "f2", pushed[2].Name())
	assert.Equal(t, "f0", pushed[3].Name(), "cursor wraps modulo frame count")
}

func TestTickWithEmptyFrameSetIsNoop(t *testing.T) {
	surface := &fakeSurface{}
	a := NewAnimator(surface, 500*time.Millisecond)

	a.Tick()
	a.SetFrames(nil)
	a.Tick()

	assert.Empty(t, surface.pushed())
}

func TestSetFramesClampsStaleCursor(t *testing.T) {
	surface := &fakeSurface{}
	a := NewAnimator(surface, 500*time.Millisecond)
	a.SetFrames(testFrames("a0", "a1", "a2", "a3"))

	// Advance the cursor to 3, then shrink the set below it.
	for i := 0; i < 3; i++ {
		a.Tick()
	}
	a.SetFrames(testFrames("b0", "b1"))
	a.Tick()

	pushed := surface.pushed()
	require.Len(t, pushed, 4)
	assert.Equal(t, "b0", pushed[3].Name(), "stale cursor resets instead of indexing out of range")
}

func TestRetunePreservesCursor(t *testing.T) {
	surface := &fakeSurface{}
	a := NewAnimator(surface, 500*time.Millisecond)
	a.SetFrames(testFrames("f0", "f1", "f2"))

	a.Tick()
	a.Retune(25 * time.Millisecond)
	a.Tick()

	pushed := surface.pushed()
	require.Len(t, pushed, 2)
	assert.Equal(t, "f1", pushed[1].Name(), "retune changes pacing only, the cycle continues")
	assert.Equal(t, 25*time.Millisecond, a.Interval())
}

func TestRetuneIgnoresNonPositiveInterval(t *testing.T) {
	a := NewAnimator(&fakeSurface{}, 500*time.Millisecond)
	a.Retune(0)
	assert.Equal(t, 500*time.Millisecond, a.Interval())
}

func TestStartStopLifecycle(t *testing.T) {
	surface := &fakeSurface{}
	a := NewAnimator(surface, 5*time.Millisecond)
	a.SetFrames(testFrames("f0", "f1"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.Start(ctx)
	a.Start(ctx) // idempotent: no second tick loop

	assert.Eventually(t, func() bool {
		return len(surface.pushed()) >= 2
	}, time.Second, 5*time.Millisecond)

	a.Stop()
	a.Stop() // stopping twice is fine
	time.Sleep(10 * time.Millisecond) // let an already-fired tick drain
	count := len(surface.pushed())
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, len(surface.pushed()), "no ticks after stop")
}
