package runner

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Surface is the minimal interface the animator expects from the display
// side. Implementations marshal onto the UI thread themselves.
type Surface interface {
	SetFrame(fyne.Resource)
}

// Animator advances a frame cursor through the active frame set at the
// current tick interval and pushes each frame to the surface.
//
// Mutable fields are accessed by the ticker goroutine and by the command
// loop (retunes, frame set rebuilds), so they are protected by mu. The
// ticker itself is owned exclusively by the animator: Retune reconfigures it
// in place, which guarantees there is never more than one tick loop.
type Animator struct {
	surface Surface

	mu       sync.Mutex
	frames   []fyne.Resource
	cursor   int
	interval time.Duration
	ticker   *time.Ticker
	running  bool
	stopCh   chan struct{}
}

// NewAnimator creates an animator that pushes frames to surface. It starts
// stopped; call Start to begin ticking.
func NewAnimator(surface Surface, interval time.Duration) *Animator {
	return &Animator{surface: surface, interval: interval}
}

// Start begins ticking at the current interval. It is a no-op if the
// animator is already running.
func (a *Animator) Start(ctx context.Context) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.ticker = time.NewTicker(a.interval)
	a.stopCh = make(chan struct{})
	ticker, stop := a.ticker, a.stopCh
	a.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				a.Stop()
				return
			case <-stop:
				return
			case <-ticker.C:
				a.Tick()
			}
		}
	}()
}

// Retune changes the tick interval without touching the frame cursor: a
// retune mid-cycle only changes pacing, the cycle continues from wherever
// it was.
func (a *Animator) Retune(interval time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if interval <= 0 || interval == a.interval {
		return
	}
	a.interval = interval
	if a.running {
		a.ticker.Reset(interval)
	}
}

// Interval returns the current tick interval.
func (a *Animator) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

// SetFrames replaces the active frame set. A cursor left beyond the new
// length is reset so the next tick never indexes out of range.
func (a *Animator) SetFrames(frames []fyne.Resource) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames = frames
	if a.cursor >= len(frames) {
		a.cursor = 0
	}
}

// Tick pushes the current frame and advances the cursor cyclically. With an
// empty frame set it does nothing; that only happens if every asset of the
// active pair is missing.
func (a *Animator) Tick() {
	a.mu.Lock()
	if len(a.frames) == 0 {
		a.mu.Unlock()
		return
	}
	if a.cursor >= len(a.frames) {
		a.cursor = 0
	}
	frame := a.frames[a.cursor]
	a.cursor = (a.cursor + 1) % len(a.frames)
	a.mu.Unlock()

	a.surface.SetFrame(frame)
}

// Stop halts ticking. Used during shutdown; Start may be called again
// afterwards.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false
	a.ticker.Stop()
	close(a.stopCh)
}
