// Package speech gates transcription requests behind an explicit readiness
// state machine. The backend model warms up asynchronously; requests that
// arrive before it is Ready fail fast instead of blocking or proceeding
// against a dead backend.
package speech

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

// State is the readiness of the transcription backend. Transitions are
// monotonic: Unloaded → Loading → Ready or Failed.
type State int32

const (
	Unloaded State = iota
	Loading
	Ready
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

var (
	// ErrNotReady distinguishes "still loading" from any other failure.
	ErrNotReady = errors.New("speech model is still loading")

	// ErrLoadFailed is returned once warmup has conclusively failed.
	ErrLoadFailed = errors.New("speech model failed to load")
)

// Backend is the transcription capability behind the state machine.
type Backend interface {
	Health(ctx context.Context) error
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// Loader owns the warmup lifecycle and the readiness state.
type Loader struct {
	l       pkgLog.Logger
	backend Backend
	state   atomic.Int32

	attempts int
	interval time.Duration
}

// NewLoader creates a loader in the Unloaded state.
func NewLoader(l pkgLog.Logger, backend Backend) *Loader {
	return &Loader{
		l:        l,
		backend:  backend,
		attempts: 30,
		interval: 2 * time.Second,
	}
}

// SetWarmup overrides the probe schedule (used in tests).
func (ld *Loader) SetWarmup(attempts int, interval time.Duration) {
	ld.attempts = attempts
	ld.interval = interval
}

// Start launches the background warmup. Safe to call once at process init.
func (ld *Loader) Start(ctx context.Context) {
	if !ld.state.CompareAndSwap(int32(Unloaded), int32(Loading)) {
		return
	}

	go func() {
		for i := 0; i < ld.attempts; i++ {
			probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := ld.backend.Health(probeCtx)
			cancel()

			if err == nil {
				ld.state.Store(int32(Ready))
				ld.l.Info(ctx, "speech model ready")
				return
			}

			ld.l.Debugf(ctx, "speech model warmup attempt %d/%d: %v", i+1, ld.attempts, err)

			select {
			case <-ctx.Done():
				ld.state.Store(int32(Failed))
				return
			case <-time.After(ld.interval):
			}
		}

		ld.state.Store(int32(Failed))
		ld.l.Errorf(ctx, "speech model failed to load after %d attempts", ld.attempts)
	}()
}

// State returns the current readiness state.
func (ld *Loader) State() State {
	return State(ld.state.Load())
}

// Ready reports whether transcription requests will be served.
func (ld *Loader) Ready() bool {
	return ld.State() == Ready
}

// Transcribe forwards to the backend once Ready; otherwise it fails fast
// with a state-distinguishing error.
func (ld *Loader) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	switch ld.State() {
	case Ready:
		return ld.backend.Transcribe(ctx, filename, audio)
	case Failed:
		return "", ErrLoadFailed
	default:
		return "", ErrNotReady
	}
}
