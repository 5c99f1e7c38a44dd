package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/hyunmoon/sidescroll/internal/domain/event"
)

const sampleRate = beep.SampleRate(48000)

// Mixer owns the speaker and turns simulation events into synthesized
// cues. All methods are safe to call before Init; they no-op.
type Mixer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewMixer creates a mixer at the given master volume in [0, 1].
func NewMixer(volume float64) *Mixer {
	return &Mixer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Call once before the game loop starts.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything. The speaker stays open; beep has no
// close, and a cleared mixer produces silence.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// PlayEvents fires a cue for each event that has one. Intended to be
// called once per frame with the events emitted since the last call.
func (m *Mixer) PlayEvents(events []event.Event) {
	for i := range events {
		m.playKind(events[i].Kind)
	}
}

func (m *Mixer) playKind(k event.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	var s beep.Streamer
	switch k {
	case event.Jump:
		s = jumpCue(sampleRate, m.volume)
	case event.Coin:
		s = coinCue(sampleRate, m.volume)
	case event.Stomp, event.EnemyKilled:
		s = stompCue(sampleRate, m.volume)
	case event.Break:
		s = breakCue(sampleRate, m.volume)
	case event.PowerUp:
		s = powerUpCue(sampleRate, m.volume)
	case event.Fireball:
		s = fireballCue(sampleRate, m.volume)
	case event.Kick:
		s = kickCue(sampleRate, m.volume)
	case event.PlayerDamaged:
		s = damageCue(sampleRate, m.volume)
	case event.PlayerDied:
		s = deathCue(sampleRate, m.volume)
	case event.LevelComplete:
		s = completeCue(sampleRate, m.volume)
	default:
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
