package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(48000)

// drain pulls a streamer to exhaustion and returns the left channel.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestTone_ProducesExactDuration(t *testing.T) {
	s := newTone(440, 100*time.Millisecond, shapeSine, testRate)
	got := drain(t, s)
	assert.Len(t, got, testRate.N(100*time.Millisecond))
}

func TestTone_SamplesStayInRange(t *testing.T) {
	shapes := map[string]waveShape{
		"sine":   shapeSine,
		"square": shapeSquare,
		"saw":    shapeSaw,
		"noise":  shapeNoise,
	}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for _, v := range drain(t, newTone(440, 30*time.Millisecond, shape, testRate)) {
				require.GreaterOrEqual(t, v, -1.0)
				require.LessOrEqual(t, v, 1.0)
			}
		})
	}
}

func TestShaped_RampsInAndOut(t *testing.T) {
	// A constant-ish square carrier makes the envelope easy to observe.
	s := newShaped(
		newTone(1, 100*time.Millisecond, shapeSquare, testRate),
		100*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond, testRate,
	)
	got := drain(t, s)
	require.Len(t, got, testRate.N(100*time.Millisecond))

	assert.Zero(t, got[0], "attack starts from silence")
	assert.InDelta(t, 0.5, got[testRate.N(10*time.Millisecond)], 0.05, "halfway up the attack ramp")
	assert.InDelta(t, 1.0, got[testRate.N(50*time.Millisecond)], 0.01, "full level during sustain")
	assert.InDelta(t, 0.0, got[len(got)-1], 0.01, "release fades to silence")
}

func TestCues_FiniteAndBounded(t *testing.T) {
	cues := map[string]func(beep.SampleRate, float64) beep.Streamer{
		"jump":     jumpCue,
		"coin":     coinCue,
		"stomp":    stompCue,
		"break":    breakCue,
		"powerUp":  powerUpCue,
		"fireball": fireballCue,
		"kick":     kickCue,
		"damage":   damageCue,
		"death":    deathCue,
		"complete": completeCue,
	}
	for name, cue := range cues {
		t.Run(name, func(t *testing.T) {
			got := drain(t, cue(testRate, 0.8))
			require.NotEmpty(t, got)
			for _, v := range got {
				require.GreaterOrEqual(t, v, -1.0)
				require.LessOrEqual(t, v, 1.0)
			}
		})
	}
}

func TestWithVolume_ZeroIsSilent(t *testing.T) {
	s := withVolume(newTone(440, 10*time.Millisecond, shapeSquare, testRate), 0)
	for _, v := range drain(t, s) {
		assert.Zero(t, v)
	}
}
