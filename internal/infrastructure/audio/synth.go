package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform.
type waveShape int

const (
	shapeSine waveShape = iota
	shapeSquare
	shapeSaw
	shapeNoise
)

// tone is a finite single-waveform streamer.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		shape: shape,
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}

		var v float64
		switch t.shape {
		case shapeSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case shapeSquare:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case shapeSaw:
			v = 2.0 * (t.phase - 0.5)
		case shapeNoise:
			v = rand.Float64()*2 - 1
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// shaped wraps a streamer with linear attack and release ramps.
type shaped struct {
	streamer beep.Streamer
	position int
	attack   int
	sustain  int
	release  int
	total    int
}

func newShaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &shaped{
		streamer: s,
		attack:   att,
		sustain:  sus,
		release:  rel,
		total:    total,
	}
}

func (e *shaped) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if rs := e.attack + e.sustain; e.position >= rs && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.streamer.Err() }

// withVolume scales a streamer; a zero volume is fully silent because
// Log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators. Every sound is synthesized; there are no asset files.

func jumpCue(rate beep.SampleRate, vol float64) beep.Streamer {
	// Rising fifth, quick and soft.
	n1 := newShaped(newTone(523.25, 50*time.Millisecond, shapeSquare, rate), 50*time.Millisecond, 4*time.Millisecond, 20*time.Millisecond, rate)
	n2 := newShaped(newTone(783.99, 70*time.Millisecond, shapeSquare, rate), 70*time.Millisecond, 4*time.Millisecond, 40*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), vol*0.5)
}

func coinCue(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := newShaped(newTone(987.77, 60*time.Millisecond, shapeSquare, rate), 60*time.Millisecond, 2*time.Millisecond, 25*time.Millisecond, rate)
	n2 := newShaped(newTone(1318.51, 140*time.Millisecond, shapeSquare, rate), 140*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), vol*0.6)
}

func stompCue(rate beep.SampleRate, vol float64) beep.Streamer {
	thud := newShaped(newTone(140, 90*time.Millisecond, shapeSine, rate), 90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	crunch := newShaped(newTone(0, 60*time.Millisecond, shapeNoise, rate), 60*time.Millisecond, 2*time.Millisecond, 45*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(thud, 0.8), withVolume(crunch, 0.3)), vol*0.7)
}

func breakCue(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := newShaped(newTone(0, 180*time.Millisecond, shapeNoise, rate), 180*time.Millisecond, 2*time.Millisecond, 140*time.Millisecond, rate)
	rumble := newShaped(newTone(90, 180*time.Millisecond, shapeSine, rate), 180*time.Millisecond, 2*time.Millisecond, 140*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(noise, 0.5), withVolume(rumble, 0.5)), vol*0.7)
}

func powerUpCue(rate beep.SampleRate, vol float64) beep.Streamer {
	// Major arpeggio up.
	var notes []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99, 1046.50} {
		notes = append(notes, newShaped(newTone(f, 70*time.Millisecond, shapeSquare, rate), 70*time.Millisecond, 3*time.Millisecond, 30*time.Millisecond, rate))
	}
	return withVolume(beep.Seq(notes...), vol*0.5)
}

func fireballCue(rate beep.SampleRate, vol float64) beep.Streamer {
	hiss := newShaped(newTone(0, 80*time.Millisecond, shapeNoise, rate), 80*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	return withVolume(hiss, vol*0.35)
}

func kickCue(rate beep.SampleRate, vol float64) beep.Streamer {
	n := newShaped(newTone(220, 80*time.Millisecond, shapeSaw, rate), 80*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, rate)
	return withVolume(n, vol*0.5)
}

func damageCue(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := newShaped(newTone(110, 200*time.Millisecond, shapeSaw, rate), 200*time.Millisecond, 3*time.Millisecond, 120*time.Millisecond, rate)
	return withVolume(buzz, vol*0.6)
}

func deathCue(rate beep.SampleRate, vol float64) beep.Streamer {
	// Falling minor phrase.
	var notes []beep.Streamer
	for _, f := range []float64{659.25, 622.25, 587.33, 523.25, 392.00} {
		notes = append(notes, newShaped(newTone(f, 110*time.Millisecond, shapeSquare, rate), 110*time.Millisecond, 4*time.Millisecond, 50*time.Millisecond, rate))
	}
	return withVolume(beep.Seq(notes...), vol*0.6)
}

func completeCue(rate beep.SampleRate, vol float64) beep.Streamer {
	var notes []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99, 1046.50, 1318.51, 1567.98} {
		notes = append(notes, newShaped(newTone(f, 90*time.Millisecond, shapeSquare, rate), 90*time.Millisecond, 3*time.Millisecond, 40*time.Millisecond, rate))
	}
	return withVolume(beep.Seq(notes...), vol*0.6)
}
