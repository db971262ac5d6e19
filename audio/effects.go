package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"golang.org/x/exp/rand"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite wave streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope fades s in over attack and out over the last release of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining <= e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped sine from the beep generator package
// Falls back to the local oscillator when the generator rejects the frequency
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if sine, err := generators.SineTone(rate, freq); err == nil {
		src = beep.Take(rate.N(duration), sine)
	} else {
		src = NewOscillator(freq, duration, WaveSine, rate)
	}
	return NewEnvelope(src, duration, attack, release, rate)
}

// Cue durations
const (
	eatNoteDuration   = 60 * time.Millisecond
	deathDuration     = 450 * time.Millisecond
	pauseDuration     = 80 * time.Millisecond
	cueAttack         = 5 * time.Millisecond
	cueRelease        = 30 * time.Millisecond
	deathNoiseRelease = 300 * time.Millisecond
)

// CreateEatSound is a rising two-note chirp
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := tone(659.25, eatNoteDuration, cueAttack, cueRelease, rate) // E5
	n2 := tone(987.77, eatNoteDuration, cueAttack, cueRelease, rate) // B5
	return newVolume(beep.Seq(n1, n2), vol)
}

// CreateDeathSound is a low square buzz over decaying noise
func CreateDeathSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := NewEnvelope(NewOscillator(110, deathDuration, WaveSquare, rate), deathDuration, cueAttack, deathDuration/2, rate)
	noise := NewEnvelope(NewOscillator(0, deathDuration, WaveNoise, rate), deathDuration, cueAttack, deathNoiseRelease, rate)
	return newVolume(beep.Mix(newVolume(buzz, 0.6), newVolume(noise, 0.3)), vol)
}

// CreatePauseSound is a short mid blip
func CreatePauseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(440, pauseDuration, cueAttack, cueRelease, rate), vol)
}
