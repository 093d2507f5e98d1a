package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
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

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// melody chains equal-length notes; Rest steps are silent
func melody(notes []int, step time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n == Rest {
			parts = append(parts, beep.Silence(rate.N(step)))
			continue
		}
		osc := NewOscillator(NoteFreq(n), step, wave, rate)
		parts = append(parts, NewEnvelope(osc, step, step/20, step/2, rate))
	}
	return beep.Seq(parts...)
}

// repeat restarts a finite stream from its factory whenever it runs dry
type repeat struct {
	source func() beep.Streamer
	cur    beep.Streamer
	dry    bool
}

func newRepeat(source func() beep.Streamer) beep.Streamer {
	return &repeat{source: source, cur: source()}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		sn, sok := r.cur.Stream(samples[n:])
		n += sn
		if sn > 0 {
			r.dry = false
		}
		if sok {
			if sn == 0 {
				break
			}
			continue
		}
		if sn == 0 && r.dry {
			// Source yields nothing even when fresh
			for i := n; i < len(samples); i++ {
				samples[i] = [2]float64{}
			}
			return len(samples), true
		}
		r.dry = sn == 0
		r.cur = r.source()
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// Cue synthesis

func createFireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, constants.FireSoundDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, constants.FireSoundDuration, constants.FireSoundAttack, constants.FireSoundRelease, rate), 0.3)
}

func createEnemyFireSound(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, constants.EnemyFireSoundDuration, wave, rate)
	return newVolume(NewEnvelope(osc, constants.EnemyFireSoundDuration, constants.EnemyFireSoundAttack, constants.EnemyFireSoundRelease, rate), 0.25)
}

func createEnemyDeathSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constants.EnemyDeathSoundDuration, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, constants.EnemyDeathSoundDuration, constants.EnemyDeathSoundAttack, constants.EnemyDeathSoundRelease, rate), 0.4)
}

func createPlayerDeathSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PlayerDeathSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.PlayerDeathSoundAttack, constants.PlayerDeathSoundRelease, rate)
	rumble := NewEnvelope(NewOscillator(70.0, d, WaveSaw, rate), d, constants.PlayerDeathSoundAttack, constants.PlayerDeathSoundRelease, rate)
	return beep.Mix(newVolume(noise, 0.4), newVolume(rumble, 0.3))
}

var (
	mainTheme     = []int{45, 52, 48, 52, 43, 50, 47, 50}
	gameOverTheme = []int{57, 55, 53, 52, 50, Rest, 45, Rest}
	winTheme      = []int{60, 64, 67, 72, 67, 72, 76, Rest}
)

func createMusic(theme []int, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(theme, constants.MusicBeatDuration, wave, rate), 0.15)
}

// CueSound returns a finite streamer for one pass of the cue
func CueSound(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CuePlayerFire:
		return createFireSound(rate)
	case CueEnemyFire1:
		return createEnemyFireSound(220.0, WaveSaw, rate)
	case CueEnemyFire2:
		return createEnemyFireSound(330.0, WaveSquare, rate)
	case CueEnemyFire3:
		return createEnemyFireSound(165.0, WaveSaw, rate)
	case CueEnemyDeath:
		return createEnemyDeathSound(rate)
	case CuePlayerDeath:
		return createPlayerDeathSound(rate)
	case CueMusicMain:
		return createMusic(mainTheme, WaveSquare, rate)
	case CueMusicGameOver:
		return createMusic(gameOverTheme, WaveSine, rate)
	case CueMusicWin:
		return createMusic(winTheme, WaveSquare, rate)
	default:
		return nil
	}
}
