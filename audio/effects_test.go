package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSine, rate)

	buf := make([][2]float64, 32)
	n, ok := osc.Stream(buf)
	if n != 10 || ok {
		t.Errorf("Expected 10 samples then end, got n=%d ok=%v", n, ok)
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		buf := make([][2]float64, 400)
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1.0 {
				t.Fatalf("Wave %d sample %d out of range: %f", wave, i, buf[i][0])
			}
		}
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Sustain should pass full level, got %f", buf[50][0])
	}
	if buf[99][0] > 0.2 {
		t.Errorf("Release should approach silence, got %f", buf[99][0])
	}
}

func TestRepeatRestartsSource(t *testing.T) {
	rate := beep.SampleRate(1000)
	starts := 0
	r := newRepeat(func() beep.Streamer {
		starts++
		return NewOscillator(0, 5*time.Millisecond, WaveSquare, rate)
	})

	buf := make([][2]float64, 12)
	n, ok := r.Stream(buf)
	if n != 12 || !ok {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}
	if starts != 3 {
		t.Errorf("Expected 3 source starts, got %d", starts)
	}
}

func TestRepeatEmptySource(t *testing.T) {
	r := newRepeat(func() beep.Streamer { return beep.Silence(0) })

	buf := make([][2]float64, 8)
	buf[3][0] = 1
	n, ok := r.Stream(buf)
	if n != 8 || !ok {
		t.Fatalf("Expected silent full buffer, got n=%d ok=%v", n, ok)
	}
	if buf[3][0] != 0 {
		t.Error("Empty source should produce silence")
	}
}

func TestNoteFreq(t *testing.T) {
	if math.Abs(NoteFreq(69)-440) > 1e-9 {
		t.Errorf("A4 should be 440Hz, got %f", NoteFreq(69))
	}
	if math.Abs(NoteFreq(81)-880) > 1e-9 {
		t.Errorf("A5 should be 880Hz, got %f", NoteFreq(81))
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Error("Out of range notes should be 0Hz")
	}
}

func TestConfigNormalize(t *testing.T) {
	c := Config{MasterVolume: 3, SampleRate: -5}.normalize()
	if c.MasterVolume != 1 {
		t.Errorf("Expected clamped volume 1, got %f", c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		t.Errorf("Expected default sample rate, got %d", c.SampleRate)
	}
	if (Config{MasterVolume: -1}).normalize().MasterVolume != 0 {
		t.Error("Negative volume should clamp to 0")
	}
}
