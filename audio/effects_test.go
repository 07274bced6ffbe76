package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if math.IsNaN(buf[j][0]) || math.IsInf(buf[j][0], 0) {
				t.Fatalf("Sample %d is not finite: %v", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer never drained")
	return total
}

// TestOscillatorSine verifies sine wave generation stays in range
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v, want 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, rate)

	if got, want := drain(t, osc), rate.N(10*time.Millisecond); got != want {
		t.Errorf("Oscillator produced %d samples, want %d", got, want)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Envelope streamed %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample = %v, want 0 (attack start)", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain sample = %v, want 1", samples[50][0])
	}
	if samples[99][0] > 0.11 {
		t.Errorf("Last sample = %v, want near 0 (release end)", samples[99][0])
	}
}

// TestSoundEffectsDrain verifies every effect is finite
func TestSoundEffectsDrain(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("No effect for sound type %d", st)
		}
		if drain(t, s) == 0 {
			t.Errorf("Sound type %d produced no samples", st)
		}
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Unknown sound type should return nil")
	}
}

// TestVolumeZeroIsSilent verifies a muted effect produces silence
func TestVolumeZeroIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateCrashSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Sample %d = %v, want silence", i, buf[i])
		}
	}
}

func TestAudioConfigVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes[SoundCrash] = 0.8

	if got := cfg.Volume(SoundCrash); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("Volume(SoundCrash) = %v, want 0.4", got)
	}
	if got := cfg.Volume(SoundType(99)); got != 0 {
		t.Errorf("Volume(unknown) = %v, want 0", got)
	}
}
