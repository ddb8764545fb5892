package tone

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		rate beep.SampleRate
		d    time.Duration
		want int
	}{
		{44100, 100 * time.Millisecond, 4410},
		{48000, 250 * time.Millisecond, 12000},
		{8000, time.Second, 8000},
	}
	for _, tt := range tests {
		s, err := Tone(tt.rate, 440, tt.d)
		if err != nil {
			t.Fatalf("Tone(%d, 440, %v): %v", tt.rate, tt.d, err)
		}
		if got, _ := drain(s); got != tt.want {
			t.Errorf("Tone(%d, %v) streamed %d samples, want %d", tt.rate, tt.d, got, tt.want)
		}
	}
}

func TestToneAmplitude(t *testing.T) {
	s, err := Tone(44100, 440, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	_, peak := drain(s)
	if peak < 0.45 || peak > 0.5001 {
		t.Errorf("peak = %f, want about 0.5", peak)
	}
}

func TestToneInvalid(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		d    time.Duration
		want error
	}{
		{"zero frequency", 0, time.Second, ErrFrequency},
		{"negative frequency", -10, time.Second, ErrFrequency},
		{"above nyquist", 30000, time.Second, ErrFrequency},
		{"zero duration", 440, 0, ErrDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Tone(44100, tt.freq, tt.d); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer(0)
	if p.rate != DefaultSampleRate {
		t.Errorf("rate = %d, want default", p.rate)
	}
	if p.Enabled() {
		t.Error("player enabled before Init")
	}
	if p.Beep(440, 10*time.Millisecond) {
		t.Error("Beep succeeded on a silent player")
	}
	p.Close()
}
