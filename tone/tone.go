// Package tone plays short sine beeps through the system audio device
package tone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when the player is created with rate <= 0
const DefaultSampleRate = beep.SampleRate(44100)

// maxActive bounds overlapping beeps; further requests are dropped
const maxActive = 8

var (
	ErrFrequency = errors.New("frequency out of range")
	ErrDuration  = errors.New("duration must be positive")
)

// Tone builds a sine streamer of freq Hz lasting d, at half volume
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("%w: %g Hz", ErrFrequency, freq)
	}
	if d <= 0 {
		return nil, ErrDuration
	}
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrequency, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   -1,
	}, nil
}

// Player owns the speaker and mixes beeps into it
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player; call Init to open the device
func NewPlayer(rate beep.SampleRate) *Player {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Player{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the device is open
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Beep queues a tone and returns immediately.
// It returns false when the player is silent, the tone is invalid or too many are playing.
func (p *Player) Beep(freq float64, d time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	s, err := Tone(p.rate, freq, d)
	if err != nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxActive {
		return false
	}
	p.mixer.Add(s)
	return true
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
