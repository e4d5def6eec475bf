// Package sound plays short bounce tones through the system speaker.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	contactFreq = 660
	wallFreq    = 330
	toneLength  = 40 * time.Millisecond
	toneGain    = 0.2

	// maxVoices bounds how many tones overlap in the mixer.
	maxVoices = 4
)

// Player mixes bounce tones into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. A Player that failed to initialise stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Bounce plays one tone for a tick that had ball contacts or wall hits.
// Contacts take the higher pitch.
func (p *Player) Bounce(contacts, wallHits int) {
	freq := 0.0
	switch {
	case contacts > 0:
		freq = contactFreq
	case wallHits > 0:
		freq = wallFreq
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s, err := Tone(sampleRate, freq, toneLength)
	if err != nil {
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
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

// Tone returns a sine burst of length d that decays linearly to silence.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(d)
	return beep.Take(n, &decay{s: sine, n: n}), nil
}

type decay struct {
	s   beep.Streamer
	pos int
	n   int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		env := toneGain
		if d.n > 0 {
			env *= 1 - float64(d.pos)/float64(d.n)
		}
		if env < 0 {
			env = 0
		}
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }
