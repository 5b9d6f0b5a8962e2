// Package audio plays short synthesized cues for game events. The core
// never calls into it; the engine does, after the update settles.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and a mixer the one-shot cues are
// thrown into.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. A nil manager is a valid mute manager,
// so the engine never has to branch on whether sound is enabled.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// PlayEat plays a short high blip.
func (sm *SoundManager) PlayEat() {
	sm.play(880, time.Millisecond*90)
}

// PlayCrash plays a low falling buzz.
func (sm *SoundManager) PlayCrash() {
	sm.play(110, time.Millisecond*300)
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), newToneGenerator(sampleRate, freq, d)))
	speaker.Unlock()
}

// toneGenerator produces a sine wave with a linear fade-out envelope.
type toneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

func newToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *toneGenerator {
	return &toneGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.samples)
		if envelope < 0 {
			envelope = 0
		}

		v := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
