// Package sound plays short synthesized cues for line clears and top-outs.
package sound

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue is a sound event.
type Cue int

const (
	CueLines Cue = iota
	CueTetris
	CueTopOut
	CueHighscore
)

func (c Cue) String() string {
	switch c {
	case CueLines:
		return "lines"
	case CueTetris:
		return "tetris"
	case CueTopOut:
		return "topout"
	case CueHighscore:
		return "highscore"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays cues.
type Player interface {
	Play(cue Cue)
}

// Manager mixes cues onto the speaker. Until Initialize succeeds every call is a no-op,
// so the game runs the same without an audio device.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	log.Println("[SOUND] Speaker ready")
	return nil
}

// closeSpeaker releases the audio device.
var closeSpeaker = speaker.Close

// Cleanup silences everything that is still playing and closes the speaker.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	closeSpeaker()
	m.initialized = false
}

func (m *Manager) Play(cue Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	streamer := Streamer(cue)
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Streamer returns a finite streamer for cue.
func Streamer(cue Cue) beep.Streamer {
	switch cue {
	case CueTetris:
		return beep.Seq(
			beep.Take(sampleRate.N(80*time.Millisecond), NewToneGenerator(sampleRate, 523.25)),
			beep.Take(sampleRate.N(80*time.Millisecond), NewToneGenerator(sampleRate, 659.25)),
			beep.Take(sampleRate.N(160*time.Millisecond), NewToneGenerator(sampleRate, 783.99)),
		)
	case CueTopOut:
		return beep.Take(sampleRate.N(600*time.Millisecond), NewSweepGenerator(sampleRate, 440, 110, 600*time.Millisecond))
	case CueHighscore:
		return beep.Seq(
			beep.Take(sampleRate.N(100*time.Millisecond), NewToneGenerator(sampleRate, 783.99)),
			beep.Take(sampleRate.N(200*time.Millisecond), NewToneGenerator(sampleRate, 1046.5)),
		)
	default:
		return beep.Take(sampleRate.N(90*time.Millisecond), NewToneGenerator(sampleRate, 659.25))
	}
}
