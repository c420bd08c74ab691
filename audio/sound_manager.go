package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies a short engine sound effect
type Cue int

const (
	CueStateSwitch Cue = iota // State transition blip
	CueKey                    // Key typed
	CueError                  // Invalid input buzz
	CueFocus                  // Focus regained chirp
)

// SoundManager owns the speaker and mixer for engine sound cues
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; Initialize must run before Play
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
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

// Cleanup silences the mixer. beep exposes no speaker Close; clearing the
// mixer is enough to stop output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// Play queues a cue on the mixer. No-op before Initialize
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueStateSwitch:
		s = NewTone(660, 90*time.Millisecond, WaveSine, sampleRate)
	case CueKey:
		s = NewTone(880, 35*time.Millisecond, WaveSine, sampleRate)
	case CueError:
		s = NewTone(110, 150*time.Millisecond, WaveSquare, sampleRate)
	case CueFocus:
		s = NewTone(520, 60*time.Millisecond, WaveSine, sampleRate)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
