// Package audio synthesizes and plays the mission's sound cues through
// the speaker. Cues are generated tones, not loaded assets; an
// uninitialized manager degrades to silence so headless runs need no
// audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// cueShape describes one synthesized cue
type cueShape struct {
	freq     float64
	sweep    float64 // Hz drift over the cue's length
	duration time.Duration
	volume   float64
}

var cueTable = map[string]cueShape{
	"alarm":             {freq: 880, sweep: -200, duration: 600 * time.Millisecond, volume: 0.25},
	"wave_horn":         {freq: 196, sweep: 40, duration: 900 * time.Millisecond, volume: 0.3},
	"wave_clear":        {freq: 523, sweep: 180, duration: 400 * time.Millisecond, volume: 0.25},
	"brood_roar":        {freq: 70, sweep: -25, duration: 1200 * time.Millisecond, volume: 0.35},
	"mech_cannon":       {freq: 110, sweep: -60, duration: 180 * time.Millisecond, volume: 0.2},
	"grenade":           {freq: 90, sweep: -50, duration: 350 * time.Millisecond, volume: 0.3},
	"melee":             {freq: 240, sweep: -120, duration: 120 * time.Millisecond, volume: 0.2},
	"flare":             {freq: 1200, sweep: -600, duration: 500 * time.Millisecond, volume: 0.2},
	"reload":            {freq: 320, sweep: 0, duration: 100 * time.Millisecond, volume: 0.15},
	"action_denied":     {freq: 140, sweep: 0, duration: 120 * time.Millisecond, volume: 0.15},
	"debris_hit":        {freq: 100, sweep: -40, duration: 200 * time.Millisecond, volume: 0.25},
	"pod_impact":        {freq: 60, sweep: -20, duration: 500 * time.Millisecond, volume: 0.35},
	"pickup":            {freq: 660, sweep: 220, duration: 250 * time.Millisecond, volume: 0.2},
	"resupply":          {freq: 440, sweep: 110, duration: 300 * time.Millisecond, volume: 0.2},
	"dropship_approach": {freq: 85, sweep: 30, duration: 2500 * time.Millisecond, volume: 0.3},
	"dropship_land":     {freq: 75, sweep: -30, duration: 1500 * time.Millisecond, volume: 0.3},
}

// loopTable holds the cues that run until stopped
var loopTable = map[string]cueShape{
	"collapse_rumble": {freq: 45, sweep: 15, volume: 0.2},
	"dropship_hover":  {freq: 95, sweep: 8, volume: 0.2},
}

// Manager synthesizes cues into a shared mixer. Implements world.Audio.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string]*beep.Ctrl
	master      float64
	initialized bool
}

// NewManager creates an unstarted audio manager with the given master
// volume in 0..1
func NewManager(master float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		loops:  make(map[string]*beep.Ctrl),
		master: master,
	}
}

// Initialize opens the speaker and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything. The speaker stays open; beep has no close.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	for _, ctrl := range m.loops {
		ctrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// PlayCue fires a named one-shot. Unknown names are dropped.
func (m *Manager) PlayCue(name string, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	shape, ok := cueTable[name]
	if !ok {
		return
	}
	gen := newToneGenerator(shape, m.master*volume)
	speaker.Lock()
	m.mixer.Add(beep.Take(sampleRate.N(shape.duration), gen))
	speaker.Unlock()
}

// LoopCue starts a named looping cue; restarting an active loop is a no-op
func (m *Manager) LoopCue(name string, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	if ctrl, ok := m.loops[name]; ok {
		speaker.Lock()
		ctrl.Paused = false
		speaker.Unlock()
		return
	}
	shape, ok := loopTable[name]
	if !ok {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newToneGenerator(shape, m.master*volume)}
	m.loops[name] = ctrl
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopCue pauses a looping cue; unknown names are no-ops
func (m *Manager) StopCue(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctrl, ok := m.loops[name]; ok {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	}
}

// toneGenerator streams an amplitude-enveloped sine with a slow
// frequency drift. Infinite; callers bound it with beep.Take or a Ctrl.
type toneGenerator struct {
	shape cueShape
	gain  float64
	pos   int
}

func newToneGenerator(shape cueShape, gain float64) *toneGenerator {
	return &toneGenerator{shape: shape, gain: gain}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	cycle := sampleRate.N(2 * time.Second)
	for i := range samples {
		cyclePos := float64(g.pos%cycle) / float64(cycle)
		freq := g.shape.freq + g.shape.sweep*cyclePos
		t := float64(g.pos) / float64(sampleRate)
		env := 0.7 + 0.3*math.Sin(cyclePos*2*math.Pi)
		v := g.shape.volume * g.gain * env * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }
