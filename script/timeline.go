// Package script sequences delayed one-shot narrative beats against a
// virtual monotonic clock. Beats never ride on wall-clock timers, so
// cancellation is synchronous and tests can fast-forward freely.
package script

import "sort"

type beat struct {
	at     float64
	action func()
	fired  bool
}

// Timeline is an ordered set of cancelable one-shot beats for a single
// cinematic. It only advances when the owning tick function drives it,
// so a beat can never fire concurrently with game-loop code.
type Timeline struct {
	now    float64
	active bool
	beats  []beat
}

// NewTimeline returns an inactive timeline
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Begin arms the timeline and resets its clock. Any beats left over from
// a previous cinematic are dropped first.
func (t *Timeline) Begin() {
	t.beats = t.beats[:0]
	t.now = 0
	t.active = true
}

// Active reports whether a cinematic currently owns this timeline
func (t *Timeline) Active() bool {
	return t.active
}

// Pending counts beats that have not fired yet
func (t *Timeline) Pending() int {
	n := 0
	for i := range t.beats {
		if !t.beats[i].fired {
			n++
		}
	}
	return n
}

// Schedule registers an action to fire delay seconds after Begin.
// Scheduling on an inactive timeline is a no-op; the cinematic that would
// have owned the beat is already gone.
func (t *Timeline) Schedule(delay float64, action func()) {
	if !t.active || action == nil {
		return
	}
	t.beats = append(t.beats, beat{at: t.now + delay, action: action})
	sort.SliceStable(t.beats, func(i, j int) bool {
		return t.beats[i].at < t.beats[j].at
	})
}

// Advance moves the clock forward and fires every due beat in order.
// The beat list is re-scanned after each action, so an action that cancels
// the timeline suppresses everything after it, and an action that schedules
// a new already-due beat still has it fire in this same call. Returns the
// number of beats fired.
func (t *Timeline) Advance(dt float64) int {
	if !t.active {
		return 0
	}
	t.now += dt

	fired := 0
	for t.active {
		// Beats stay sorted by time, so the first unfired due beat is the
		// earliest one
		idx := -1
		for i := range t.beats {
			if !t.beats[i].fired && t.beats[i].at <= t.now {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		t.beats[idx].fired = true
		t.beats[idx].action()
		fired++
	}
	return fired
}

// Cancel synchronously drops every outstanding beat, then clears the
// active flag. Nothing scheduled before the call can fire after it.
func (t *Timeline) Cancel() {
	t.beats = t.beats[:0]
	t.active = false
}
