// Package world defines the narrow collaborator interfaces the mission
// orchestration core drives. Implementations own rendering, audio output,
// and persistence; the core only issues calls and never takes ownership.
package world

import (
	"github.com/daedron/hivefall/vmath"
)

// VisualKind tags what a visual handle represents, so a frontend can pick
// its own representation per kind
type VisualKind uint8

const (
	VisualEnemy VisualKind = iota
	VisualDebris
	VisualPod
	VisualShadow
	VisualPickup
	VisualWall
	VisualBeacon
)

// Renderer creates and moves visual representations for orchestrated
// entities. Dispose must be safe to call for an already-disposed ID.
type Renderer interface {
	CreateVisual(kind VisualKind, id uint64, pos vmath.Vec3)
	MoveVisual(id uint64, pos vmath.Vec3)
	DisposeVisual(id uint64)
	SetGroupVisible(group string, visible bool)
}

// Message is a structured narrative delivery for display
type Message struct {
	Sender   string
	Callsign string
	Portrait string
	Text     string
}

// Messenger delivers narrative content and objective text to the HUD
type Messenger interface {
	Deliver(msg Message)
	Notify(text string, seconds float64)
	SetObjective(title, detail string)
}

// Audio plays named cues; calls are fire-and-forget
type Audio interface {
	PlayCue(name string, volume float64)
	LoopCue(name string, volume float64)
	StopCue(name string)
}

// Player is the sink for player-facing state changes and the source of
// the player's position for distance checks
type Player interface {
	ApplyDamage(amount float64)
	Heal(amount float64)
	Health() float64
	AddKill()
	SetInCombat(in bool)
	Position() vmath.Vec3
	SetPosition(pos vmath.Vec3)
}

// Recorder persists mission completion and kill tallies
type Recorder interface {
	MarkLevelComplete(level string)
	MarkObjective(id string)
	RecordKills(total int)
}
