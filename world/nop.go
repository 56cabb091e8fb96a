package world

import "github.com/daedron/hivefall/vmath"

// NopRenderer discards all visual calls
type NopRenderer struct{}

func (NopRenderer) CreateVisual(VisualKind, uint64, vmath.Vec3) {}
func (NopRenderer) MoveVisual(uint64, vmath.Vec3)               {}
func (NopRenderer) DisposeVisual(uint64)                        {}
func (NopRenderer) SetGroupVisible(string, bool)                {}

// NopMessenger discards all narrative deliveries
type NopMessenger struct{}

func (NopMessenger) Deliver(Message)             {}
func (NopMessenger) Notify(string, float64)      {}
func (NopMessenger) SetObjective(string, string) {}

// NopAudio discards all cue requests
type NopAudio struct{}

func (NopAudio) PlayCue(string, float64) {}
func (NopAudio) LoopCue(string, float64) {}
func (NopAudio) StopCue(string)          {}

// NopRecorder discards all persistence calls
type NopRecorder struct{}

func (NopRecorder) MarkLevelComplete(string) {}
func (NopRecorder) MarkObjective(string)     {}
func (NopRecorder) RecordKills(int)          {}

// MemoryPlayer is a plain in-memory Player, usable directly by frontends
// and tests
type MemoryPlayer struct {
	Pos      vmath.Vec3
	HP       float64
	MaxHP    float64
	Kills    int
	InCombat bool
}

// NewMemoryPlayer returns a player at the origin with the given health pool
func NewMemoryPlayer(maxHP float64) *MemoryPlayer {
	return &MemoryPlayer{HP: maxHP, MaxHP: maxHP}
}

func (p *MemoryPlayer) ApplyDamage(amount float64) {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

func (p *MemoryPlayer) Heal(amount float64) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

func (p *MemoryPlayer) Health() float64 { return p.HP }

func (p *MemoryPlayer) AddKill() { p.Kills++ }

func (p *MemoryPlayer) SetInCombat(in bool) { p.InCombat = in }

func (p *MemoryPlayer) Position() vmath.Vec3 { return p.Pos }

func (p *MemoryPlayer) SetPosition(pos vmath.Vec3) { p.Pos = pos }
