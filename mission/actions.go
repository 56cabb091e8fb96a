package mission

import (
	"fmt"

	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
)

// Action is a player combat request routed through the orchestrator
type Action uint8

const (
	ActionGrenade Action = iota
	ActionMelee
	ActionFlare
	ActionReload
	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionGrenade:
		return "grenade"
	case ActionMelee:
		return "melee"
	case ActionFlare:
		return "flare"
	case ActionReload:
		return "reload"
	}
	return "unknown"
}

func actionCooldown(a Action) float64 {
	switch a {
	case ActionGrenade:
		return parameter.GrenadeCooldown
	case ActionMelee:
		return parameter.MeleeCooldown
	case ActionFlare:
		return parameter.FlareCooldown
	case ActionReload:
		return parameter.ReloadCooldown
	}
	return 0
}

func (d *Director) tickCooldowns(dt float64) {
	for i := range d.cooldowns {
		if d.cooldowns[i] > 0 {
			d.cooldowns[i] -= dt
		}
	}
}

// HandleAction services a player request. Requests on cooldown or with an
// unknown ID are dropped silently; the mission never errors outward.
func (d *Director) HandleAction(a Action) {
	if d.disposed || a >= actionCount {
		return
	}
	if d.cooldowns[a] > 0 {
		d.audio.PlayCue("action_denied", 0.3)
		return
	}
	d.cooldowns[a] = actionCooldown(a)

	switch a {
	case ActionGrenade:
		d.throwGrenade()
	case ActionMelee:
		d.meleeSwing()
	case ActionFlare:
		d.fireFlare()
	case ActionReload:
		d.audio.PlayCue("reload", 0.5)
	}
}

func (d *Director) throwGrenade() {
	d.audio.PlayCue("grenade", 0.9)
	pos := d.player.Position()
	// Collect first: damageEnemy mutates kill counters and may complete
	// the wave, but it never touches the slice itself
	var hit []*Enemy
	for _, e := range d.enemies {
		if e.Active && vmath.Dist(e.Pos, pos) <= parameter.GrenadeRadius {
			hit = append(hit, e)
		}
	}
	for _, e := range hit {
		d.damageEnemy(e, parameter.GrenadeDamage)
	}
}

func (d *Director) meleeSwing() {
	d.audio.PlayCue("melee", 0.6)
	if e := nearestActive(d.enemies, d.player.Position(), parameter.MeleeRange); e != nil {
		d.damageEnemy(e, parameter.MeleeDamage)
	}
}

func (d *Director) fireFlare() {
	d.audio.PlayCue("flare", 0.7)
	switch d.phase.Phase {
	case PhaseHiveCollapse:
		d.msg.Notify(fmt.Sprintf("Beacon %dm out", int(d.phase.DistanceToTarget)), 2.5)
	case PhaseHoldout:
		if d.wave.Current > 0 && d.wave.Sub == wave.SubActive {
			d.msg.Notify("Flare up, marking our position", 2.5)
		}
	default:
		d.msg.Notify("Flare up", 2)
	}
}
