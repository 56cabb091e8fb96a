// Package collapse simulates the hive's structural failure during the
// second escape: falling debris, seedpod hazards, crumbling walls, and
// the pickups and beacon along the route. All entities here are
// phase-scoped; Dispose drops everything when the phase ends.
package collapse

import (
	"math/rand"

	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/vmath"
)

// Report is everything one Tick decided; the caller applies the side
// effects (player damage, visuals, audio) itself.
type Report struct {
	PlayerDamage float64
	Healed       float64
	Impacts      int

	NewDebris []Debris
	NewPods   []Pod

	// Removed lists visual IDs whose entities expired this tick
	Removed []uint64
}

// Model owns the collapse simulation for one hive-collapse phase
type Model struct {
	Total     float64
	Remaining float64

	Debris  []Debris
	Pods    []Pod
	Pickups []Pickup
	Walls   []Wall

	Beacon   vmath.Vec3
	BeaconID uint64

	debrisTimer float64
	podTimer    float64
	nextID      uint64
}

// NewModel builds a collapse phase: countdown, beacon, route pickups,
// and the crumbling wall line with randomized stagger values.
func NewModel(beacon vmath.Vec3, pickups []vmath.Vec3, walls []vmath.Vec3, rng *rand.Rand) *Model {
	m := &Model{
		Total:       parameter.CollapseCountdown,
		Remaining:   parameter.CollapseCountdown,
		Beacon:      beacon,
		debrisTimer: parameter.DebrisBaseCadence,
		podTimer:    parameter.PodBaseCadence,
	}
	m.BeaconID = m.allocID()
	for _, p := range pickups {
		m.Pickups = append(m.Pickups, Pickup{
			ID:   m.allocID(),
			Pos:  p,
			Heal: parameter.PickupHealAmount,
		})
	}
	for _, p := range walls {
		m.Walls = append(m.Walls, Wall{
			ID:      m.allocID(),
			Pos:     p,
			Height:  6 + rng.Float64()*4,
			Stagger: rng.Float64(),
		})
	}
	return m
}

func (m *Model) allocID() uint64 {
	m.nextID++
	return m.nextID
}

// Intensity is the 0..1 collapse progression scalar
func (m *Model) Intensity() float64 {
	if m.Total <= 0 {
		return 1
	}
	i := 1 - m.Remaining/m.Total
	if i < 0 {
		return 0
	}
	if i > 1 {
		return 1
	}
	return i
}

// debrisCadence shrinks linearly with intensity
func debrisCadence(intensity float64) float64 {
	return parameter.DebrisBaseCadence -
		(parameter.DebrisBaseCadence-parameter.DebrisMinCadence)*intensity
}

// podCadence shrinks multiplicatively with intensity
func podCadence(intensity float64) float64 {
	return parameter.PodBaseCadence * (1 - parameter.PodCadenceShrink*intensity)
}

// Tick advances the collapse by dt seconds around the player position.
// Remaining keeps counting down past zero; timing-exhaustion recovery is
// the phase machine's call, the model just keeps simulating.
func (m *Model) Tick(dt float64, player vmath.Vec3, rng *rand.Rand) Report {
	var rep Report
	m.Remaining -= dt
	intensity := m.Intensity()

	m.spawnDebris(dt, intensity, player, rng, &rep)
	m.spawnPods(dt, intensity, player, rng, &rep)
	m.updateDebris(dt, player, &rep)
	m.updatePods(dt, player, &rep)
	m.updateWalls(dt, intensity)
	m.collectPickups(player, &rep)

	return rep
}

func (m *Model) spawnDebris(dt, intensity float64, player vmath.Vec3, rng *rand.Rand, rep *Report) {
	m.debrisTimer -= dt
	if m.debrisTimer > 0 {
		return
	}
	m.debrisTimer = debrisCadence(intensity)

	count := 1
	if intensity > 0.5 {
		count += parameter.DebrisExtraAtHalf
	}
	if intensity > 0.8 {
		count += parameter.DebrisExtraAtSurge
	}
	for i := 0; i < count; i++ {
		d := Debris{
			ID: m.allocID(),
			Pos: vmath.Jitter(
				vmath.Vec3{X: player.X, Y: player.Y + parameter.DebrisSpawnHeight, Z: player.Z},
				parameter.DebrisSpawnSpread, rng),
			Vel:      vmath.Vec3{Y: -parameter.DebrisFallSpeed},
			Spin:     (rng.Float64()*2 - 1) * 4,
			Lifetime: parameter.DebrisLifetime,
		}
		m.Debris = append(m.Debris, d)
		rep.NewDebris = append(rep.NewDebris, d)
	}
}

func (m *Model) spawnPods(dt, intensity float64, player vmath.Vec3, rng *rand.Rand, rep *Report) {
	m.podTimer -= dt
	if m.podTimer > 0 {
		return
	}
	m.podTimer = podCadence(intensity)

	count := 1
	if intensity > parameter.PodExtraThreshold && rng.Float64() < parameter.PodExtraChance {
		count++
	}
	for i := 0; i < count; i++ {
		p := Pod{
			ID:       m.allocID(),
			ShadowID: m.allocID(),
			Pos: vmath.Jitter(
				vmath.Vec3{X: player.X, Y: parameter.PodSpawnHeight, Z: player.Z},
				parameter.PodSpawnSpread, rng),
			Vel: vmath.Vec3{Y: -parameter.PodFallSpeed},
		}
		m.Pods = append(m.Pods, p)
		rep.NewPods = append(rep.NewPods, p)
	}
}

func (m *Model) updateDebris(dt float64, player vmath.Vec3, rep *Report) {
	kept := m.Debris[:0]
	for _, d := range m.Debris {
		d.Lifetime -= dt
		d.Vel.Y -= parameter.HazardGravity * dt
		d.Pos = vmath.Add(d.Pos, vmath.Scale(d.Vel, dt))

		landed := d.Pos.Y <= 0
		if landed && vmath.Dist(d.Pos, player) <= parameter.DebrisHitRadius {
			rep.PlayerDamage += parameter.DebrisDamage
		}
		if landed || d.Lifetime <= 0 {
			rep.Removed = append(rep.Removed, d.ID)
			continue
		}
		kept = append(kept, d)
	}
	m.Debris = kept
}

func (m *Model) updatePods(dt float64, player vmath.Vec3, rep *Report) {
	kept := m.Pods[:0]
	for _, p := range m.Pods {
		if !p.Impacted {
			p.Vel.Y -= parameter.HazardGravity * dt
			p.Pos = vmath.Add(p.Pos, vmath.Scale(p.Vel, dt))
			if p.Pos.Y <= 0 {
				p.Pos.Y = 0
				p.Impacted = true
				p.Vel = vmath.Vec3{}
				p.Fade = parameter.PodFadeDuration
				rep.Impacts++
				// Damage on the impact tick only, never again while fading
				if !p.HitDealt && vmath.Dist(p.Pos, player) <= parameter.PodDirectHitRadius {
					rep.PlayerDamage += parameter.PodDirectHitDamage
					p.HitDealt = true
				}
			}
		} else {
			p.Fade -= dt
			if p.Fade <= 0 {
				rep.Removed = append(rep.Removed, p.ID, p.ShadowID)
				continue
			}
		}
		kept = append(kept, p)
	}
	m.Pods = kept
}

// updateWalls advances each wall that has crossed its individual
// activation threshold. A fully fallen wall stays at progress 1.
func (m *Model) updateWalls(dt, intensity float64) {
	for i := range m.Walls {
		w := &m.Walls[i]
		if w.Progress >= 1 {
			continue
		}
		threshold := parameter.WallActivationBase + w.Stagger*parameter.WallActivationSpan
		if intensity < threshold {
			continue
		}
		w.Progress += dt / parameter.WallFallDuration
		if w.Progress > 1 {
			w.Progress = 1
		}
	}
}

func (m *Model) collectPickups(player vmath.Vec3, rep *Report) {
	for i := range m.Pickups {
		p := &m.Pickups[i]
		if p.Collected {
			continue
		}
		if vmath.Dist(p.Pos, player) <= parameter.PickupRadius {
			p.Collected = true
			rep.Healed += p.Heal
			rep.Removed = append(rep.Removed, p.ID)
		}
	}
}

// VisualIDs lists every live visual the model owns, beacon included.
// Used on phase exit to dispose the whole set.
func (m *Model) VisualIDs() []uint64 {
	ids := []uint64{m.BeaconID}
	for _, d := range m.Debris {
		ids = append(ids, d.ID)
	}
	for _, p := range m.Pods {
		ids = append(ids, p.ID, p.ShadowID)
	}
	for _, p := range m.Pickups {
		if !p.Collected {
			ids = append(ids, p.ID)
		}
	}
	for _, w := range m.Walls {
		ids = append(ids, w.ID)
	}
	return ids
}

// Dispose clears every phase-scoped entity list
func (m *Model) Dispose() {
	m.Debris = nil
	m.Pods = nil
	m.Pickups = nil
	m.Walls = nil
}
