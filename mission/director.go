// Package mission drives the final mission sequence: a scripted escape,
// a timed tunnel run, the seven-wave holdout, the escape under collapse,
// and the extraction cinematic. The Director is the single orchestrator;
// it is ticked once per frame by the host loop and delegates all actual
// instantiation (visuals, audio, persistence) to the world interfaces.
package mission

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/daedron/hivefall/collapse"
	"github.com/daedron/hivefall/parameter"
	"github.com/daedron/hivefall/script"
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
	"github.com/daedron/hivefall/world"
)

// LevelName identifies this mission to the persistence layer
const LevelName = "hivefall"

// Deps wires the Director to its collaborators. Nil-able fields default
// to no-op implementations so a headless Director needs no frontend.
type Deps struct {
	Log        zerolog.Logger
	Rng        *rand.Rand
	Renderer   world.Renderer
	Msg        world.Messenger
	Audio      world.Audio
	Player     world.Player
	Recorder   world.Recorder
	Layout     Layout
	Difficulty wave.Difficulty
}

// Director owns all mission state for one attempt
type Director struct {
	log      zerolog.Logger
	rng      *rand.Rand
	renderer world.Renderer
	msg      world.Messenger
	audio    world.Audio
	player   world.Player
	recorder world.Recorder
	layout   Layout
	diff     wave.Difficulty

	phase    PhaseState
	wave     wave.State
	mech     wave.Mech
	collapse *collapse.Model
	cinema   *script.Timeline

	enemies     []*Enemy
	nextEnemyID uint64
	chaserTimer float64
	totalKills  int
	cooldowns   [actionCount]float64

	disposed bool
}

// NewDirector builds a mission at escape_start and runs its entry effects
func NewDirector(deps Deps) *Director {
	if deps.Rng == nil {
		deps.Rng = rand.New(rand.NewSource(1))
	}
	if deps.Renderer == nil {
		deps.Renderer = world.NopRenderer{}
	}
	if deps.Msg == nil {
		deps.Msg = world.NopMessenger{}
	}
	if deps.Audio == nil {
		deps.Audio = world.NopAudio{}
	}
	if deps.Player == nil {
		deps.Player = world.NewMemoryPlayer(100)
	}
	if deps.Recorder == nil {
		deps.Recorder = world.NopRecorder{}
	}

	d := &Director{
		log:      deps.Log,
		rng:      deps.Rng,
		renderer: deps.Renderer,
		msg:      deps.Msg,
		audio:    deps.Audio,
		player:   deps.Player,
		recorder: deps.Recorder,
		layout:   deps.Layout,
		diff:     deps.Difficulty,
		mech:     wave.NewMech(),
		cinema:   script.NewTimeline(),
	}
	d.phase.Phase = PhaseEscapeStart
	d.enterPhase(PhaseEscapeStart)
	return d
}

// Update advances the mission by dt seconds. All mutation happens here,
// on the caller's thread; nothing inside runs concurrently.
func (d *Director) Update(dt float64) {
	if d.disposed || dt <= 0 {
		return
	}
	d.phase.Elapsed += dt
	d.tickCooldowns(dt)

	switch d.phase.Phase {
	case PhaseEscapeStart:
		d.updateEscapeStart()
	case PhaseEscapeTunnel:
		d.updateEscapeTunnel(dt)
	case PhaseSurfaceRun:
		d.updateSurfaceRun(dt)
	case PhaseHoldout:
		d.updateHoldout(dt)
	case PhaseHiveCollapse:
		d.updateHiveCollapse(dt)
	case PhaseVictory:
		d.cinema.Advance(dt)
	case PhaseEpilogue:
		// Terminal; the host decides when to tear the level down
	}
}

// TransitionTo is the only way the active phase changes. It runs exit
// effects for the old phase, resets the phase timer, then runs entry
// effects exactly once. Transitioning to the already-active phase is a
// no-op so entry effects can assume single invocation.
func (d *Director) TransitionTo(p Phase) {
	if d.disposed || d.phase.Phase == p {
		return
	}
	from := d.phase.Phase
	d.exitPhase(from)
	d.phase.Phase = p
	d.phase.Elapsed = 0
	d.log.Info().
		Str("from", from.String()).
		Str("to", p.String()).
		Msg("phase transition")
	d.enterPhase(p)
}

// Dispose tears the mission down mid-flight: every outstanding beat is
// canceled synchronously and every phase-scoped entity is released.
// Safe to call at any tick and more than once.
func (d *Director) Dispose() {
	if d.disposed {
		return
	}
	d.cinema.Cancel()
	d.clearEnemies()
	d.dropCollapse()
	d.audio.StopCue("collapse_rumble")
	d.disposed = true
}

// === phase entry/exit effects ===

func (d *Director) enterPhase(p Phase) {
	switch p {
	case PhaseEscapeStart:
		d.msg.SetObjective("GET OUT", "The charges are set. Run.")
		d.msg.Deliver(world.Message{
			Sender: "Rook", Callsign: "HMR-2", Portrait: "rook",
			Text: "Charges armed! Whole hive's coming down, move!",
		})
		d.audio.PlayCue("alarm", 0.8)

	case PhaseEscapeTunnel:
		d.phase.EscapeCountdown = parameter.EscapeTunnelCountdown
		d.phase.EscapeProgress = 0
		d.phase.ChaseDistance = parameter.EscapeChaseStartDistance
		d.msg.SetObjective("ESCAPE THE TUNNEL", "Stay ahead of the collapse")
		d.audio.LoopCue("collapse_rumble", 0.5)

	case PhaseSurfaceRun:
		d.phase.ExtractionETA = parameter.SurfaceRunETA
		d.audio.StopCue("collapse_rumble")
		d.msg.SetObjective("REACH THE LANDING ZONE", "Dropship inbound")
		d.msg.Deliver(world.Message{
			Sender: "Dropship Actual", Callsign: "VULTURE-6", Portrait: "pilot",
			Text: "We see you on the surface. LZ is hot, dig in and hold.",
		})

	case PhaseHoldout:
		d.renderer.SetGroupVisible("holdout_barricades", true)
		d.msg.SetObjective("HOLD THE LINE", "Survive until extraction")
		d.player.SetInCombat(true)
		d.wave = wave.StartIntermission(d.wave, 1)

	case PhaseHiveCollapse:
		d.renderer.SetGroupVisible("holdout_barricades", false)
		d.clearEnemies()
		d.collapse = collapse.NewModel(d.layout.Beacon, d.layout.Pickups, d.layout.Walls, d.rng)
		d.phase.CollapseCountdown = d.collapse.Remaining
		d.chaserTimer = parameter.CollapseChaserInterval
		d.createCollapseVisuals()
		d.msg.SetObjective("RUN", "The hive is coming down. Reach the beacon.")
		d.msg.Deliver(world.Message{
			Sender: "Dropship Actual", Callsign: "VULTURE-6", Portrait: "pilot",
			Text: "That's the whole nest going up. Beacon is lit, RUN.",
		})
		d.audio.LoopCue("collapse_rumble", 0.9)

	case PhaseVictory:
		d.player.SetInCombat(false)
		d.audio.StopCue("collapse_rumble")
		d.msg.SetObjective("EXTRACTION", "Board the dropship")
		d.beginExtractionCinematic()

	case PhaseEpilogue:
		d.recorder.MarkLevelComplete(LevelName)
		d.recorder.RecordKills(d.totalKills)
		d.msg.Deliver(world.Message{
			Sender: "Rook", Callsign: "HMR-2", Portrait: "rook",
			Text: "Look at it burn. We actually made it.",
		})
	}
}

func (d *Director) exitPhase(p Phase) {
	// Every transition cancels outstanding beats; a phase never inherits
	// another phase's scheduled work
	d.cinema.Cancel()

	switch p {
	case PhaseHoldout:
		d.clearEnemies()
		d.player.SetInCombat(false)
	case PhaseHiveCollapse:
		d.clearEnemies()
		d.dropCollapse()
	}
}

// === per-phase updates ===

func (d *Director) updateEscapeStart() {
	if d.phase.Elapsed >= parameter.EscapeStartDuration {
		d.TransitionTo(PhaseEscapeTunnel)
	}
}

func (d *Director) updateEscapeTunnel(dt float64) {
	d.phase.EscapeCountdown -= dt
	d.phase.ChaseDistance -= parameter.EscapeChaseSpeed * dt

	dist := vmath.Dist(d.player.Position(), d.layout.TunnelExit)
	progress := 1 - dist/parameter.EscapeTunnelLength
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	d.phase.EscapeProgress = progress
	d.phase.DistanceToTarget = dist

	// Running out of time hurts and buys the collapse ground, but the
	// run itself continues
	if d.phase.EscapeCountdown <= 0 {
		d.player.ApplyDamage(parameter.EscapeTimeoutDamage)
		d.phase.ChaseDistance += parameter.EscapeChasePushback
		d.phase.EscapeCountdown = parameter.EscapeTimeoutGrace
		d.msg.Notify("The tunnel is coming down around you!", 3)
		d.log.Warn().Float64("chase", d.phase.ChaseDistance).Msg("tunnel timer expired")
	}

	if progress >= parameter.EscapeCompleteProgress {
		d.TransitionTo(PhaseSurfaceRun)
	}
}

func (d *Director) updateSurfaceRun(dt float64) {
	d.phase.ExtractionETA -= dt
	d.phase.DistanceToTarget = vmath.Dist(d.player.Position(), d.layout.Holdout.Objective)
	if d.phase.DistanceToTarget < parameter.SurfaceRunArrivalRadius {
		d.TransitionTo(PhaseHoldout)
	}
}

func (d *Director) updateHoldout(dt float64) {
	d.phase.ExtractionETA -= dt

	var res wave.TickResult
	d.wave, res = wave.Tick(d.wave, dt, d.diff, d.rng, d.phase.Elapsed)

	if res.Announced {
		d.announceWave()
	}
	if res.Started {
		d.mech = d.mech.ApplyWaveCap(d.wave.Current)
		d.log.Info().Int("wave", d.wave.Current).Int("remaining", d.wave.Remaining).Msg("wave active")
	}
	for _, c := range res.Spawns {
		d.spawnEnemy(c)
	}

	d.updateEnemies(dt, d.player.Position())
	if d.wave.Sub == wave.SubActive {
		d.updateMech(dt)
	}

	if res.Completed {
		d.audio.PlayCue("wave_clear", 0.7)
		d.msg.Notify(d.waveTitle(d.wave.Current)+" cleared", 2.5)
		d.purgeDeadEnemies()
	}
	if res.AllDone {
		d.TransitionTo(PhaseHiveCollapse)
		return
	}

	// Scripted cutoff: the final wave does not have to be cleared, the
	// hive starts coming down on schedule
	if d.wave.Current == wave.TotalWaves() && d.wave.Sub == wave.SubActive &&
		d.phase.Elapsed-d.wave.StartedAt >= parameter.FinalWaveTimeout {
		d.log.Info().Msg("final wave timeout, forcing collapse")
		d.TransitionTo(PhaseHiveCollapse)
	}
}

func (d *Director) updateHiveCollapse(dt float64) {
	playerPos := d.player.Position()
	rep := d.collapse.Tick(dt, playerPos, d.rng)
	d.phase.CollapseCountdown = d.collapse.Remaining
	d.applyCollapseReport(rep)

	d.updateChasers(dt, playerPos)

	d.phase.DistanceToTarget = vmath.Dist(playerPos, d.layout.Beacon)
	if d.phase.DistanceToTarget <= parameter.CollapseArrivalRadius {
		d.TransitionTo(PhaseVictory)
		return
	}

	// Timing exhaustion is a soft fail: grant grace, move the player
	// closer to the beacon, keep the phase running
	if d.collapse.Remaining <= 0 {
		d.collapse.Remaining += parameter.CollapseGrace
		d.phase.Recoveries++
		recovered := vmath.Lerp(playerPos, d.layout.Beacon, parameter.CollapseRecoverFraction)
		d.player.SetPosition(recovered)
		d.player.ApplyDamage(parameter.EscapeTimeoutDamage)
		d.msg.Notify("The floor gives way. Keep moving!", 3)
		d.log.Warn().Int("recoveries", d.phase.Recoveries).Msg("collapse timer expired, soft recovery")
	}
}

// === holdout helpers ===

func (d *Director) waveTitle(n int) string {
	if cfg, ok := wave.Lookup(n); ok {
		return cfg.Title
	}
	return "WAVE"
}

func (d *Director) announceWave() {
	cfg, ok := wave.Lookup(d.wave.Current)
	if !ok {
		return
	}
	d.msg.SetObjective(cfg.Title, cfg.Detail)
	d.audio.PlayCue("wave_horn", 0.8)
	if cfg.Cue != "" {
		d.msg.Deliver(world.Message{
			Sender: "Rook", Callsign: "HMR-2", Portrait: "rook", Text: cfg.Cue,
		})
	}
	if cfg.Resupply {
		d.player.Heal(parameter.PickupHealAmount)
		d.msg.Notify("Resupply crate down", 2.5)
		d.audio.PlayCue("resupply", 0.6)
	}
}

func (d *Director) spawnEnemy(c wave.Category) {
	pos, cursor := wave.ResolveSpawn(d.layout.Holdout, c, d.wave.Cursor, d.rng)
	d.wave.Cursor = cursor
	d.nextEnemyID++
	e := newEnemy(d.nextEnemyID, c, pos)
	d.enemies = append(d.enemies, e)
	d.renderer.CreateVisual(world.VisualEnemy, e.ID, e.Pos)
	if c == wave.CategoryBrood {
		d.audio.PlayCue("brood_roar", 1)
		d.msg.Notify("Broodmother sighted!", 2.5)
	}
}

// updateEnemies runs seek kinematics and contact damage for every active
// enemy in the list
func (d *Director) updateEnemies(dt float64, target vmath.Vec3) {
	for _, e := range d.enemies {
		if !e.Active {
			continue
		}
		stats := e.Category.Stats()
		dir := vmath.Normalize(vmath.Sub(target, e.Pos))
		e.Vel = vmath.Scale(dir, stats.Speed)
		e.Pos = vmath.Add(e.Pos, vmath.Scale(e.Vel, dt))
		d.renderer.MoveVisual(e.ID, e.Pos)

		if vmath.Dist(e.Pos, target) < 1.5 {
			d.player.ApplyDamage(stats.Damage * dt)
		}
	}
}

// updateMech decays the ally's integrity and fires support shots at the
// nearest enemy, scaled by what's left of the chassis
func (d *Director) updateMech(dt float64) {
	d.mech = d.mech.Decay(dt)
	d.mech.FireTimer -= dt
	if d.mech.FireTimer > 0 {
		return
	}
	target := nearestActive(d.enemies, d.layout.Holdout.Objective, parameter.MechFireRange)
	if target == nil {
		return
	}
	d.mech.FireTimer = parameter.MechFireInterval
	d.audio.PlayCue("mech_cannon", 0.5)
	d.damageEnemy(target, d.mech.Damage(parameter.MechBaseDamage))
}

// damageEnemy applies damage and, on death, deactivates the enemy and
// records the kill. The entry stays in the list so visual disposal can
// complete asynchronously; purge happens at wave and phase boundaries.
func (d *Director) damageEnemy(e *Enemy, amount float64) {
	if !e.Active {
		return
	}
	e.Health -= amount
	if e.Health > 0 {
		return
	}
	e.Active = false
	d.renderer.DisposeVisual(e.ID)
	d.player.AddKill()
	d.totalKills++
	// Chaser kills during the collapse run count toward the mission total
	// only; the wave tally belongs to the holdout
	if d.phase.Phase == PhaseHoldout {
		d.wave = wave.RecordKill(d.wave)
	}
}

func (d *Director) purgeDeadEnemies() {
	kept := d.enemies[:0]
	for _, e := range d.enemies {
		if e.Active {
			kept = append(kept, e)
		}
	}
	d.enemies = kept
}

func (d *Director) clearEnemies() {
	for _, e := range d.enemies {
		if e.Active {
			d.renderer.DisposeVisual(e.ID)
		}
	}
	d.enemies = nil
}

// === collapse helpers ===

func (d *Director) createCollapseVisuals() {
	d.renderer.CreateVisual(world.VisualBeacon, d.collapse.BeaconID, d.collapse.Beacon)
	for _, p := range d.collapse.Pickups {
		d.renderer.CreateVisual(world.VisualPickup, p.ID, p.Pos)
	}
	for _, w := range d.collapse.Walls {
		d.renderer.CreateVisual(world.VisualWall, w.ID, w.Pos)
	}
}

func (d *Director) applyCollapseReport(rep collapse.Report) {
	if rep.PlayerDamage > 0 {
		d.player.ApplyDamage(rep.PlayerDamage)
		d.audio.PlayCue("debris_hit", 0.7)
	}
	if rep.Healed > 0 {
		d.player.Heal(rep.Healed)
		d.audio.PlayCue("pickup", 0.6)
	}
	for i := 0; i < rep.Impacts; i++ {
		d.audio.PlayCue("pod_impact", 0.8)
	}
	for _, dd := range rep.NewDebris {
		d.renderer.CreateVisual(world.VisualDebris, dd.ID, dd.Pos)
	}
	for _, p := range rep.NewPods {
		d.renderer.CreateVisual(world.VisualPod, p.ID, p.Pos)
		d.renderer.CreateVisual(world.VisualShadow, p.ShadowID, vmath.Vec3{X: p.Pos.X, Z: p.Pos.Z})
	}
	for _, id := range rep.Removed {
		d.renderer.DisposeVisual(id)
	}
	for _, dd := range d.collapse.Debris {
		d.renderer.MoveVisual(dd.ID, dd.Pos)
	}
	for _, p := range d.collapse.Pods {
		d.renderer.MoveVisual(p.ID, p.Pos)
	}
}

// updateChasers keeps a trickle of enemies on the player's heels during
// the collapse run. Anything that falls far enough behind is lost to the
// collapse and dropped outright, no kill credit.
func (d *Director) updateChasers(dt float64, playerPos vmath.Vec3) {
	d.chaserTimer -= dt
	if d.chaserTimer <= 0 {
		d.chaserTimer = parameter.CollapseChaserInterval
		c := wave.CategoryDrone
		if d.rng.Float64() < 0.3 {
			c = wave.CategoryHusk
		}
		pos := vmath.Jitter(
			vmath.Vec3{X: playerPos.X - 20, Z: playerPos.Z},
			6, d.rng)
		d.nextEnemyID++
		e := newEnemy(d.nextEnemyID, c, pos)
		d.enemies = append(d.enemies, e)
		d.renderer.CreateVisual(world.VisualEnemy, e.ID, e.Pos)
	}

	d.updateEnemies(dt, playerPos)

	kept := d.enemies[:0]
	for _, e := range d.enemies {
		if e.Active && vmath.Dist(e.Pos, playerPos) > parameter.CollapseChaserLostDistance {
			d.renderer.DisposeVisual(e.ID)
			continue
		}
		kept = append(kept, e)
	}
	d.enemies = kept
}

func (d *Director) dropCollapse() {
	if d.collapse == nil {
		return
	}
	for _, id := range d.collapse.VisualIDs() {
		d.renderer.DisposeVisual(id)
	}
	d.collapse.Dispose()
	d.collapse = nil
}

// === victory cinematic ===

func (d *Director) beginExtractionCinematic() {
	d.cinema.Begin()
	d.cinema.Schedule(parameter.VictoryBeatApproach, func() {
		d.msg.Deliver(world.Message{
			Sender: "Dropship Actual", Callsign: "VULTURE-6", Portrait: "pilot",
			Text: "Visual on you. Coming in low.",
		})
		d.audio.PlayCue("dropship_approach", 0.9)
	})
	d.cinema.Schedule(parameter.VictoryBeatHover, func() {
		d.audio.LoopCue("dropship_hover", 0.7)
	})
	d.cinema.Schedule(parameter.VictoryBeatLanding, func() {
		d.audio.PlayCue("dropship_land", 0.9)
		d.msg.Notify("Dropship on the deck", 2)
	})
	d.cinema.Schedule(parameter.VictoryBeatBoarding, func() {
		d.recorder.MarkObjective("extraction_boarded")
		d.msg.Deliver(world.Message{
			Sender: "Rook", Callsign: "HMR-2", Portrait: "rook",
			Text: "Go go go, everybody on!",
		})
	})
	d.cinema.Schedule(parameter.VictoryBeatEpilogue, func() {
		d.audio.StopCue("dropship_hover")
		d.TransitionTo(PhaseEpilogue)
	})
}
