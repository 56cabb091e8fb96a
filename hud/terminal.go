// Package hud renders mission state to a terminal screen. It implements
// the renderer and messenger collaborator interfaces with a top-down
// character map centered on the player plus HUD text rows.
package hud

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/daedron/hivefall/mission"
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
	"github.com/daedron/hivefall/world"
)

// visual is one tracked world marker
type visual struct {
	kind world.VisualKind
	pos  vmath.Vec3
}

// notice is a timed HUD notification
type notice struct {
	text      string
	remaining float64
}

// Terminal is the tcell frontend. Implements world.Renderer and
// world.Messenger; all calls arrive on the game-loop goroutine.
type Terminal struct {
	screen tcell.Screen

	visuals map[uint64]visual

	objTitle  string
	objDetail string
	messages  []world.Message
	notices   []notice
}

// NewTerminal wraps an initialized tcell screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		visuals: make(map[uint64]visual),
	}
}

// === world.Renderer ===

func (t *Terminal) CreateVisual(kind world.VisualKind, id uint64, pos vmath.Vec3) {
	t.visuals[id] = visual{kind: kind, pos: pos}
}

func (t *Terminal) MoveVisual(id uint64, pos vmath.Vec3) {
	if v, ok := t.visuals[id]; ok {
		v.pos = pos
		t.visuals[id] = v
	}
}

func (t *Terminal) DisposeVisual(id uint64) {
	delete(t.visuals, id)
}

func (t *Terminal) SetGroupVisible(string, bool) {
	// Environment groups have no terminal representation
}

// === world.Messenger ===

func (t *Terminal) Deliver(msg world.Message) {
	t.messages = append(t.messages, msg)
	if len(t.messages) > 4 {
		t.messages = t.messages[len(t.messages)-4:]
	}
}

func (t *Terminal) Notify(text string, seconds float64) {
	t.notices = append(t.notices, notice{text: text, remaining: seconds})
}

func (t *Terminal) SetObjective(title, detail string) {
	t.objTitle = title
	t.objDetail = detail
}

// Tick expires timed notices
func (t *Terminal) Tick(dt float64) {
	kept := t.notices[:0]
	for _, n := range t.notices {
		n.remaining -= dt
		if n.remaining > 0 {
			kept = append(kept, n)
		}
	}
	t.notices = kept
}

var kindRunes = map[world.VisualKind]rune{
	world.VisualEnemy:  'x',
	world.VisualDebris: '.',
	world.VisualPod:    'O',
	world.VisualShadow: 'o',
	world.VisualPickup: '+',
	world.VisualWall:   '#',
	world.VisualBeacon: '^',
}

var kindStyles = map[world.VisualKind]tcell.Style{
	world.VisualEnemy:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	world.VisualDebris: tcell.StyleDefault.Foreground(tcell.ColorGray),
	world.VisualPod:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	world.VisualShadow: tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod),
	world.VisualPickup: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	world.VisualWall:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
	world.VisualBeacon: tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
}

// Draw renders one frame: map view centered on the player, then HUD rows
func (t *Terminal) Draw(d *mission.Director, player world.Player) {
	t.screen.Clear()
	w, h := t.screen.Size()
	mapTop, mapBottom := 3, h-6
	center := player.Position()

	// World markers, 1 cell per world unit, player at screen center
	for _, v := range t.visuals {
		x := w/2 + int(v.pos.X-center.X)
		y := (mapTop+mapBottom)/2 + int(v.pos.Z-center.Z)
		if x < 0 || x >= w || y < mapTop || y >= mapBottom {
			continue
		}
		t.screen.SetContent(x, y, kindRunes[v.kind], nil, kindStyles[v.kind])
	}
	t.screen.SetContent(w/2, (mapTop+mapBottom)/2, '@', nil,
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	// Top rows: objective and clocks
	t.print(0, 0, tcell.StyleDefault.Bold(true), t.objTitle)
	t.print(0, 1, tcell.StyleDefault, t.objDetail)
	status := fmt.Sprintf("%s  %s  HP %d", d.Phase(), d.HUDClock(), int(player.Health()))
	if d.Phase() == mission.PhaseHoldout && d.WaveNumber() > 0 {
		status += fmt.Sprintf("  W%d/%d [%s] left %d  mech %d%%",
			d.WaveNumber(), wave.TotalWaves(), d.WaveSub(), d.EnemiesRemaining(), int(d.MechIntegrity()))
	}
	t.print(0, 2, tcell.StyleDefault.Foreground(tcell.ColorYellow), status)

	// Bottom rows: messages then notices
	row := h - 5
	for _, m := range t.messages {
		t.print(0, row, tcell.StyleDefault.Foreground(tcell.ColorAqua),
			fmt.Sprintf("[%s] %s: %s", m.Callsign, m.Sender, m.Text))
		row++
	}
	for _, n := range t.notices {
		t.print(0, row, tcell.StyleDefault.Foreground(tcell.ColorOrange), n.text)
		row++
	}

	t.screen.Show()
}

func (t *Terminal) print(x, y int, style tcell.Style, text string) {
	w, _ := t.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
