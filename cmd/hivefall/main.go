// Command hivefall runs the final mission in a terminal.
//
// Movement: hjkl or arrow keys. Actions: g grenade, m melee, f flare,
// r reload. q or Esc quits.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/daedron/hivefall/audio"
	"github.com/daedron/hivefall/hud"
	"github.com/daedron/hivefall/mission"
	"github.com/daedron/hivefall/persist"
	"github.com/daedron/hivefall/vmath"
	"github.com/daedron/hivefall/wave"
	"github.com/daedron/hivefall/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hivefall:", err)
		os.Exit(1)
	}
}

func loadSettings() {
	viper.SetConfigName("hivefall")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/hivefall")
	viper.SetDefault("difficulty", "normal")
	viper.SetDefault("volume", 0.8)
	viper.SetDefault("tickrate", 30)
	viper.SetDefault("logfile", "hivefall.log")

	// A missing config file just means defaults
	_ = viper.ReadInConfig()
}

func openLogger() (zerolog.Logger, func()) {
	f, err := os.OpenFile(viper.GetString("logfile"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }
}

func run() error {
	loadSettings()
	logger, closeLog := openLogger()
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sound := audio.NewManager(viper.GetFloat64("volume"))
	if err := sound.Initialize(); err != nil {
		// No audio device is not fatal; the manager stays silent
		logger.Warn().Err(err).Msg("audio unavailable")
	}
	defer sound.Cleanup()

	var recorder world.Recorder = world.NopRecorder{}
	if manager, err := gdata.Open(gdata.Config{AppName: "hivefall"}); err == nil {
		recorder = persist.Open(manager)
	} else {
		logger.Warn().Err(err).Msg("save data unavailable")
	}

	layout := mission.DefaultLayout()
	player := world.NewMemoryPlayer(100)
	player.SetPosition(layout.TunnelEntry)

	term := hud.NewTerminal(screen)
	director := mission.NewDirector(mission.Deps{
		Log:        logger,
		Rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Renderer:   term,
		Msg:        term,
		Audio:      sound,
		Player:     player,
		Recorder:   recorder,
		Layout:     layout,
		Difficulty: wave.ParseDifficulty(viper.GetString("difficulty")),
	})
	defer director.Dispose()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tickInterval := time.Second / time.Duration(viper.GetInt("tickrate"))
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := handleEvent(ev, screen, director, player); quit {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			director.Update(dt)
			term.Tick(dt)
			term.Draw(director, player)
			if director.Phase() == mission.PhaseEpilogue &&
				director.State().Elapsed > 6 {
				return nil
			}
		}
	}
}

func handleEvent(ev tcell.Event, screen tcell.Screen, d *mission.Director, p *world.MemoryPlayer) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		const step = 2.0
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
			movePlayer(p, vmath.Vec3{X: -step})
		case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
			movePlayer(p, vmath.Vec3{X: step})
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
			movePlayer(p, vmath.Vec3{Z: -step})
		case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
			movePlayer(p, vmath.Vec3{Z: step})
		case ev.Rune() == 'g':
			d.HandleAction(mission.ActionGrenade)
		case ev.Rune() == 'm':
			d.HandleAction(mission.ActionMelee)
		case ev.Rune() == 'f':
			d.HandleAction(mission.ActionFlare)
		case ev.Rune() == 'r':
			d.HandleAction(mission.ActionReload)
		}
	}
	return false
}

func movePlayer(p *world.MemoryPlayer, delta vmath.Vec3) {
	p.SetPosition(vmath.Add(p.Position(), delta))
}
