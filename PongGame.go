package main

import (
	"PongSolo/config"
	"PongSolo/core"
	"PongSolo/logger"
	"PongSolo/ui"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

type pongGame struct {
	screen tcell.Screen
	game   *core.Game
	view   *ui.View
	sound  *ui.Sound
	paused bool
}

func newPongGame(screen tcell.Screen, settings config.Settings, sound *ui.Sound) *pongGame {
	game := core.NewGame(settings)
	view := ui.NewView(screen, settings)
	view.BindScores(game.Properties())

	p := &pongGame{
		screen: screen,
		game:   game,
		view:   view,
		sound:  sound,
	}
	p.announceMatch()
	return p
}

func (p *pongGame) announceMatch() {
	id := p.game.Match().ID
	logger.Log.SetMatch(id)
	logger.Log.Info(fmt.Sprintf(logger.MatchStartMsg, id))
}

// handleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (p *pongGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		logger.Log.Debug(fmt.Sprintf(logger.ResizeMsg, w, h))
		p.screen.Sync()
		p.draw()

	case *tcell.EventKey:
		switch ui.ActionOf(ev) {
		case ui.ActionUp:
			if !p.paused {
				p.game.Push(core.CommandUp)
			}
		case ui.ActionDown:
			if !p.paused {
				p.game.Push(core.CommandDown)
			}
		case ui.ActionPause:
			p.togglePause()
		case ui.ActionRestart:
			if p.game.Match().Over {
				p.game.Restart()
				p.announceMatch()
				p.draw()
			}
		case ui.ActionQuit:
			return false
		}
	}
	return true
}

func (p *pongGame) togglePause() {
	if p.game.Match().Over {
		return
	}
	p.paused = !p.paused
	frame := p.game.Snapshot().Frame
	if p.paused {
		logger.Log.Info(fmt.Sprintf(logger.PauseMsg, frame))
	} else {
		logger.Log.Info(fmt.Sprintf(logger.ResumeMsg, frame))
	}
	p.draw()
}

// tick simulates one frame, reports what happened and redraws.
func (p *pongGame) tick() {
	if !p.paused {
		p.game.Update()
		for _, ev := range p.game.DrainEvents() {
			p.report(ev)
		}
	}
	p.draw()
}

func (p *pongGame) report(ev core.Event) {
	p.sound.Play(ev)

	snap := p.game.Snapshot()
	switch ev.Kind {
	case core.EventGoal:
		logger.Log.Info(fmt.Sprintf(logger.GoalMsg, sideName(ev.Side), snap.Score1, snap.Score2))
	case core.EventPaddleHit:
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, ev.Frame))
	case core.EventWallBounce:
		logger.Log.Debug(fmt.Sprintf(logger.WallBounceMsg, ev.Frame))
	case core.EventMatchOver:
		logger.Log.Info(fmt.Sprintf(logger.MatchOverMsg, sideName(ev.Side), snap.Score1, snap.Score2))
	}
}

func (p *pongGame) draw() {
	p.view.Draw(p.game.Snapshot(), p.paused)
}

// run is the frame loop: terminal events and frame ticks are handled on
// this goroutine only.
func (p *pongGame) run(events <-chan tcell.Event, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !p.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *pongGame) close() {
	p.game.Close()
}

func sideName(side int) string {
	if side == core.SidePlayer {
		return "Player"
	}
	return "Opponent"
}

func start(settings config.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	sound, err := ui.NewSound(settings.Sound)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.SoundInitFailedMsg, err))
	}
	defer sound.Close()

	p := newPongGame(screen, settings, sound)
	defer p.close()

	p.run(ui.PollEvents(screen), settings.FrameInterval())

	snap := p.game.Snapshot()
	logger.Log.Info(fmt.Sprintf(logger.GameQuitMsg, snap.Score1, snap.Score2))
	return nil
}
