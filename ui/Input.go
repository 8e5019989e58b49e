package ui

import "github.com/gdamore/tcell"

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionPause
	ActionQuit
	ActionRestart
)

// 按鍵名稱 (tcell EventKey.Name) 對應的動作
var keyActions = map[string]Action{
	"Up":      ActionUp,
	"Down":    ActionDown,
	"Rune[w]": ActionUp,
	"Rune[s]": ActionDown,
	"Rune[p]": ActionPause,
	"Rune[r]": ActionRestart,
	"Rune[q]": ActionQuit,
	"Esc":     ActionQuit,
	"Ctrl-C":  ActionQuit,
	"Ctrl+C":  ActionQuit,
}

func ActionOf(ev *tcell.EventKey) Action {
	return keyActions[ev.Name()]
}

// PollEvents pumps screen events into a channel from its own goroutine.
// Events are dropped while the buffer is full, so the pump keeps draining
// the screen until it is finalized. The channel is closed then.
func PollEvents(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)

	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}
	}()

	return events
}
