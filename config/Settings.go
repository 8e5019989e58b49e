package config

import (
	"fmt"
	"time"
)

// Settings is the resolved game configuration.
type Settings struct {
	Env     string
	Title   string
	Version string

	Width  int
	Height int

	BallSpeed   int
	PlayerSpeed int

	// TPS is the number of frames simulated per second.
	TPS int

	// FinalScore ends the match when either side reaches it. 0 never ends.
	FinalScore int

	// Seed for the ball direction coin, 0 seeds from the clock.
	Seed int64

	Sound bool
}

func Default() Settings {
	return Settings{
		Env:         DefaultEnv,
		Title:       "Pong",
		Version:     "0.0.1",
		Width:       1280,
		Height:      720,
		BallSpeed:   5,
		PlayerSpeed: 10,
		TPS:         60,
		FinalScore:  0,
		Seed:        0,
		Sound:       true,
	}
}

func (s Settings) BallSize() int {
	return s.Height / 25
}

func (s Settings) PaddleWidth() int {
	return s.Width / 40
}

func (s Settings) PaddleHeight() int {
	return s.Height / 5
}

// FrameInterval is the wall clock time between two frames.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.TPS)
}

func (s Settings) Validate() error {
	switch {
	case s.Width < 80 || s.Height < 50:
		return fmt.Errorf("playfield %dx%d is too small", s.Width, s.Height)
	case s.BallSpeed <= 0:
		return fmt.Errorf("ball speed must be positive, got %d", s.BallSpeed)
	case s.PlayerSpeed <= 0:
		return fmt.Errorf("player speed must be positive, got %d", s.PlayerSpeed)
	case s.TPS <= 0 || s.TPS > 1000:
		return fmt.Errorf("tps must be in 1..1000, got %d", s.TPS)
	case s.FinalScore < 0:
		return fmt.Errorf("final score cannot be negative, got %d", s.FinalScore)
	}
	return nil
}
