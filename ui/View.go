package ui

import (
	"PongSolo/config"
	"PongSolo/core"
	"fmt"
	"math"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590    // 中線

var (
	defaultStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	netStyle     = defaultStyle.Foreground(tcell.ColorGray)
	statusStyle  = defaultStyle.Reverse(true)
	bannerStyle  = defaultStyle.Foreground(tcell.ColorYellow).Bold(true)
)

// Text is a label placed in playfield coordinates whose content follows a
// bound property.
type Text struct {
	X, Y  float64
	value string
}

func NewText(x, y float64) *Text {
	return &Text{X: x, Y: y}
}

func (t *Text) Bind(p *core.IntProperty) {
	t.value = p.String()
	p.AddListener(func(_, _ int) {
		t.value = p.String()
	})
}

func (t *Text) Value() string {
	return t.value
}

// View draws the playfield scaled onto the terminal. The last row is the
// status line.
type View struct {
	screen   tcell.Screen
	settings config.Settings

	Score1 *Text
	Score2 *Text
}

func NewView(screen tcell.Screen, settings config.Settings) *View {
	screen.SetStyle(defaultStyle)
	return &View{
		screen:   screen,
		settings: settings,
		Score1:   NewText(10, 50),
		Score2:   NewText(float64(settings.Width-30), 50),
	}
}

func (v *View) BindScores(props *core.Properties) {
	v.Score1.Bind(props.IntProperty(core.Score1))
	v.Score2.Bind(props.IntProperty(core.Score2))
}

// fieldSize is the terminal area the playfield maps onto.
func (v *View) fieldSize() (int, int) {
	cols, rows := v.screen.Size()
	return cols, rows - 1
}

// Cell converts a playfield point to a terminal cell.
func (v *View) Cell(x, y float64) (int, int) {
	cols, rows := v.fieldSize()
	col := int(x * float64(cols) / float64(v.settings.Width))
	row := int(y * float64(rows) / float64(v.settings.Height))
	return col, row
}

func (v *View) Draw(snap core.Snapshot, paused bool) {
	v.screen.Clear()
	cols, rows := v.fieldSize()
	if cols <= 0 || rows <= 0 {
		v.screen.Show()
		return
	}

	//中線
	for row := 0; row < rows; row += 2 {
		v.screen.SetContent(cols/2, row, NetSymbol, nil, netStyle)
	}

	//分數
	v.drawText(v.Score1)
	v.drawText(v.Score2)

	//兩個球拍
	v.drawRect(snap.Player, PaddleSymbol)
	v.drawRect(snap.Opponent, PaddleSymbol)

	//球
	v.drawRect(snap.Ball, BallSymbol)

	switch {
	case snap.Over:
		v.drawBanner(fmt.Sprintf("%s WINS %d : %d", sideName(snap.Winner), snap.Score1, snap.Score2))
	case paused:
		v.drawBanner("PAUSED")
	}

	v.drawStatus(snap, paused)
	v.screen.Show()
}

func (v *View) drawRect(r core.Rect, ch rune) {
	cols, rows := v.fieldSize()
	c0, r0 := v.Cell(r.X, r.Y)
	c1 := int(math.Ceil(r.Right()*float64(cols)/float64(v.settings.Width))) - 1
	r1 := int(math.Ceil(r.Bottom()*float64(rows)/float64(v.settings.Height))) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}

	for row := r0; row <= r1; row++ {
		if row < 0 || row >= rows {
			continue
		}
		for col := c0; col <= c1; col++ {
			if col < 0 || col >= cols {
				continue
			}
			v.screen.SetContent(col, row, ch, nil, defaultStyle)
		}
	}
}

// drawText draws big digits, shifted left when they would run off screen.
func (v *View) drawText(t *Text) {
	cols, rows := v.fieldSize()
	col, row := v.Cell(t.X, t.Y)
	word := t.Value()
	if limit := cols - WordWidth(word); col > limit {
		col = limit
	}
	if row+LetterHeight > rows {
		row = rows - LetterHeight
	}
	v.drawLetters(col, row, word)
}

func (v *View) drawLetters(x, y int, word string) {
	offsetX := x
	for _, letter := range word {
		for _, cell := range GetCellsFromChar(letter) {
			finalX := offsetX + cell[0]
			finalY := y + cell[1]
			if finalX < 0 || finalY < 0 {
				continue
			}
			v.screen.SetContent(finalX, finalY, PaddleSymbol, nil, defaultStyle)
		}
		offsetX += LetterWidth + LetterSpacing
	}
}

func (v *View) drawBanner(msg string) {
	cols, rows := v.fieldSize()
	v.drawString((cols-len(msg))/2, rows/2, msg, bannerStyle)
}

func (v *View) drawStatus(snap core.Snapshot, paused bool) {
	cols, rows := v.screen.Size()
	for col := 0; col < cols; col++ {
		v.screen.SetContent(col, rows-1, ' ', nil, statusStyle)
	}

	state := "↑/↓ move  p pause  q quit"
	switch {
	case snap.Over:
		state = "r restart  q quit"
	case paused:
		state = "p resume  q quit"
	}
	line := fmt.Sprintf(" %s %s | %d : %d | %s", v.settings.Title, v.settings.Version, snap.Score1, snap.Score2, state)
	v.drawString(0, rows-1, line, statusStyle)
}

func (v *View) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func sideName(side int) string {
	switch side {
	case core.SidePlayer:
		return "PLAYER"
	case core.SideOpponent:
		return "OPPONENT"
	}
	return "NOBODY"
}
