package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
)

// cellSetter is the part of tcell.Screen the view draws through.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// view maps arena coordinates onto terminal cells inside a one-cell border.
// The bottom row is kept for the status line.
type view struct {
	cols, rows     int
	scaleX, scaleY float64 // Arena units per cell
}

func newView(screenW, screenH int, arenaW, arenaH float64) view {
	v := view{cols: screenW - 2, rows: screenH - 3}
	if v.cols < 1 {
		v.cols = 1
	}
	if v.rows < 1 {
		v.rows = 1
	}
	v.scaleX = arenaW / float64(v.cols)
	v.scaleY = arenaH / float64(v.rows)
	return v
}

// cell returns the screen cell holding arena point (x, y).
func (v view) cell(x, y float64) (col, row int, ok bool) {
	c := int(math.Floor(x / v.scaleX))
	r := int(math.Floor(y / v.scaleY))
	if c < 0 || c >= v.cols || r < 0 || r >= v.rows {
		return 0, 0, false
	}
	return c + 1, r + 1, true
}

// border draws the arena frame.
func (v view) border(s cellSetter, style tcell.Style) {
	right, bottom := v.cols+1, v.rows+1
	for c := 1; c < right; c++ {
		s.SetContent(c, 0, tcell.RuneHLine, nil, style)
		s.SetContent(c, bottom, tcell.RuneHLine, nil, style)
	}
	for r := 1; r < bottom; r++ {
		s.SetContent(0, r, tcell.RuneVLine, nil, style)
		s.SetContent(right, r, tcell.RuneVLine, nil, style)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	s.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	s.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// kindRunes marks the centre cell of each kind.
var kindRunes = [components.NumKinds]rune{
	components.KindRobot:         'R',
	components.KindHungry:        'H',
	components.KindControllable:  'C',
	components.KindWhisker:       'W',
	components.KindBullet:        '*',
	components.KindObstacle:      'O',
	components.KindPartyObstacle: 'P',
}

// colourOf maps a palette tag to a terminal colour.
func colourOf(c components.Colour) tcell.Color {
	switch c {
	case components.Red:
		return tcell.ColorRed
	case components.Orange:
		return tcell.ColorOrange
	case components.Yellow:
		return tcell.ColorYellow
	case components.Green:
		return tcell.ColorGreen
	case components.Blue:
		return tcell.ColorBlue
	case components.White:
		return tcell.ColorWhite
	case components.Black:
		return tcell.ColorGray
	}
	return tcell.ColorPurple
}

// termSink draws arena items as shaded discs with a kind letter in the middle.
type termSink struct {
	screen cellSetter
	view   view
}

// DrawItem implements arena.RenderSink.
func (t termSink) DrawItem(it arena.Item) {
	style := tcell.StyleDefault.Foreground(colourOf(it.Colour))
	r := float64(it.Radius)

	// Shade every cell whose centre lies inside the disc.
	v := t.view
	c0 := clampInt(int(math.Floor((it.X-r)/v.scaleX)), 0, v.cols-1)
	c1 := clampInt(int(math.Floor((it.X+r)/v.scaleX)), 0, v.cols-1)
	r0 := clampInt(int(math.Floor((it.Y-r)/v.scaleY)), 0, v.rows-1)
	r1 := clampInt(int(math.Floor((it.Y+r)/v.scaleY)), 0, v.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * v.scaleX
			cy := (float64(row) + 0.5) * v.scaleY
			if math.Hypot(cx-it.X, cy-it.Y) <= r {
				t.screen.SetContent(col+1, row+1, '░', nil, style)
			}
		}
	}

	col, row, ok := t.view.cell(it.X, it.Y)
	if !ok {
		return
	}
	mark := kindRunes[it.Kind]
	if it.Kind.IsRobot() && it.Kind != components.KindBullet {
		mark = headingRune(it.Angle, mark)
	}
	t.screen.SetContent(col, row, mark, nil, style.Bold(true))
}

// headingRune returns an arrow for headings near an axis and fallback otherwise.
func headingRune(angle float64, fallback rune) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a < 22.5 || a >= 337.5:
		return '>'
	case a >= 67.5 && a < 112.5:
		return 'v'
	case a >= 157.5 && a < 202.5:
		return '<'
	case a >= 247.5 && a < 292.5:
		return '^'
	}
	return fallback
}

// keyCommand maps a key press to a controllable robot command. A terminal
// reports one key at a time, so only the four axis directions are reachable
// from letters; the arrow keys work too.
func keyCommand(ev *tcell.EventKey) (systems.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return systems.CmdUp, true
	case tcell.KeyDown:
		return systems.CmdDown, true
	case tcell.KeyLeft:
		return systems.CmdLeft, true
	case tcell.KeyRight:
		return systems.CmdRight, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case ' ', 'r':
			return systems.CmdFire, true
		}
		cmd := systems.CommandFromKeys(r == 'w', r == 'a', r == 's', r == 'd')
		return cmd, cmd != systems.CmdNone
	}
	return systems.CmdNone, false
}

// addKeys maps keys to the kind they add.
var addKeys = map[rune]components.Kind{
	'1': components.KindRobot,
	'2': components.KindHungry,
	'3': components.KindControllable,
	'4': components.KindWhisker,
	'5': components.KindObstacle,
	'6': components.KindPartyObstacle,
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
