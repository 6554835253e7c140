// Terminal viewer for the robot arena.
//
// Usage: go run ./cmd/arenatty -populate robot=4,hungry=2,controllable=1,party=1
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/config"
)

const helpLine = "wasd/arrows move  space fire  p pause  1-6 add  x clear  ^S save  q quit"

type tty struct {
	screen tcell.Screen
	arena  *arena.Arena
	cfg    *config.Config

	paused   bool
	savePath string
	status   string
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	populate := flag.String("populate", "robot=4,hungry=2,controllable=1,whisker=1,obstacle=3,party=1", "Initial items per kind")
	loadPath := flag.String("load", "", "Load the arena from a save file")
	savePath := flag.String("save", "arena.sav", "Save file for ^S")
	tickMs := flag.Int("tick-ms", 33, "Milliseconds per arena tick")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is busy)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	a := arena.New(cfg, rngSeed)
	if err := seedArena(a, *loadPath, *populate); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up arena: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	t := &tty{screen: screen, arena: a, cfg: cfg, savePath: *savePath}
	defer screen.Fini()

	t.run(time.Duration(*tickMs) * time.Millisecond)
}

// seedArena loads a save file or, failing that, populates the arena.
func seedArena(a *arena.Arena, loadPath, populate string) error {
	if loadPath != "" {
		f, err := os.Open(loadPath)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = a.Load(f)
		return err
	}
	entries, err := arena.ParsePopulate(populate)
	if err != nil {
		return err
	}
	a.Populate(entries)
	return nil
}

func (t *tty) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
			t.draw()

		case <-ticker.C:
			if !t.paused {
				t.arena.Step()
			}
			t.draw()
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (t *tty) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyCtrlS {
			t.save()
			return true
		}
		if cmd, ok := keyCommand(ev); ok {
			t.arena.Control(cmd)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case 'p':
			t.paused = !t.paused
		case 'x':
			t.arena.Clear()
			t.status = "cleared"
		default:
			if kind, ok := addKeys[r]; ok {
				if _, err := t.arena.Add(kind); err != nil {
					t.status = fmt.Sprintf("no room for a %s", kind.String())
				}
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *tty) save() {
	f, err := os.Create(t.savePath)
	if err != nil {
		t.status = err.Error()
		return
	}
	defer f.Close()
	if err := t.arena.Save(f); err != nil {
		t.status = err.Error()
		return
	}
	t.status = fmt.Sprintf("saved %d items to %s", t.arena.Len(), t.savePath)
}

func (t *tty) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	v := newView(w, h, float64(t.cfg.Arena.Width), float64(t.cfg.Arena.Height))

	v.border(t.screen, tcell.StyleDefault.Foreground(tcell.ColorGray))
	t.arena.Draw(termSink{screen: t.screen, view: v})

	state := "running"
	if t.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" tick %d  items %d  %s  %s", t.arena.Tick(), t.arena.Len(), state, helpLine)
	if t.status != "" {
		line += "  | " + t.status
	}
	drawText(t.screen, 0, h-1, w, line, tcell.StyleDefault)

	t.screen.Show()
}

// drawText writes s on one row, cut at width cells.
func drawText(s cellSetter, x, y, width int, text string, style tcell.Style) {
	text = strings.ReplaceAll(text, "\n", " ")
	col := x
	for _, r := range text {
		if col >= x+width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
