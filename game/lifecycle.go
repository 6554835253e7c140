package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/ui"
)

// populate adds items at random spots.
func (g *Game) populate(entries []arena.PopulateEntry) {
	added := g.arena.Populate(entries)
	slog.Info("arena populated", "added", added, "items", g.arena.Len())
}

// saveTo writes the arena to path.
func (g *Game) saveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	if err := g.arena.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("saving arena: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing save file: %w", err)
	}
	g.setStatus("Saved %d items to %s", g.arena.Len(), path)
	return nil
}

// loadFrom replaces the arena with the contents of path.
func (g *Game) loadFrom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening save file: %w", err)
	}
	defer f.Close()

	report, err := g.arena.Load(f)
	if err != nil {
		return fmt.Errorf("loading arena: %w", err)
	}
	g.hasSelection = false
	g.dragging = false
	slog.Info("arena loaded", "path", path, "loaded", report.Loaded, "skipped", len(report.Skipped))
	if len(report.Skipped) > 0 {
		g.setStatus("Loaded %d items, skipped %d", report.Loaded, len(report.Skipped))
	} else {
		g.setStatus("Loaded %d items", report.Loaded)
	}
	return nil
}

// applyAction carries out a toolbar request.
func (g *Game) applyAction(res ui.ToolbarResult) {
	g.stepsPerUpdate = ui.ClampSteps(res.Steps)

	switch res.Action {
	case ui.ActionToggleRun:
		g.running = !g.running
	case ui.ActionStep:
		if !g.running {
			g.step()
		}
	case ui.ActionClear:
		g.arena.Clear()
		g.hasSelection = false
		g.setStatus("Cleared")
	case ui.ActionRemove:
		g.removeSelected()
	case ui.ActionAdd:
		g.addItem(res.Kind)
	case ui.ActionSave:
		if err := g.saveTo(g.savePath); err != nil {
			g.setStatus("Save failed: %v", err)
		}
	case ui.ActionLoad:
		if err := g.loadFrom(g.savePath); err != nil {
			g.setStatus("Load failed: %v", err)
		}
	}
}

// addItem places one item of kind and selects it.
func (g *Game) addItem(kind components.Kind) {
	id, err := g.arena.Add(kind)
	if errors.Is(err, arena.ErrNoPlacement) {
		g.setStatus("No room for a %s", kind.String())
		return
	}
	if err != nil {
		g.setStatus("Add failed: %v", err)
		return
	}
	g.selected = id
	g.hasSelection = true
}

// removeSelected removes the selected item, if any.
func (g *Game) removeSelected() {
	if !g.hasSelection {
		return
	}
	if err := g.arena.Remove(g.selected); err != nil && !errors.Is(err, arena.ErrUnknownItem) {
		g.setStatus("Remove failed: %v", err)
	}
	g.hasSelection = false
	g.dragging = false
}

// selectedItem returns the selected item, clearing the selection if it is gone.
func (g *Game) selectedItem() (arena.Item, bool) {
	if !g.hasSelection {
		return arena.Item{}, false
	}
	it, ok := g.arena.Get(g.selected)
	if !ok {
		g.hasSelection = false
		g.dragging = false
	}
	return it, ok
}
