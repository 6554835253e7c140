package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pthm-cable/robotarena/components"
)

// populateNames maps populate keys to kinds.
var populateNames = map[string]components.Kind{
	"robot":        components.KindRobot,
	"hungry":       components.KindHungry,
	"controllable": components.KindControllable,
	"whisker":      components.KindWhisker,
	"obstacle":     components.KindObstacle,
	"party":        components.KindPartyObstacle,
}

// PopulateEntry is one kind and how many to add.
type PopulateEntry struct {
	Kind  components.Kind
	Count int
}

// ParsePopulate parses "robot=5,hungry=2" into entries, keeping the given order.
func ParsePopulate(list string) ([]PopulateEntry, error) {
	var entries []PopulateEntry
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, num, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("populate %q: want kind=count", part)
		}
		kind, known := populateNames[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			return nil, fmt.Errorf("populate %q: unknown kind", name)
		}
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("populate %q: bad count", part)
		}
		entries = append(entries, PopulateEntry{Kind: kind, Count: n})
	}
	return entries, nil
}

// Populate adds the requested items at random spots. A kind stops at its
// first placement failure. It returns how many items were added.
func (a *Arena) Populate(entries []PopulateEntry) int {
	added := 0
	for _, e := range entries {
		for i := 0; i < e.Count; i++ {
			if _, err := a.Add(e.Kind); err != nil {
				if !errors.Is(err, ErrNoPlacement) {
					slog.Warn("populate failed", "kind", e.Kind.String(), "error", err)
				}
				break
			}
			added++
		}
	}
	return added
}
