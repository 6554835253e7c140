package ui

import (
	"testing"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/telemetry"
)

func TestItemFieldText(t *testing.T) {
	it := arena.Item{
		ID:       7,
		Kind:     components.KindHungry,
		X:        50.25,
		Y:        60,
		Radius:   14,
		Angle:    90,
		Speed:    0.975,
		Partying: true,
	}

	tests := []struct {
		id   string
		want string
	}{
		{"id", "7"},
		{"kind", "Hungry Robot"},
		{"pos", "50.25,60.00"},
		{"angle", "90"},
		{"radius", "14"},
		{"speed", "0.975"},
		{"party", "yes"},
	}

	formats := make(map[string]string)
	for _, fd := range components.ItemFieldDescriptors() {
		formats[fd.ID] = fd.Format
	}

	for _, tt := range tests {
		format, ok := formats[tt.id]
		if !ok {
			t.Fatalf("no descriptor for %q", tt.id)
		}
		if got := ItemFieldText(tt.id, format, it); got != tt.want {
			t.Errorf("ItemFieldText(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestItemSectionHidesMotionForObstacles(t *testing.T) {
	section := ItemSection()
	obstacle := arena.Item{ID: 1, Kind: components.KindObstacle}
	robot := arena.Item{ID: 2, Kind: components.KindRobot}

	for _, fd := range section.Fields {
		if fd.ID != "speed" && fd.ID != "angle" {
			if fd.Visible != nil {
				t.Errorf("field %q should always be visible", fd.ID)
			}
			continue
		}
		if fd.Visible(obstacle) {
			t.Errorf("field %q visible for an obstacle", fd.ID)
		}
		if !fd.Visible(robot) {
			t.Errorf("field %q hidden for a robot", fd.ID)
		}
	}

	if got := section.Fields[0].TextGetter("not an item"); got != "-" {
		t.Errorf("TextGetter on wrong type = %q, want -", got)
	}
}

func TestLifetimeSection(t *testing.T) {
	life := &telemetry.LifetimeStats{BirthTick: 12, Meals: 3}
	want := map[string]string{"born": "12", "meals": "3", "infections": "0"}

	for _, fd := range lifetimeSection.Fields {
		w, ok := want[fd.ID]
		if !ok {
			continue
		}
		if got := fd.TextGetter(life); got != w {
			t.Errorf("%s = %q, want %q", fd.ID, got, w)
		}
	}
	if got := lifetimeSection.Fields[0].TextGetter((*telemetry.LifetimeStats)(nil)); got != "-" {
		t.Errorf("nil stats = %q, want -", got)
	}
}
