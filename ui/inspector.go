package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/telemetry"
)

// Inspector renders the panel for the selected item.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
	section  SectionDescriptor
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		section:  ItemSection(),
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for it and returns the Y below it.
// life may be nil for items created before tracking started.
func (ins *Inspector) Draw(it arena.Item, life *telemetry.LifetimeStats) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	rows := int32(len(ins.section.Fields)) + 3
	if life != nil {
		rows += int32(len(lifetimeSection.Fields)) + 1
	}
	height := rows*r.Theme.LineHeight + padding*2
	r.DrawPanel(ins.x, ins.y, ins.width, height)

	x := ins.x + padding
	y := ins.y + padding
	y = r.DrawSectionHeader(x, y, ins.section.Title)
	y = r.DrawColorSwatch(x, y, "Colour", ColourOf(it.Colour), ins.width-padding*2)
	y = r.DrawSection(x, y, SectionDescriptor{Fields: ins.section.Fields}, it, ins.width-padding*2)
	if life != nil {
		r.DrawSection(x, y, lifetimeSection, life, ins.width-padding*2)
	}
	return ins.y + height
}

// lifetimeSection shows what the selected item has done since it appeared.
var lifetimeSection = SectionDescriptor{
	ID:    "lifetime",
	Title: "History",
	Fields: []FieldDescriptor{
		{ID: "born", Label: "Born", Widget: WidgetText, TextGetter: lifeText(func(l *telemetry.LifetimeStats) int { return l.BirthTick })},
		{ID: "meals", Label: "Meals", Widget: WidgetText, TextGetter: lifeText(func(l *telemetry.LifetimeStats) int { return l.Meals })},
		{ID: "infections", Label: "Parties", Widget: WidgetText, TextGetter: lifeText(func(l *telemetry.LifetimeStats) int { return l.Infections })},
		{ID: "walls", Label: "Wall turns", Widget: WidgetText, TextGetter: lifeText(func(l *telemetry.LifetimeStats) int { return l.WallTurns })},
		{ID: "bumps", Label: "Bumps", Widget: WidgetText, TextGetter: lifeText(func(l *telemetry.LifetimeStats) int { return l.CollisionTurns })},
	},
}

func lifeText(get func(*telemetry.LifetimeStats) int) func(any) string {
	return func(data any) string {
		l, ok := data.(*telemetry.LifetimeStats)
		if !ok || l == nil {
			return "-"
		}
		return fmt.Sprint(get(l))
	}
}

// ItemSection builds the selection section from the component field metadata.
func ItemSection() SectionDescriptor {
	meta := components.ItemFieldDescriptors()
	fields := make([]FieldDescriptor, 0, len(meta))
	for _, m := range meta {
		id := m.ID
		format := m.Format
		fd := FieldDescriptor{
			ID:     id,
			Label:  m.Label,
			Widget: WidgetText,
			Format: format,
			TextGetter: func(data any) string {
				it, ok := data.(arena.Item)
				if !ok {
					return "-"
				}
				return ItemFieldText(id, format, it)
			},
		}
		switch id {
		case "angle", "speed":
			fd.Visible = func(data any) bool {
				it, ok := data.(arena.Item)
				return ok && it.Kind.IsRobot()
			}
		}
		fields = append(fields, fd)
	}
	return SectionDescriptor{ID: "item", Title: "Selected", Fields: fields}
}

// ItemFieldText formats one metadata field of an item.
func ItemFieldText(id, format string, it arena.Item) string {
	switch id {
	case "id":
		return fmt.Sprintf(format, it.ID)
	case "kind":
		return fmt.Sprintf(format, it.Kind.String())
	case "pos":
		return fmt.Sprintf(format, it.X, it.Y)
	case "angle":
		return fmt.Sprintf(format, it.Angle)
	case "radius":
		return fmt.Sprintf(format, it.Radius)
	case "speed":
		return fmt.Sprintf(format, it.Speed)
	case "party":
		state := "no"
		if it.Partying {
			state = "yes"
		}
		return fmt.Sprintf(format, state)
	}
	return "?"
}

// DrawEmpty renders the placeholder shown when nothing is selected.
func (ins *Inspector) DrawEmpty() int32 {
	r := ins.renderer
	height := r.Theme.LineHeight*2 + r.Theme.Padding*2
	r.DrawPanel(ins.x, ins.y, ins.width, height)
	rl.DrawText("Click an item to select it", ins.x+r.Theme.Padding, ins.y+r.Theme.Padding, r.Theme.FontSize, r.Theme.LabelColor)
	return ins.y + height
}
