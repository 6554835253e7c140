package components

// FieldDescriptor describes a component field for UI display.
type FieldDescriptor struct {
	ID     string // Unique identifier
	Label  string // Display name
	Format string // Printf format (e.g., "%.2f")
}

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"Robot", "Hungry Robot", "Controllable Robot", "Whisker Robot", "Bullet", "Obstacle", "Party Obstacle"}
}

// KindCount returns the number of kinds.
func KindCount() int {
	return NumKinds
}

// String returns the colour name.
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "unknown"
}

// ItemFieldDescriptors returns the fields shown in the selection panel.
func ItemFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "id", Label: "ID", Format: "%d"},
		{ID: "kind", Label: "Kind", Format: "%s"},
		{ID: "pos", Label: "Position", Format: "%.2f,%.2f"},
		{ID: "angle", Label: "Angle", Format: "%.0f"},
		{ID: "radius", Label: "Radius", Format: "%d"},
		{ID: "speed", Label: "Speed", Format: "%.3f"},
		{ID: "party", Label: "Party", Format: "%s"},
	}
}
