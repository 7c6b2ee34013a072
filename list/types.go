package list

// Item pairs a display title with the value identifying the row.
// Selection follows value equality, so moving an item within the list
// never changes whether it is selected.
type Item[T comparable] struct {
	Value T
	Title string
}

// Indicator is the visual marker rendered next to each row.
type Indicator int

const (
	// IndicatorCheckbox renders "[x]" / "[ ]".
	IndicatorCheckbox Indicator = iota
	// IndicatorCheckmark renders "✓" on selected rows.
	IndicatorCheckmark
	// IndicatorToggle renders "●" / "○".
	IndicatorToggle
	// IndicatorNone renders no marker; selection shows through the row
	// style alone (tap-to-select lists).
	IndicatorNone
)

// markers returns the glyphs for selected and unselected rows. Both are
// empty for IndicatorNone.
func (i Indicator) markers() (on, off string) {
	switch i {
	case IndicatorCheckbox:
		return "[x]", "[ ]"
	case IndicatorCheckmark:
		return "✓", " "
	case IndicatorToggle:
		return "●", "○"
	default:
		return "", ""
	}
}

// Alignment places the indicator before or after the row title.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignTrailing
)

// CursorMovedEvent is published when the cursor lands on a new row.
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}
