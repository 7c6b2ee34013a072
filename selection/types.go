package selection

// Mode governs how many values may be selected at once.
type Mode int

const (
	// ModeMultiple allows any number of values to be selected. It is the
	// zero value, so it is the default for stores built from an empty
	// Options.
	ModeMultiple Mode = iota
	// ModeSingle allows at most one value to be selected.
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "multiple"
}

// Options configure a store at construction time. Mode and
// RequireSelection are fixed for the store's lifetime.
type Options struct {
	Mode Mode
	// RequireSelection keeps a non-empty single selection from being
	// emptied by Toggle or DeselectAll. Ignored in ModeMultiple. The
	// store never seeds a first selection itself; that is the owner's
	// job.
	RequireSelection bool
}

// ChangedEvent is published after every mutation that changed the
// selection set. Observers may act on the diff or simply re-read the
// store's query surface.
type ChangedEvent[T comparable] struct {
	Added   []T
	Removed []T
	Total   int
}
