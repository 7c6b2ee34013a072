package selection

import (
	"rowselect/events"
)

// Store tracks which rows of a list are currently selected. Rows are
// identified by value equality, not by position, so reordering a list
// never changes which of its rows are selected. The store holds no
// reference to the list itself; owners pass values in and prune values
// they remove.
//
// All operations are synchronous and total. The store is meant to be
// confined to the goroutine that owns the UI state (the bubbletea update
// loop); it does no locking of its own.
type Store[T comparable] struct {
	selected map[T]bool
	mode     Mode
	required bool
	bus      events.EventBus
}

// New creates a store. Mode and RequireSelection are fixed from opts. A
// nil bus disables change notification.
func New[T comparable](bus events.EventBus, opts Options) *Store[T] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Store[T]{
		selected: make(map[T]bool),
		mode:     opts.Mode,
		required: opts.Mode == ModeSingle && opts.RequireSelection,
		bus:      bus,
	}
}

// Mode returns the selection mode fixed at construction.
func (s *Store[T]) Mode() Mode {
	return s.mode
}

// RequiresSelection reports whether the store refuses to empty a
// non-empty selection. Owners check this to decide whether to seed an
// initial selection.
func (s *Store[T]) RequiresSelection() bool {
	return s.required
}

// IsSelected checks if a value is selected.
func (s *Store[T]) IsSelected(value T) bool {
	return s.selected[value]
}

// Toggle flips the selection state of a value under the mode policy. In
// ModeSingle a new value replaces the previous selection, and with
// RequireSelection set, toggling the only selected value is a no-op.
func (s *Store[T]) Toggle(value T) {
	var added, removed []T

	switch {
	case s.mode == ModeSingle && s.selected[value]:
		if s.required {
			return // deselecting the last required row is blocked
		}
		delete(s.selected, value)
		removed = append(removed, value)

	case s.mode == ModeSingle:
		for prior := range s.selected {
			delete(s.selected, prior)
			removed = append(removed, prior)
		}
		s.selected[value] = true
		added = append(added, value)

	case s.selected[value]:
		delete(s.selected, value)
		removed = append(removed, value)

	default:
		s.selected[value] = true
		added = append(added, value)
	}

	s.publish(added, removed)
}

// SelectAll bulk-selects. In ModeMultiple the result is the union of the
// current selection and values. In ModeSingle the result is exactly the
// first value, and an empty input clears the selection even when
// RequiresSelection is set: a bulk replace is authoritative, unlike
// Toggle and DeselectAll.
func (s *Store[T]) SelectAll(values []T) {
	var added, removed []T

	if s.mode == ModeSingle {
		if len(values) == 0 {
			for prior := range s.selected {
				delete(s.selected, prior)
				removed = append(removed, prior)
			}
		} else {
			first := values[0]
			for prior := range s.selected {
				if prior != first {
					delete(s.selected, prior)
					removed = append(removed, prior)
				}
			}
			if !s.selected[first] {
				s.selected[first] = true
				added = append(added, first)
			}
		}
	} else {
		for _, v := range values {
			if !s.selected[v] {
				s.selected[v] = true
				added = append(added, v)
			}
		}
	}

	s.publish(added, removed)
}

// DeselectAll clears the selection. With RequireSelection set and
// anything selected it is a no-op; use SelectAll(nil) to force a clear.
func (s *Store[T]) DeselectAll() {
	if s.required && len(s.selected) > 0 {
		return
	}

	var removed []T
	for v := range s.selected {
		delete(s.selected, v)
		removed = append(removed, v)
	}

	s.publish(nil, removed)
}

// Prune removes values from the selection, e.g. when their rows are
// deleted from the owning list. Values that are not selected are ignored.
func (s *Store[T]) Prune(values []T) {
	var removed []T
	for _, v := range values {
		if s.selected[v] {
			delete(s.selected, v)
			removed = append(removed, v)
		}
	}

	s.publish(nil, removed)
}

// Selected returns all selected values in no particular order.
func (s *Store[T]) Selected() []T {
	out := make([]T, 0, len(s.selected))
	for v := range s.selected {
		out = append(out, v)
	}
	return out
}

// Count returns the number of selected values.
func (s *Store[T]) Count() int {
	return len(s.selected)
}

// HasSelection returns true if anything is selected.
func (s *Store[T]) HasSelection() bool {
	return len(s.selected) > 0
}

func (s *Store[T]) publish(added, removed []T) {
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	s.bus.Publish(ChangedEvent[T]{
		Added:   added,
		Removed: removed,
		Total:   len(s.selected),
	})
}
