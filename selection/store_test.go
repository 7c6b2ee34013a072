package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowselect/events"
)

// recorder collects change events published by a store under test.
type recorder struct {
	events []ChangedEvent[string]
}

func newRecorder(bus *events.Bus) *recorder {
	r := &recorder{}
	bus.Subscribe(events.TypeOf(ChangedEvent[string]{}), func(e interface{}) {
		if ev, ok := e.(ChangedEvent[string]); ok {
			r.events = append(r.events, ev)
		}
	})
	return r
}

func TestToggleMultipleMode(t *testing.T) {
	store := New[string](nil, Options{})

	store.Toggle("a")
	store.Toggle("b")
	store.Toggle("a")

	assert.Equal(t, 1, store.Count())
	assert.True(t, store.IsSelected("b"))
	assert.False(t, store.IsSelected("a"))
}

func TestToggleSingleModeReplaces(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle})

	store.Toggle("x")
	store.Toggle("y")

	assert.Equal(t, []string{"y"}, store.Selected())
	assert.False(t, store.IsSelected("x"))
}

func TestToggleSingleModeDeselects(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle})

	store.Toggle("x")
	store.Toggle("x")

	assert.False(t, store.HasSelection())
}

func TestToggleRequiredBlocksDeselect(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle, RequireSelection: true})

	store.Toggle("x")
	store.Toggle("x")

	assert.Equal(t, []string{"x"}, store.Selected())
}

func TestToggleRequiredStillReplaces(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle, RequireSelection: true})

	store.Toggle("x")
	store.Toggle("y")

	assert.Equal(t, []string{"y"}, store.Selected())
}

func TestToggleInvolutionInMultipleMode(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeMultiple})
	store.SelectAll([]string{"keep"})

	store.Toggle("e")
	store.Toggle("e")

	assert.Equal(t, []string{"keep"}, store.Selected())
}

func TestDeselectAllRequiredBlocked(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle, RequireSelection: true})
	store.Toggle("x")

	store.DeselectAll()
	assert.Equal(t, []string{"x"}, store.Selected(), "deselect must be blocked")

	// A bulk replace with nothing in it is authoritative and clears even
	// a required selection.
	store.SelectAll(nil)
	assert.False(t, store.HasSelection())
}

func TestDeselectAllClears(t *testing.T) {
	store := New[string](nil, Options{})
	store.SelectAll([]string{"a", "b", "c"})

	store.DeselectAll()

	assert.Equal(t, 0, store.Count())
	assert.False(t, store.HasSelection())
}

func TestSelectAllMultipleModeIsUnion(t *testing.T) {
	store := New[string](nil, Options{})

	store.SelectAll([]string{"a", "b"})
	store.SelectAll([]string{"b", "c"})

	assert.Equal(t, 3, store.Count())
	for _, v := range []string{"a", "b", "c"} {
		assert.True(t, store.IsSelected(v), v)
	}
}

func TestSelectAllSingleModeTakesFirst(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle})

	store.SelectAll([]string{"p", "q", "r"})

	assert.Equal(t, []string{"p"}, store.Selected())
}

func TestSingleModeInvariant(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle})

	ops := []func(){
		func() { store.Toggle("a") },
		func() { store.SelectAll([]string{"b", "c", "d"}) },
		func() { store.Toggle("b") },
		func() { store.Toggle("e") },
		func() { store.DeselectAll() },
		func() { store.Toggle("f") },
		func() { store.SelectAll(nil) },
	}
	for _, op := range ops {
		op()
		assert.LessOrEqual(t, store.Count(), 1)
	}
}

func TestRequiredSelectionNeverEmptiedByToggles(t *testing.T) {
	store := New[string](nil, Options{Mode: ModeSingle, RequireSelection: true})
	store.Toggle("a")

	ops := []func(){
		func() { store.Toggle("a") },
		func() { store.Toggle("b") },
		func() { store.Toggle("b") },
		func() { store.DeselectAll() },
		func() { store.SelectAll([]string{"c"}) },
		func() { store.Toggle("c") },
	}
	for _, op := range ops {
		op()
		assert.Equal(t, 1, store.Count())
	}
}

func TestRequiresSelection(t *testing.T) {
	assert.False(t, New[int](nil, Options{}).RequiresSelection())
	assert.False(t, New[int](nil, Options{Mode: ModeSingle}).RequiresSelection())
	assert.True(t, New[int](nil, Options{Mode: ModeSingle, RequireSelection: true}).RequiresSelection())

	// RequireSelection is meaningless without ModeSingle
	assert.False(t, New[int](nil, Options{Mode: ModeMultiple, RequireSelection: true}).RequiresSelection())
}

func TestPruneRemovesByValue(t *testing.T) {
	store := New[string](nil, Options{})
	store.SelectAll([]string{"a", "b", "c"})

	store.Prune([]string{"b", "missing"})

	assert.Equal(t, 2, store.Count())
	assert.False(t, store.IsSelected("b"))
}

func TestPruneOverridesRequiredSelection(t *testing.T) {
	// A pruned row no longer exists, so the required-selection guard does
	// not apply; the owner is expected to reseed.
	store := New[string](nil, Options{Mode: ModeSingle, RequireSelection: true})
	store.Toggle("a")

	store.Prune([]string{"a"})

	assert.False(t, store.HasSelection())
}

func TestChangeNotification(t *testing.T) {
	bus := events.NewBus()
	rec := newRecorder(bus)
	store := New[string](bus, Options{})

	store.Toggle("a")
	require.Len(t, rec.events, 1)
	assert.Equal(t, []string{"a"}, rec.events[0].Added)
	assert.Equal(t, 1, rec.events[0].Total)

	store.Toggle("a")
	require.Len(t, rec.events, 2)
	assert.Equal(t, []string{"a"}, rec.events[1].Removed)
	assert.Equal(t, 0, rec.events[1].Total)
}

func TestNoNotificationWithoutChange(t *testing.T) {
	bus := events.NewBus()
	rec := newRecorder(bus)

	store := New[string](bus, Options{})
	store.DeselectAll() // already empty
	store.SelectAll(nil)
	store.Prune([]string{"ghost"})
	assert.Empty(t, rec.events)

	store.Toggle("a")
	store.SelectAll([]string{"a"}) // already selected
	assert.Len(t, rec.events, 1)
}

func TestNoNotificationWhenRequiredBlocks(t *testing.T) {
	bus := events.NewBus()
	store := New[string](bus, Options{Mode: ModeSingle, RequireSelection: true})
	store.Toggle("a")

	rec := newRecorder(bus)
	store.Toggle("a")
	store.DeselectAll()

	assert.Empty(t, rec.events)
}

func TestSelectedReturnsAllValues(t *testing.T) {
	store := New[int](nil, Options{})
	store.SelectAll([]int{3, 1, 2})

	assert.ElementsMatch(t, []int{1, 2, 3}, store.Selected())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "single", ModeSingle.String())
	assert.Equal(t, "multiple", ModeMultiple.String())
}
