package list

import (
	"rowselect/events"
)

// Direction is a cursor movement request.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionPageUp
	DirectionPageDown
	DirectionHome
	DirectionEnd
)

// navigator tracks the cursor and the visible window over the rows.
type navigator struct {
	cursor   int
	offset   int
	height   int
	maxIndex int
	bus      events.EventBus
}

func newNavigator(bus events.EventBus) *navigator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &navigator{
		height:   20, // default, updated on the first WindowSizeMsg
		maxIndex: -1,
		bus:      bus,
	}
}

// setHeight updates the number of visible rows.
func (n *navigator) setHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.height = height
	n.ensureVisible()
}

// setMaxIndex updates the highest valid cursor index (-1 for an empty
// list) and re-clamps the cursor.
func (n *navigator) setMaxIndex(maxIndex int) {
	n.maxIndex = maxIndex
	if n.cursor > maxIndex {
		n.cursor = maxIndex
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	n.ensureVisible()
}

// navigate moves the cursor in a direction.
func (n *navigator) navigate(direction Direction) {
	oldCursor := n.cursor

	switch direction {
	case DirectionUp:
		n.moveTo(n.cursor - 1)
	case DirectionDown:
		n.moveTo(n.cursor + 1)
	case DirectionPageUp:
		n.moveTo(n.cursor - (n.height - 1))
	case DirectionPageDown:
		n.moveTo(n.cursor + (n.height - 1))
	case DirectionHome:
		n.moveTo(0)
	case DirectionEnd:
		n.moveTo(n.maxIndex)
	}

	if oldCursor != n.cursor {
		n.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: n.cursor,
		})
	}
}

func (n *navigator) moveTo(index int) {
	n.cursor = n.clampIndex(index)
	n.ensureVisible()
}

func (n *navigator) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > n.maxIndex && n.maxIndex >= 0 {
		return n.maxIndex
	}
	if n.maxIndex < 0 {
		return 0
	}
	return index
}

func (n *navigator) ensureVisible() {
	if n.cursor < n.offset {
		n.offset = n.cursor
	} else if n.cursor >= n.offset+n.height {
		n.offset = n.cursor - n.height + 1
	}
	if n.offset < 0 {
		n.offset = 0
	}
}
