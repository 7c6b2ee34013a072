package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rowselect/events"
	"rowselect/selection"
)

// StyleFunc customizes the style of a single row by its value, replacing
// the default selected/unselected row styles.
type StyleFunc[T comparable] func(value T, selected bool) lipgloss.Style

// Model is a bubbletea component rendering selectable rows whose
// selection state lives in a selection.Store. It follows the bubbles
// convention: Update returns the concrete model type, and a parent model
// embeds it.
type Model[T comparable] struct {
	Title string
	Keys  KeyMap

	items     []Item[T]
	store     *selection.Store[T]
	nav       *navigator
	styles    *Styles
	help      help.Model
	indicator Indicator
	alignment Alignment
	styleFn   StyleFunc[T]
	width     int
}

// New creates a list over items. Selection state lives in store; cursor
// events are published on bus (nil for none).
func New[T comparable](items []Item[T], store *selection.Store[T], bus events.EventBus) Model[T] {
	m := Model[T]{
		Keys:   DefaultKeyMap(),
		items:  items,
		store:  store,
		nav:    newNavigator(bus),
		styles: NewStyles(),
		help:   help.New(),
	}
	m.nav.setMaxIndex(len(items) - 1)
	return m
}

// SetIndicator chooses the selection marker style.
func (m *Model[T]) SetIndicator(indicator Indicator) {
	m.indicator = indicator
}

// SetAlignment places the indicator before or after the row title.
func (m *Model[T]) SetAlignment(alignment Alignment) {
	m.alignment = alignment
}

// SetStyleFunc installs a per-row style hook.
func (m *Model[T]) SetStyleFunc(fn StyleFunc[T]) {
	m.styleFn = fn
}

// SetStyles replaces the widget styles.
func (m *Model[T]) SetStyles(styles *Styles) {
	m.styles = styles
}

// SetSize updates the widget dimensions, reserving rows for the title,
// status line and help footer.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.help.Width = width
	m.nav.setHeight(height - 6)
}

// SetItems replaces the rows. Selected values that no longer appear are
// pruned from the store, so the selection only ever contains rows the
// owner kept.
func (m *Model[T]) SetItems(items []Item[T]) {
	m.items = items
	m.nav.setMaxIndex(len(items) - 1)

	present := make(map[T]bool, len(items))
	for _, it := range items {
		present[it.Value] = true
	}
	var gone []T
	for _, v := range m.store.Selected() {
		if !present[v] {
			gone = append(gone, v)
		}
	}
	m.store.Prune(gone)
}

// RemoveAt deletes the row at index and prunes its value from the
// selection. Out-of-range indexes are ignored.
func (m *Model[T]) RemoveAt(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	value := m.items[index].Value
	m.items = append(m.items[:index], m.items[index+1:]...)
	m.nav.setMaxIndex(len(m.items) - 1)

	// The value may still be carried by a duplicate row.
	for _, it := range m.items {
		if it.Value == value {
			return
		}
	}
	m.store.Prune([]T{value})
}

// Move reorders a row. Selection is keyed by value, so the moved row
// keeps its selected state.
func (m *Model[T]) Move(from, to int) {
	if from < 0 || from >= len(m.items) || to < 0 || to >= len(m.items) || from == to {
		return
	}
	it := m.items[from]
	m.items = append(m.items[:from], m.items[from+1:]...)
	m.items = append(m.items[:to], append([]Item[T]{it}, m.items[to:]...)...)
}

// Items returns the current rows.
func (m Model[T]) Items() []Item[T] {
	return m.items
}

// Cursor returns the cursor row index.
func (m Model[T]) Cursor() int {
	return m.nav.cursor
}

// CursorItem returns the row under the cursor.
func (m Model[T]) CursorItem() (Item[T], bool) {
	if m.nav.cursor < 0 || m.nav.cursor >= len(m.items) {
		var zero Item[T]
		return zero, false
	}
	return m.items[m.nav.cursor], true
}

// Store exposes the selection store for querying and seeding.
func (m Model[T]) Store() *selection.Store[T] {
	return m.store
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Up):
			m.nav.navigate(DirectionUp)
		case key.Matches(msg, m.Keys.Down):
			m.nav.navigate(DirectionDown)
		case key.Matches(msg, m.Keys.PageUp):
			m.nav.navigate(DirectionPageUp)
		case key.Matches(msg, m.Keys.PageDown):
			m.nav.navigate(DirectionPageDown)
		case key.Matches(msg, m.Keys.Home):
			m.nav.navigate(DirectionHome)
		case key.Matches(msg, m.Keys.End):
			m.nav.navigate(DirectionEnd)

		case key.Matches(msg, m.Keys.Toggle):
			if it, ok := m.CursorItem(); ok {
				m.store.Toggle(it.Value)
			}
		case key.Matches(msg, m.Keys.SelectAll):
			m.store.SelectAll(m.values())
		case key.Matches(msg, m.Keys.DeselectAll):
			m.store.DeselectAll()
		}
	}

	return m, nil
}

// View renders the title, the visible rows, a selection summary and the
// help footer.
func (m Model[T]) View() string {
	var b strings.Builder

	if m.Title != "" {
		b.WriteString(m.styles.Title.Render(m.Title))
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(m.styles.Dim.Render("no rows"))
		b.WriteString("\n")
	}

	end := m.nav.offset + m.nav.height
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.nav.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.Keys)))

	return b.String()
}

func (m Model[T]) renderRow(index int) string {
	it := m.items[index]
	selected := m.store.IsSelected(it.Value)

	rowStyle := m.styles.Row
	if m.styleFn != nil {
		rowStyle = m.styleFn(it.Value, selected)
	} else if selected {
		rowStyle = m.styles.Selected
	}

	var parts []string
	marker := m.marker(selected)

	if marker != "" && m.alignment == AlignLeading {
		parts = append(parts, m.styles.Indicator.Render(marker), " ")
	}
	parts = append(parts, rowStyle.Render(it.Title))
	if marker != "" && m.alignment == AlignTrailing {
		parts = append(parts, " ", m.styles.Indicator.Render(marker))
	}

	line := strings.Join(parts, "")
	if index == m.nav.cursor {
		line = m.styles.CursorRow.Render(line)
	}
	return line
}

func (m Model[T]) marker(selected bool) string {
	on, off := m.indicator.markers()
	if selected {
		return on
	}
	return off
}

func (m Model[T]) statusLine() string {
	if m.store.Mode() == selection.ModeSingle {
		if it, ok := m.currentSelection(); ok {
			return fmt.Sprintf("selected: %s", it.Title)
		}
		return "no selection"
	}
	return fmt.Sprintf("%d of %d selected", m.store.Count(), len(m.items))
}

func (m Model[T]) currentSelection() (Item[T], bool) {
	for _, it := range m.items {
		if m.store.IsSelected(it.Value) {
			return it, true
		}
	}
	var zero Item[T]
	return zero, false
}

func (m Model[T]) values() []T {
	out := make([]T, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.Value)
	}
	return out
}
