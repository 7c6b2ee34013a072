package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rowselect/events"
	"rowselect/list"
	"rowselect/selection"
	"rowselect/theme"
)

// app wraps the list component as the program's top-level model.
type app struct {
	list list.Model[string]
}

func (a app) Init() tea.Cmd {
	return a.list.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.list.View()
}

func main() {
	var (
		single    bool
		required  bool
		themePath string
		indicator string
		trailing  bool
	)
	flag.BoolVar(&single, "single", false, "allow at most one selected row")
	flag.BoolVar(&required, "required", false, "keep a single selection from being emptied")
	flag.StringVar(&themePath, "theme", "", "path to a TOML theme file")
	flag.StringVar(&indicator, "indicator", "checkbox", "indicator style: checkbox, checkmark, toggle, none")
	flag.BoolVar(&trailing, "trailing", false, "place the indicator after the row title")
	flag.Parse()

	// Log to a file so the TUI stays clean
	logFile, err := os.OpenFile("rowselect-demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	mode := selection.ModeMultiple
	if single {
		mode = selection.ModeSingle
	}

	bus := events.NewBus()
	store := selection.New[string](bus, selection.Options{
		Mode:             mode,
		RequireSelection: required,
	})

	bus.Subscribe(events.TypeOf(selection.ChangedEvent[string]{}), func(e interface{}) {
		if ev, ok := e.(selection.ChangedEvent[string]); ok {
			log.Printf("selection changed: added=%v removed=%v total=%d", ev.Added, ev.Removed, ev.Total)
		}
	})

	items := []list.Item[string]{
		{Value: "go", Title: "Go"},
		{Value: "rust", Title: "Rust"},
		{Value: "zig", Title: "Zig"},
		{Value: "ocaml", Title: "OCaml"},
		{Value: "erlang", Title: "Erlang"},
		{Value: "haskell", Title: "Haskell"},
		{Value: "lua", Title: "Lua"},
	}

	m := list.New(items, store, bus)
	m.Title = "rowselect demo"
	m.SetIndicator(parseIndicator(indicator))
	if trailing {
		m.SetAlignment(list.AlignTrailing)
	}

	if themePath != "" {
		t, err := theme.Load(themePath)
		if err != nil {
			fmt.Printf("Error loading theme: %v\n", err)
			os.Exit(1)
		}
		m.SetStyles(list.StylesFromTheme(t))
	}

	// A required single selection has to be seeded by the owner
	if store.RequiresSelection() && len(items) > 0 {
		store.Toggle(items[0].Value)
	}

	p := tea.NewProgram(app{list: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	for _, v := range store.Selected() {
		fmt.Println(v)
	}
}

func parseIndicator(name string) list.Indicator {
	switch name {
	case "checkmark":
		return list.IndicatorCheckmark
	case "toggle":
		return list.IndicatorToggle
	case "none":
		return list.IndicatorNone
	default:
		return list.IndicatorCheckbox
	}
}
