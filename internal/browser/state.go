package browser

// State is what the browser shows: a category listing and, once a file is
// selected, the view produced by opening it.
type State struct {
	Category string
	Files    []string
	Selected string
	View     *View
}

// HasView reports whether a file is currently open
func (s State) HasView() bool {
	return s.View != nil
}

// Event is a user action fed into Transition
type Event interface {
	event()
}

// CategorySelected switches the listing to another category
type CategorySelected struct {
	Name string
}

// FileSelected opens a file from the listing
type FileSelected struct {
	Path string
}

// Refreshed re-lists the current category and keeps the open view
type Refreshed struct{}

func (CategorySelected) event() {}
func (FileSelected) event()     {}
func (Refreshed) event()        {}

// Browser applies events to state using a catalog and a dispatcher
type Browser struct {
	catalog    *Catalog
	dispatcher *Dispatcher
}

// New creates a browser
func New(catalog *Catalog, dispatcher *Dispatcher) *Browser {
	return &Browser{catalog: catalog, dispatcher: dispatcher}
}

// Catalog returns the browser's catalog
func (b *Browser) Catalog() *Catalog {
	return b.catalog
}

// Transition returns the state after event. On error the previous state is
// returned unchanged together with the error.
func (b *Browser) Transition(state State, event Event) (State, error) {
	switch e := event.(type) {
	case CategorySelected:
		files, err := b.catalog.ListFiles(e.Name)
		if err != nil {
			return state, err
		}
		return State{Category: e.Name, Files: files}, nil

	case FileSelected:
		view, err := b.dispatcher.Open(e.Path)
		if err != nil {
			return state, err
		}
		next := state
		next.Selected = e.Path
		next.View = &view
		return next, nil

	case Refreshed:
		if state.Category == "" {
			return state, nil
		}
		files, err := b.catalog.ListFiles(state.Category)
		if err != nil {
			return state, err
		}
		next := state
		next.Files = files
		return next, nil
	}
	return state, nil
}
