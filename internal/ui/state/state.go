package state

// AppState contains the UI state that is not owned by the list controller
type AppState struct {
	Cursor         int // highlighted row
	ViewportOffset int // first visible row
	ViewportHeight int // rows available for the list

	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool

	Redraws int // redraw requests received from the bus
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// SetStatus sets an informational status message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError sets an error status message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}
