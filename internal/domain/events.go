package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRedrawRequested  EventType = "RedrawRequested"
	EventSelectionChanged EventType = "SelectionChanged"
	EventModeChanged      EventType = "ModeChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RedrawRequestedEvent is emitted whenever the list changed and must be redrawn in full
type RedrawRequestedEvent struct{}

func (e RedrawRequestedEvent) Type() EventType { return EventRedrawRequested }

// SelectionChangedEvent is emitted after a successful toggle
type SelectionChangedEvent struct {
	Index    int    // toggled position
	Mode     string // mode the toggle was applied in
	Selected int    // number of selected items afterwards
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ModeChangedEvent is emitted when the host switches selection mode
type ModeChangedEvent struct {
	Mode string
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Mode  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
