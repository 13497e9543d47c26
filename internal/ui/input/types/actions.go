package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleAction struct {
	Index int // -1 for current
}

func (a ToggleAction) Type() string { return "toggle" }

type SwitchSelectionModeAction struct{}

func (a SwitchSelectionModeAction) Type() string { return "switch_selection_mode" }

type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// OpenReportAction pages a text report of the list
type OpenReportAction struct{}

func (a OpenReportAction) Type() string { return "open_report" }
