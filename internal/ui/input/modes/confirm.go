package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectlist/internal/ui/input/types"
)

// ConfirmMode asks before throwing away the current selection
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "reset-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.StatusAction{Message: "Reset selection to the configured state? (y/n)"}}
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.ResetAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{
			types.StatusAction{Message: "Reset cancelled"},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while the question is open
	return nil, true
}
