package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipedeck/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	}

	// Navigation keys do nothing on a deck that cannot page
	if !ctx.Paginated() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.PaginateAction{Step: -1}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.PaginateAction{Step: 1}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.JumpFirstAction{}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.JumpLastAction{}}, true

	case key.Matches(msg, m.keys.Jump):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, m.keys.JumpDigit):
		// Digits are 1-based; ignore ones past the end of the deck
		idx := int(msg.Runes[0]-'0') - 1
		if idx >= ctx.TotalSlides() {
			return nil, false
		}
		return []types.Action{types.JumpAction{Index: idx}}, true
	}

	return nil, false
}
