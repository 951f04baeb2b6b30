package types

// Navigation actions
type PaginateAction struct {
	Step int // +1 forward, -1 backward
}

func (a PaginateAction) Type() string { return "paginate" }

type JumpAction struct {
	Index int // zero-based
}

func (a JumpAction) Type() string { return "jump" }

type JumpFirstAction struct{}

func (a JumpFirstAction) Type() string { return "jump_first" }

type JumpLastAction struct{}

func (a JumpLastAction) Type() string { return "jump_last" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
