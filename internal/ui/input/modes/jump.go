package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"swipedeck/internal/ui/input/types"
)

// JumpMode reads a 1-based slide number
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Go to slide: ", ti),
	}
}
