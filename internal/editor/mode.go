package editor

// CursorMode selects what a primary-button click does to the path. Exactly
// one mode is active at a time.
type CursorMode int

const (
	ModeDefault CursorMode = iota
	ModeCreate
	ModeInsert
	ModeDelete
	ModeTrim
)

func (m CursorMode) String() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeInsert:
		return "Insert"
	case ModeDelete:
		return "Delete"
	case ModeTrim:
		return "Trim"
	default:
		return "Default"
	}
}

// Toggle returns the mode that results from selecting next while m is
// active: re-selecting the active mode returns to Default.
func (m CursorMode) Toggle(next CursorMode) CursorMode {
	if m == next {
		return ModeDefault
	}
	return next
}

// ToolModes lists the selectable modes in toolbar order.
var ToolModes = []CursorMode{ModeCreate, ModeInsert, ModeDelete, ModeTrim}

// Hint is the tooltip text for a mode's toolbar button.
func (m CursorMode) Hint() string {
	switch m {
	case ModeCreate:
		return "Create new point (c)"
	case ModeInsert:
		return "Insert point in path (i)"
	case ModeDelete:
		return "Delete a single point (d)"
	case ModeTrim:
		return "Trim path to point (t)"
	default:
		return ""
	}
}

// ModeForKey maps a mode hotkey to its mode.
func ModeForKey(key string) (CursorMode, bool) {
	switch key {
	case "C":
		return ModeCreate, true
	case "I":
		return ModeInsert, true
	case "D":
		return ModeDelete, true
	case "T":
		return ModeTrim, true
	default:
		return ModeDefault, false
	}
}
