package game

// Action is one discrete input in the driver vocabulary. The driver feeds
// at most one per loop iteration; whatever produced it (keyboard, bot,
// scripted test) is irrelevant here.
type Action int

const (
	ActionNone Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionHardDrop
	ActionRotateRight
	ActionRotateLeft
	ActionHold
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveDown:
		return "move-down"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionHardDrop:
		return "hard-drop"
	case ActionRotateRight:
		return "rotate-right"
	case ActionRotateLeft:
		return "rotate-left"
	case ActionHold:
		return "hold"
	case ActionRestart:
		return "restart"
	default:
		return "?"
	}
}
