package config

// Action is something a key binding can trigger in the player.
type Action string

const (
	ActionQuit          Action = "quit"
	ActionMoveUp        Action = "move-up"
	ActionMoveDown      Action = "move-down"
	ActionMoveLeft      Action = "move-left"
	ActionMoveRight     Action = "move-right"
	ActionMoveBottom    Action = "move-bottom"
	ActionMoveTop       Action = "move-top"
	ActionMoveSelection Action = "move-selection"
	ActionSelect        Action = "select"
	ActionSkipSong      Action = "skip-song"
)

// ParseAction resolves an action name from a configuration file.
func ParseAction(name string) (Action, error) {
	switch a := Action(name); a {
	case ActionQuit,
		ActionMoveUp,
		ActionMoveDown,
		ActionMoveLeft,
		ActionMoveRight,
		ActionMoveBottom,
		ActionMoveTop,
		ActionMoveSelection,
		ActionSelect,
		ActionSkipSong:
		return a, nil
	}
	return "", &ErrUnknown{What: "key action", Name: name}
}
