package component

// CommandKind enumerates the player and game intents carried on the command
// bus.
type CommandKind int

const (
	CommandQuit CommandKind = iota + 1
	CommandReloadConfig
	CommandNextLevel
	CommandDropLift
	CommandDropRam
	CommandDropDirectionChanger
	CommandZoom
)

func (k CommandKind) String() string {
	switch k {
	case CommandQuit:
		return "quit"
	case CommandReloadConfig:
		return "reload_config"
	case CommandNextLevel:
		return "next_level"
	case CommandDropLift:
		return "drop_lift"
	case CommandDropRam:
		return "drop_ram"
	case CommandDropDirectionChanger:
		return "drop_direction_changer"
	case CommandZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// Command is one entry on the bus. Amount is only used by CommandZoom.
type Command struct {
	Kind   CommandKind
	Amount float64
}
