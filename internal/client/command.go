package client

import "strings"

// Command is a top-level menu command.
type Command int

const (
	CommandNone Command = iota
	CommandChat
	CommandLoadFile
	CommandHelp
	CommandOptions
	CommandExit
)

var commandNames = map[string]Command{
	"chat":     CommandChat,
	"loadfile": CommandLoadFile,
	"help":     CommandHelp,
	"options":  CommandOptions,
	"exit":     CommandExit,
}

// ParseCommand matches a line of input against the menu commands, ignoring
// surrounding whitespace and letter case. Anything else yields CommandNone.
func ParseCommand(line string) Command {
	return commandNames[strings.ToLower(strings.TrimSpace(line))]
}

func (c Command) String() string {
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return "none"
}
