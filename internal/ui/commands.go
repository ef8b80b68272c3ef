package ui

import (
	"strings"
)

type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandQuit
	CommandAnalyze
	CommandReviews
	CommandClear
	CommandStats
	CommandToken
	CommandLogs
	CommandHelp
)

type Command struct {
	Type CommandType
	Args []string
}

func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, ":") {
		return Command{Type: CommandUnknown}
	}

	input = strings.TrimPrefix(input, ":")
	parts := strings.Fields(input)

	if len(parts) == 0 {
		return Command{Type: CommandUnknown}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "q", "quit":
		return Command{Type: CommandQuit, Args: args}
	case "a", "analyze":
		return Command{Type: CommandAnalyze, Args: args}
	case "o", "open", "reviews", "sessions":
		return Command{Type: CommandReviews, Args: args}
	case "clear":
		return Command{Type: CommandClear, Args: args}
	case "stats":
		return Command{Type: CommandStats, Args: args}
	case "token":
		return Command{Type: CommandToken, Args: args}
	case "l", "logs":
		return Command{Type: CommandLogs, Args: args}
	case "h", "help":
		return Command{Type: CommandHelp, Args: args}
	default:
		return Command{Type: CommandUnknown, Args: args}
	}
}
