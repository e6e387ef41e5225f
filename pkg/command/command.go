// Package command parses chat commands and turns them into market-data replies.
package command

import "strings"

// Command names understood by the dispatcher
const (
	Start = "start"
	Price = "price"
	Top   = "top"
	Info  = "info"
)

// Command is a parsed chat command
type Command struct {
	Name   string   // lower-cased, without the leading slash or @bot suffix
	Symbol string   // second token, upper-cased; empty when absent
	Args   []string // every token after the command name
}

// Parse splits a chat message into a Command. It returns false when text is
// not a slash command.
func Parse(text string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Command{}, false
	}

	name := strings.TrimPrefix(fields[0], "/")
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return Command{}, false
	}

	cmd := Command{
		Name: strings.ToLower(name),
		Args: fields[1:],
	}
	if len(cmd.Args) > 0 {
		cmd.Symbol = strings.ToUpper(cmd.Args[0])
	}

	return cmd, true
}
