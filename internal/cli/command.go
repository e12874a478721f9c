package cli

import (
	"errors"
	"strconv"
	"strings"
)

// Command is one entry of the main menu.
type Command int

const (
	CmdQuit Command = iota
	CmdByCount
	CmdFirstOfType
	CmdByTotal
	CmdMinStats
	CmdLegendary
	CmdRandomTeam
)

var ErrUnknownCommand = errors.New("unknown menu option")

// menu is printed in this order, quit last.
var menu = []struct {
	cmd   Command
	label string
}{
	{CmdByCount, "Display a selected number of Pokemon with their types and statistics"},
	{CmdFirstOfType, "Display the first Pokemon of a Type of your choice"},
	{CmdByTotal, "Display all the Pokemon with a Total Base stat of your choice"},
	{CmdMinStats, "Display all Pokemon with a minimum set of stats"},
	{CmdLegendary, "Display all legendary Pokemon of specific Type1 and Type2"},
	{CmdRandomTeam, "Create a team of 10 random Pokemon"},
	{CmdQuit, "Quit"},
}

// ParseCommand maps the typed menu number to a Command.
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(CmdQuit) || n > int(CmdRandomTeam) {
		return 0, ErrUnknownCommand
	}
	return Command(n), nil
}
