// Package cli is the interactive menu in front of the query engine. It owns
// prompting, input validation and presentation; the engine never prints.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pokedex/internal/engine"
)

const (
	Title = "Pokemon Super Search Engine"

	msgInvalidOption = "Not implemented yet? Please choose a valid option."
	msgInvalidNumber = "Invalid input. Please enter a valid number."
	msgNotPositive   = "Input a number greater than 0."
	msgExceeds       = "Number of Pokemon to be displayed exceeds the number of Pokemon in the Pokedex. Try again."
	msgNoType        = "No pokemon of this type."
	msgNoTotal       = "No pokemon with this Total Base stat."
	msgNoStats       = "No pokemon has such powerful stats."
	msgNoLegendary   = "No such legendary Pokemon."
	msgEmptyPokedex  = "The Pokedex is empty."
	msgTeam          = "Your team is..."
	msgGoodbye       = "Thank you for using the Pokemon Super Search Engine."
	msgContinue      = "Press enter to continue..."
)

// Session reads commands from in and writes everything to out.
type Session struct {
	eng    *engine.Engine
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

func NewSession(eng *engine.Engine, in io.Reader, out io.Writer, styles Styles) *Session {
	return &Session{
		eng:    eng,
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

var handlers = map[Command]func(*Session) error{
	CmdByCount:     (*Session).showByCount,
	CmdFirstOfType: (*Session).showFirstOfType,
	CmdByTotal:     (*Session).showByTotal,
	CmdMinStats:    (*Session).showMinStats,
	CmdLegendary:   (*Session).showLegendary,
	CmdRandomTeam:  (*Session).showRandomTeam,
}

// Run loops over the menu until the user quits or input ends.
func (s *Session) Run() error {
	for {
		cmd, err := s.chooseCommand()
		if errors.Is(err, io.EOF) {
			s.println("\n" + s.styles.Info(msgGoodbye))
			return nil
		}
		if err != nil {
			return err
		}

		if cmd == CmdQuit {
			s.println(s.styles.Info(msgGoodbye))
			return nil
		}

		if err := handlers[cmd](s); err != nil {
			if errors.Is(err, io.EOF) {
				s.println("\n" + s.styles.Info(msgGoodbye))
				return nil
			}
			return err
		}
	}
}

// chooseCommand shows the menu until a valid option is typed.
func (s *Session) chooseCommand() (Command, error) {
	for {
		s.printMenu()
		line, err := s.prompt("\nEnter Option: ")
		if err != nil {
			return 0, err
		}
		cmd, err := ParseCommand(line)
		if err == nil {
			return cmd, nil
		}
		if err := s.notice(msgInvalidOption); err != nil {
			return 0, err
		}
	}
}

func (s *Session) printMenu() {
	s.println(s.styles.Title(Title))
	for _, item := range menu {
		s.println(fmt.Sprintf("%d. %s", item.cmd, item.label))
	}
}

// --- MENU ACTIONS ---

func (s *Session) showByCount() error {
	n, ok, err := s.promptInt("\nEnter number of Pokemon to be displayed: ")
	if err != nil || !ok {
		return err
	}
	res, err := s.eng.ByCount(n)
	return s.present(res, err, "")
}

func (s *Session) showFirstOfType() error {
	t, err := s.prompt("\nEnter Type: ")
	if err != nil {
		return err
	}
	res, err := s.eng.FirstOfType(engine.NormalizeType(t))
	return s.present(res, err, msgNoType)
}

func (s *Session) showByTotal() error {
	// Compared as typed; "0318" is not "318".
	total, err := s.prompt("\nEnter Total Base stat: ")
	if err != nil {
		return err
	}
	res, err := s.eng.ByTotalText(total)
	return s.present(res, err, msgNoTotal)
}

func (s *Session) showMinStats() error {
	prompts := []string{
		"\nEnter min special attack stat: ",
		"Enter min special defense stat: ",
		"Enter min speed stat: ",
	}
	var mins [3]int
	for i, p := range prompts {
		n, ok, err := s.promptInt(p)
		if err != nil || !ok {
			return err
		}
		mins[i] = n
	}
	res, err := s.eng.ByMinStats(mins[0], mins[1], mins[2])
	return s.present(res, err, msgNoStats)
}

func (s *Session) showLegendary() error {
	t1, err := s.prompt("\nEnter Type1: ")
	if err != nil {
		return err
	}
	t2, err := s.prompt("Enter Type2: ")
	if err != nil {
		return err
	}
	res, err := s.eng.LegendaryOfTypes(engine.NormalizeType(t1), engine.NormalizeType(t2))
	return s.present(res, err, msgNoLegendary)
}

func (s *Session) showRandomTeam() error {
	res, err := s.eng.RandomTeam()
	if err == nil {
		s.println("\n" + s.styles.Info(msgTeam))
	}
	return s.present(res, err, msgEmptyPokedex)
}

// --- PRESENTATION ---

// present prints the table for res, or the message matching err, then waits
// for the user.
func (s *Session) present(res *engine.Result, err error, notFound string) error {
	var fe *engine.FieldError
	switch {
	case err == nil:
		s.println("")
		if err := engine.RenderTo(s.out, s.eng.Store().Header(), res.Rows); err != nil {
			return err
		}
		s.println("")
		if err := s.Pause(); err != nil {
			return err
		}
		s.println("\n")
		return nil
	case errors.Is(err, engine.ErrNotPositive):
		return s.notice(msgNotPositive)
	case errors.Is(err, engine.ErrExceedsStore):
		return s.notice(msgExceeds)
	case errors.Is(err, engine.ErrNoResults):
		return s.notice(notFound)
	case errors.As(err, &fe):
		return s.notice("The Pokedex data is corrupt: " + fe.Error())
	default:
		return err
	}
}

// notice prints msg and waits for acknowledgment.
func (s *Session) notice(msg string) error {
	s.println(s.styles.Error(msg) + "\n")
	if err := s.Pause(); err != nil {
		return err
	}
	s.println("\n")
	return nil
}

// Pause blocks until the user presses enter.
func (s *Session) Pause() error {
	_, err := s.prompt(msgContinue)
	return err
}

// --- INPUT ---

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, s.styles.Prompt(label))
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptInt reads an integer. A non-numeric answer prints an error and
// reports ok=false so the caller returns to the menu.
func (s *Session) promptInt(label string) (n int, ok bool, err error) {
	line, err := s.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		s.println(s.styles.Error(msgInvalidNumber) + "\n")
		return 0, false, nil
	}
	return n, true, nil
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
