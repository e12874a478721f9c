package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pokedex/internal/engine"
)

const testCSV = `No,Name,Type 1,Type 2,Total,HP,Attack,Defense,Sp. Atk,Sp. Def,Speed,Generation,Legendary
1,Bulbasaur,Grass,Poison,318,45,49,49,65,65,45,1,FALSE
2,Ivysaur,Grass,Poison,405,60,62,63,80,80,60,1,FALSE
4,Charmander,Fire,,309,39,52,43,60,50,65,1,FALSE
146,Moltres,Fire,Flying,580,90,100,90,125,85,90,1,TRUE
250,Ho-oh,Fire,Flying,680,106,130,90,110,154,90,2,TRUE
`

// runScript feeds input to a fresh session and returns what it printed.
func runScript(t *testing.T, input string) string {
	t.Helper()
	store, err := engine.Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Failed to parse pokedex: %v", err)
	}
	eng := engine.New(store, engine.DefaultColumns(), engine.NewRand(3))

	var out bytes.Buffer
	if err := NewSession(eng, strings.NewReader(input), &out, PlainStyles()).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestParseCommand(t *testing.T) {
	for i := 0; i <= 6; i++ {
		cmd, err := ParseCommand(" " + string(rune('0'+i)) + "\n")
		if err != nil || int(cmd) != i {
			t.Errorf("ParseCommand(%d): got %d, %v", i, cmd, err)
		}
	}
	for _, bad := range []string{"7", "-1", "one", ""} {
		if _, err := ParseCommand(bad); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("ParseCommand(%q): expected ErrUnknownCommand, got %v", bad, err)
		}
	}
}

func TestHandlersCoverMenu(t *testing.T) {
	for _, item := range menu {
		if item.cmd == CmdQuit {
			continue
		}
		if _, ok := handlers[item.cmd]; !ok {
			t.Errorf("No handler for menu option %d", item.cmd)
		}
	}
}

func TestSessionQuit(t *testing.T) {
	out := runScript(t, "0\n")

	if !strings.Contains(out, Title) {
		t.Error("Expected menu title")
	}
	if !strings.Contains(out, "6. Create a team of 10 random Pokemon") {
		t.Error("Expected team option in menu")
	}
	if !strings.HasSuffix(out, msgGoodbye+"\n") {
		t.Errorf("Expected goodbye at the end, got %q", out)
	}
}

func TestSessionEOF(t *testing.T) {
	// Input ends without choosing quit
	out := runScript(t, "1\n")
	if !strings.Contains(out, msgGoodbye) {
		t.Error("Expected goodbye on EOF")
	}
}

func TestSessionByCount(t *testing.T) {
	out := runScript(t, "1\n2\n\n0\n")

	if !strings.Contains(out, "No  Name       Type 1") {
		t.Errorf("Expected table header, got %q", out)
	}
	if !strings.Contains(out, "1   Bulbasaur  Grass") || !strings.Contains(out, "2   Ivysaur    Grass") {
		t.Errorf("Expected two rows, got %q", out)
	}
	if strings.Contains(out, "Charmander") {
		t.Error("Did not expect a third row")
	}
	if !strings.Contains(out, msgContinue) {
		t.Error("Expected pause after table")
	}
}

func TestSessionByCountMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1\n0\n\n0\n", msgNotPositive},
		{"1\n-4\n\n0\n", msgNotPositive},
		{"1\n6\n\n0\n", msgExceeds},
		{"1\nmany\n0\n", msgInvalidNumber},
	}
	for _, tt := range tests {
		out := runScript(t, tt.input)
		if !strings.Contains(out, tt.want) {
			t.Errorf("Input %q: expected %q in output", tt.input, tt.want)
		}
	}
}

func TestSessionInvalidOption(t *testing.T) {
	out := runScript(t, "9\n\nabc\n\n0\n")
	if strings.Count(out, msgInvalidOption) != 2 {
		t.Errorf("Expected two invalid option messages, got %q", out)
	}
	if n := strings.Count(out, "0. Quit"); n != 3 {
		t.Errorf("Expected the menu three times, got %d", n)
	}
}

func TestSessionFirstOfType(t *testing.T) {
	out := runScript(t, "2\n  flying \n\n0\n")
	if !strings.Contains(out, "Moltres") {
		t.Errorf("Expected Moltres, got %q", out)
	}
	if strings.Contains(out, "Ho-oh") {
		t.Error("Expected a single record")
	}

	out = runScript(t, "2\ndragon\n\n0\n")
	if !strings.Contains(out, msgNoType) {
		t.Errorf("Expected %q", msgNoType)
	}
}

func TestSessionByTotal(t *testing.T) {
	out := runScript(t, "3\n580\n\n0\n")
	if !strings.Contains(out, "Moltres") {
		t.Errorf("Expected Moltres, got %q", out)
	}

	for _, input := range []string{"999999", "0318", "+318", " 318 ", "lots"} {
		out = runScript(t, "3\n"+input+"\n\n0\n")
		if !strings.Contains(out, msgNoTotal) {
			t.Errorf("Input %q: expected %q", input, msgNoTotal)
		}
		if strings.Contains(out, "Bulbasaur") {
			t.Errorf("Input %q: did not expect Bulbasaur", input)
		}
	}
}

func TestSessionMinStats(t *testing.T) {
	out := runScript(t, "4\n100\n100\n80\n\n0\n")
	if !strings.Contains(out, "Ho-oh") || strings.Contains(out, "Moltres") {
		t.Errorf("Expected only Ho-oh, got %q", out)
	}

	out = runScript(t, "4\n500\n0\n0\n\n0\n")
	if !strings.Contains(out, msgNoStats) {
		t.Errorf("Expected %q", msgNoStats)
	}

	out = runScript(t, "4\n1\nx\n0\n")
	if !strings.Contains(out, msgInvalidNumber) {
		t.Errorf("Expected %q", msgInvalidNumber)
	}
}

func TestSessionLegendary(t *testing.T) {
	out := runScript(t, "5\nflying\nFIRE\n\n0\n")
	if !strings.Contains(out, "Moltres") || !strings.Contains(out, "Ho-oh") {
		t.Errorf("Expected Moltres and Ho-oh, got %q", out)
	}

	out = runScript(t, "5\ngrass\npoison\n\n0\n")
	if !strings.Contains(out, msgNoLegendary) {
		t.Errorf("Expected %q", msgNoLegendary)
	}
}

func TestSessionRandomTeam(t *testing.T) {
	out := runScript(t, "6\n\n0\n")
	if !strings.Contains(out, msgTeam) {
		t.Error("Expected team banner")
	}

	// header + 10 rows between the banner and the pause
	start := strings.Index(out, msgTeam)
	end := strings.Index(out[start:], msgContinue) + start
	var rows int
	for _, line := range strings.Split(out[start:end], "\n") {
		if strings.HasPrefix(line, "No ") || line == "" || line == msgTeam {
			continue
		}
		rows++
	}
	if rows != engine.TeamSize {
		t.Errorf("Expected %d team rows, got %d", engine.TeamSize, rows)
	}
}
