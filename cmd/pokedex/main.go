package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"pokedex/internal/cli"
	"pokedex/internal/engine"
)

type Configuration struct {
	DataPath string
	Seed     uint64
	Verbose  bool
	NoColor  bool
}

func main() {
	config := parseArguments()

	if !config.Verbose {
		log.SetOutput(io.Discard)
	}

	store, err := engine.Load(config.DataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load pokedex: %v\n", err)
		os.Exit(1)
	}
	eng := engine.New(store, engine.DefaultColumns(), engine.NewRand(config.Seed))

	out := colorable.NewColorableStdout()
	styles := cli.PlainStyles()
	if !config.NoColor && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		styles = cli.ColorStyles(out)
	}

	if err := cli.NewSession(eng, os.Stdin, out, styles).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DataPath, "data", "Pokemon.csv", "Path to the pokedex CSV file")
	flag.Uint64Var(&config.Seed, "seed", 0, "Seed for random teams (0 picks one)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Log load progress to stderr")
	flag.BoolVar(&config.NoColor, "no-color", false, "Disable colored output")

	flag.Parse()

	return config
}
