// ABOUTME: Interactive demo host for the tab strip renderer
// ABOUTME: Wires bubbletea events and bubblezone clicks into the core handlers

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jessarcher/bufferline/internal/config"
	"github.com/jessarcher/bufferline/internal/log"
	"github.com/jessarcher/bufferline/pkg/tui/theme"
)

type cliArgs struct {
	configPath string
	keysPath   string
	themeName  string
	verbose    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "Path to a YAML options file")
	flag.StringVar(&args.keysPath, "keys", "", "Path to a JSON keybindings file")
	flag.StringVar(&args.themeName, "theme", "", "Built-in theme name or a JSON theme file")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to stderr")

	flag.Parse()
	return args
}

func main() {
	args := parseFlags()
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	opts, err := config.Load(args.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bufferline: %v\n", err)
		os.Exit(1)
	}

	kb := config.NewKeybindings()
	if args.keysPath != "" {
		kb, err = config.LoadKeybindings(args.keysPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bufferline: %v\n", err)
			os.Exit(1)
		}
	}

	if err := applyTheme(args.themeName, opts.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "bufferline: %v\n", err)
		os.Exit(1)
	}

	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(newModel(opts, kb),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bufferline: %v\n", err)
		os.Exit(1)
	}
}

// applyTheme resolves the theme by flag first, options file second. Names
// are tried as builtins, then as a theme file path.
func applyTheme(flagName, optsName string) error {
	name := flagName
	if name == "" {
		name = optsName
	}
	if name == "" {
		return nil
	}

	if th := theme.Builtin(name); th != nil {
		theme.Set(th)
		return nil
	}
	th, err := theme.LoadFile(name)
	if err != nil {
		return fmt.Errorf("unknown theme %q: %w", name, err)
	}
	theme.Set(th)
	return nil
}
