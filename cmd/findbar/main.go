// Package main is the entry point for the findbar document finder.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samuelfullerthomas/findbar/internal/config"
	"github.com/samuelfullerthomas/findbar/internal/find"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
	"github.com/samuelfullerthomas/findbar/internal/tui"
)

const version = "0.1.0"

const helpText = `findbar - Find in a text file from the terminal

USAGE:
    findbar [OPTIONS] FILE

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --config PATH     Read configuration from PATH
    -q QUERY          Start with QUERY in the search bar

CONFIGURATION:
    Config file: ~/.config/findbar/config.yaml
    Set FINDBAR_DEBUG=1 to write a debug.log in the current directory.

QUERIES:
    text        Substring, case-insensitive unless it has an upper-case letter
    #word       Whole word
    @Text       Case-sensitive substring
    :N          Go to line N

KEYBINDINGS:
    Search bar:
        Up/Down         Recall previous/next query
        Enter           Confirm query (again to move to the next result)
        Ctrl+n/Tab      Next result
        Ctrl+p/S-Tab    Previous result
        Esc             Close the search bar

    Document:
        /           Open the search bar
        n/N         Next/previous result
        y           Copy the current line
        j/k         Scroll down/up
        q           Quit
`

const configTemplate = `# findbar configuration
# Location: ~/.config/findbar/config.yaml

ui:
  # Placeholder shown in the empty search field (default: "Search in file…")
  placeholder: ""

  # Search bar width: "", "small" or "big"
  size: ""

  # Show the close button next to the field (default: true)
  show_close: true

  # Ring the terminal bell when a confirmed query has no results (default: true)
  bell: true

  # Plain queries ignore case unless they contain an upper-case letter (default: true)
  smart_case: true

# Override any UI string by its key
# strings:
#   editor.noResults: "Nothing here"
#   editor.searchResults.summary: "%d / %d"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		query       string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&query, "q", "", "Initial query")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("findbar version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	if flag.NArg() != 1 {
		fmt.Print(helpText)
		return fmt.Errorf("expected exactly one FILE argument")
	}

	return runApp(flag.Arg(0), configPath, query)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// setupLogging sends the standard logger to debug.log when FINDBAR_DEBUG is
// set, and discards it otherwise so it cannot draw over the TUI.
func setupLogging() (io.Closer, error) {
	if os.Getenv("FINDBAR_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile("debug.log", "findbar")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

// runApp starts the main TUI application.
func runApp(path, configPath, query string) error {
	closer, err := setupLogging()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	doc, err := find.Load(path)
	if err != nil {
		return err
	}
	log.Printf("loaded %s (%d lines)", doc.Path, len(doc.Lines))

	app := tui.NewApp(doc, cfg, l10n.New(cfg.Strings), query)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
