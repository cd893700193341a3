// Package main is the entry point for the datepick CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/config"
	"github.com/hy4ri/datepick/internal/debuglog"
	"github.com/hy4ri/datepick/internal/tui"
)

const version = "0.1.0"

// errCancelled is returned when the picker closes without a date.
var errCancelled = errors.New("cancelled")

const helpText = `datepick - pick a date in the terminal

USAGE:
    datepick [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --date M/D/YYYY     Initial date (default: today)
    --min M/D/YYYY      Earliest selectable date
    --max M/D/YYYY      Latest selectable date
    --title TEXT        Dialog title
    --copy              Copy the chosen date to the clipboard
    --iso               Print YYYY-MM-DD instead of M/D/YYYY
    --demo              Open the demo form with both picker modes

The chosen date is printed to stdout. Exit status is 0 when a date was
confirmed and 1 when the picker was cancelled.

CONFIGURATION:
    Config file: ~/.config/datepick/config.yaml

KEYBINDINGS:
    ←↑↓→ / hjkl   Move the selection (or the month/year cursor)
    [ / ]         Previous / next month, year or year range
    Tab / m       Days → months → years
    t             Jump to today
    Enter         Confirm (or pick the highlighted month/year)
    Esc           Cancel
    ?             More keys
`

const configTemplate = `# datepick configuration
# Location: ~/.config/datepick/config.yaml

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Dialog title; empty uses the translated default
  title: ""
  # Label language: en or fr
  language: en
  # Copy confirmed dates to the clipboard
  copy_on_confirm: false
  # Print YYYY-MM-DD instead of M/D/YYYY
  iso_output: false

picker:
  # Selectable range, M/D/YYYY; leave empty for no limit
  min_date: ""
  max_date: ""

animation:
  fps: 60
  frequency: 8.0
  damping: 0.7
  fade_ms: 150
  pulse_scale: 0.85
  pulse_ms: 80

haptics:
  # Ring the terminal bell on confirm
  enabled: true
  # Also ring on every selection change
  bell_on_selection: false

viewport:
  # Used when the terminal reports an unusable size
  fallback_width: 80
  fallback_height: 24

debug:
  # Write diagnostics to this file
  log_file: ""
`

func main() {
	if err := run(os.Stdout); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout io.Writer) error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		copyResult  bool
		isoOutput   bool
		demo        bool
		dateFlag    string
		minFlag     string
		maxFlag     string
		titleFlag   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&copyResult, "copy", false, "Copy the chosen date to the clipboard")
	flag.BoolVar(&isoOutput, "iso", false, "Print YYYY-MM-DD")
	flag.BoolVar(&demo, "demo", false, "Open the demo form")
	flag.StringVar(&dateFlag, "date", "", "Initial date")
	flag.StringVar(&minFlag, "min", "", "Earliest selectable date")
	flag.StringVar(&maxFlag, "max", "", "Latest selectable date")
	flag.StringVar(&titleFlag, "title", "", "Dialog title")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Fprint(stdout, helpText)
		return nil
	}

	if showVersion {
		fmt.Fprintf(stdout, "datepick version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Debug.LogFile != "" {
		closer, err := debuglog.Open(cfg.Debug.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer closer.Close()
		}
	}

	if isoOutput {
		cfg.UI.ISOOutput = true
	}
	if copyResult {
		cfg.UI.CopyOnConfirm = true
	}

	if demo {
		return runDemo(cfg)
	}

	req, err := pickerRequest(cfg, dateFlag, minFlag, maxFlag, titleFlag)
	if err != nil {
		return err
	}
	return runPicker(cfg, req, stdout)
}

// pickerRequest turns the date flags into a request. Flags override the
// config's range; unparsable dates are rejected.
func pickerRequest(cfg *config.Config, date, min, max, title string) (tui.PickerRequest, error) {
	req := tui.PickerRequest{Title: title}

	if date != "" {
		d, ok := calendar.Parse(date)
		if !ok {
			return req, fmt.Errorf("invalid --date %q, expected M/D/YYYY", date)
		}
		req.Value = &d
	}

	if min == "" && max == "" {
		return req, nil
	}
	lo, hi := cfg.Picker.MinDate, cfg.Picker.MaxDate
	if min != "" {
		if _, ok := calendar.Parse(min); !ok {
			return req, fmt.Errorf("invalid --min %q, expected M/D/YYYY", min)
		}
		lo = min
	}
	if max != "" {
		if _, ok := calendar.Parse(max); !ok {
			return req, fmt.Errorf("invalid --max %q, expected M/D/YYYY", max)
		}
		hi = max
	}
	bounds := calendar.NewBounds(lo, hi)
	req.Bounds = &bounds
	return req, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
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

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runPicker shows a single picker and prints the confirmed date.
func runPicker(cfg *config.Config, req tui.PickerRequest, stdout io.Writer) error {
	app := tui.NewPickerApp(cfg, req, tui.Deps{})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	d, ok := app.Result()
	if !ok {
		return errCancelled
	}

	out := d.String()
	if cfg.UI.ISOOutput {
		out = d.ISO()
	}
	fmt.Fprintln(stdout, out)

	if cfg.UI.CopyOnConfirm {
		if err := clipboard.WriteAll(out); err != nil {
			// Non-fatal: the date was still printed
			fmt.Fprintf(os.Stderr, "Warning: failed to copy: %v\n", err)
		}
	}
	return nil
}

// runDemo starts the demo form.
func runDemo(cfg *config.Config) error {
	app := tui.NewApp(cfg, tui.Deps{})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
