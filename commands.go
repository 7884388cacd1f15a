package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kbheight/config"
	"kbheight/keyboard"
	"kbheight/log"
	"kbheight/ui"
	"kbheight/ui/layout"
)

// displayFlags select the display metrics: a profile, optionally overridden
// field by field.
type displayFlags struct {
	profile string
	width   int
	height  int
	ydpi    float64
}

func (f *displayFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.profile, "profile", "p", "", "Device profile from the config (default: the config's default profile)")
	fs.IntVar(&f.width, "width", 0, "Screen width in px, overrides the profile")
	fs.IntVar(&f.height, "height", 0, "Screen height in px, overrides the profile")
	fs.Float64Var(&f.ydpi, "ydpi", 0, "Vertical density in dpi, 0 if unknown; overrides the profile")
}

// metrics resolves the flags against cfg. Flags given on the command line win
// over the profile; when all three are given no profile is needed.
func (f *displayFlags) metrics(cmd *cobra.Command, cfg config.Config) (keyboard.DisplayMetrics, error) {
	fs := cmd.Flags()
	var m keyboard.DisplayMetrics
	if f.profile != "" || !fs.Changed("width") || !fs.Changed("height") || !fs.Changed("ydpi") {
		name := f.profile
		if name == "" {
			name = cfg.DefaultProfile
		}
		p, err := cfg.Profile(name)
		if err != nil {
			return m, fmt.Errorf("%w (available: %s)", err, strings.Join(cfg.ProfileNames(), ", "))
		}
		m = p.Metrics()
	}

	if fs.Changed("width") {
		m.ScreenWidthPx = f.width
	}
	if fs.Changed("height") {
		m.ScreenHeightPx = f.height
	}
	if fs.Changed("ydpi") {
		m.VerticalDensity = f.ydpi
	}
	return m, nil
}

// rowFlags override the configured row layout.
type rowFlags struct {
	rows      int
	keyHeight int
	gap       int
}

func (f *rowFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.rows, "rows", 0, "Row count of the row-based layout (default from config)")
	fs.IntVar(&f.keyHeight, "key-height", 0, "Key height of the row-based layout in px (default from config)")
	fs.IntVar(&f.gap, "gap", 0, "Existing vertical gap between rows in px (default from config)")
}

func (f *rowFlags) params(cmd *cobra.Command, cfg config.Config) keyboard.RowLayoutParams {
	fs := cmd.Flags()
	row := cfg.RowLayout.Params()
	if fs.Changed("rows") {
		row.RowCount = f.rows
	}
	if fs.Changed("key-height") {
		row.KeyHeightPx = f.keyHeight
	}
	if fs.Changed("gap") {
		row.ExistingVerticalGapPx = f.gap
	}
	return row
}

func newHeightCmd() *cobra.Command {
	var (
		display   displayFlags
		row       rowFlags
		gridWidth int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "height",
		Short: "Compute the standard keyboard height for a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			m, err := display.metrics(cmd, cfg)
			if err != nil {
				return err
			}
			params := row.params(cmd, cfg)
			if err := keyboard.Validate(m, gridWidth, params); err != nil {
				return err
			}

			s := keyboard.ComputeSizing(m, gridWidth, params)
			log.InfoLog.Printf("height for %s (grid width %d): %d px", m, s.Grid.Width, s.StandardHeight)
			log.LayoutTrace("sizing %+v", s)

			if asJSON || cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			return writeReport(cmd.OutOrStdout(), s)
		},
	}

	display.register(cmd)
	row.register(cmd)
	cmd.Flags().IntVar(&gridWidth, "grid-width", 0, "Width available to the grid layout in px (default: the screen width)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full breakdown as JSON")
	return cmd
}

// gapResult is the output of the gap command.
type gapResult struct {
	StandardHeight int                      `json:"standard_height"`
	Row            keyboard.RowLayoutParams `json:"row"`
	AdjustedGap    int                      `json:"adjusted_gap"`
	RowHeight      int                      `json:"row_height"`
}

func newGapCmd() *cobra.Command {
	var (
		display        displayFlags
		row            rowFlags
		standardHeight int
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "gap",
		Short: "Compute the row gap that stretches a row layout to the standard height",
		Long: "Compute the row gap that stretches a row-based layout to the standard height.\n" +
			"The standard height is taken from --standard-height, or computed from the display flags.\n" +
			"--standard-height cannot be combined with --profile, --width, --height or --ydpi.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			params := row.params(cmd, cfg)

			if cmd.Flags().Changed("standard-height") {
				if standardHeight < 0 {
					return &keyboard.InvalidGeometryError{Field: "standard height", Value: standardHeight, Want: ">= 0"}
				}
				if err := keyboard.ValidateRow(params); err != nil {
					return err
				}
			} else {
				m, err := display.metrics(cmd, cfg)
				if err != nil {
					return err
				}
				if err := keyboard.Validate(m, 0, params); err != nil {
					return err
				}
				standardHeight = keyboard.StandardHeight(m)
			}

			gap := keyboard.AdjustGap(standardHeight, params)
			res := gapResult{
				StandardHeight: standardHeight,
				Row:            params,
				AdjustedGap:    gap,
				RowHeight:      params.Height(gap),
			}
			log.InfoLog.Printf("gap for standard height %d and %d rows: %d px", standardHeight, params.RowCount, gap)

			if asJSON || cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gap %d px (row height %d px, standard height %d px)\n",
				res.AdjustedGap, res.RowHeight, res.StandardHeight)
			return err
		},
	}

	display.register(cmd)
	row.register(cmd)
	cmd.Flags().IntVar(&standardHeight, "standard-height", 0, "Standard keyboard height in px, replaces the display flags (default: computed from the display)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	for _, name := range []string{"profile", "width", "height", "ydpi"} {
		cmd.MarkFlagsMutuallyExclusive("standard-height", name)
	}
	return cmd
}

// profileEntry is one line of the profiles command.
type profileEntry struct {
	config.DeviceProfile
	Default        bool `json:"default"`
	StandardHeight int  `json:"standard_height"`
	AdjustedGap    int  `json:"adjusted_gap"`
}

func newProfilesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the configured device profiles with their standard heights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			row := cfg.RowLayout.Params()
			entries := make([]profileEntry, 0, len(cfg.Profiles))
			for _, p := range cfg.Profiles {
				s := keyboard.ComputeSizing(p.Metrics(), 0, row)
				entries = append(entries, profileEntry{
					DeviceProfile:  p,
					Default:        p.Name == cfg.DefaultProfile,
					StandardHeight: s.StandardHeight,
					AdjustedGap:    s.AdjustedGap,
				})
			}

			if asJSON || cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return writeProfiles(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the profiles as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(w io.Writer, s keyboard.Sizing) error {
	width, tty := terminalWidth(w)
	ui.ConfigureColor(tty)
	_, err := fmt.Fprintln(w, ui.RenderReport(s, ui.ReportOptions{Width: width, Plain: !tty}))
	return err
}

func writeProfiles(w io.Writer, entries []profileEntry) error {
	_, tty := terminalWidth(w)
	ui.ConfigureColor(tty)

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorBorder)).
		Headers("PROFILE", "DISPLAY", "ORIENTATION", "HEIGHT", "GAP").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})

	for _, e := range entries {
		name := e.Name
		if e.Default {
			name += " *"
		}
		m := e.Metrics()
		t.Row(name, m.String(), m.Orientation().String(),
			fmt.Sprintf("%d px", e.StandardHeight), fmt.Sprintf("%d px", e.AdjustedGap))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// terminalWidth returns the width a report written to w may use and whether
// w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return layout.ResultMaxWidth, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return layout.ResultMaxWidth, true
	}
	return min(width, layout.ResultMaxWidth), true
}
