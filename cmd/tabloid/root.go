// Package tabloid implements the tabloid command line interface: it reads
// tabular data in one of several formats and pretty-prints it as an
// aligned, optionally colorized terminal table.
package tabloid

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tabloid/internal/version"
	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/box"
	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/config"
	"github.com/arthur-debert/tabloid/pkg/errors"
	"github.com/arthur-debert/tabloid/pkg/ingest"
	"github.com/arthur-debert/tabloid/pkg/logging"
	"github.com/arthur-debert/tabloid/pkg/table"
)

type options struct {
	verbosity   int
	input       string
	layout      string
	title       string
	description string
	colspan     int
	aligns      []string
	formats     []string
	colorizes   []string
	styles      []string
	noColor     bool
	boxed       bool
	boxBorder   string
	boxColor    string
	configPath  string
}

// NewRootCmd builds the root command with all flags and subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tabloid [file]",
		Short: "Pretty-print tabular data for the terminal",
		Long: `tabloid reads tabular data (csv, tsv, json, yaml or xml) from a file
or standard input and renders it as an aligned, optionally color-highlighted
table. Columns can be formatted, colorized and aligned individually, by
header-derived alias or zero-based index.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "csv", "Input format: csv, tsv, json, yaml or xml")
	rootCmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "Table layout: horizontal or vertical")
	rootCmd.Flags().StringVarP(&opts.title, "title", "t", "", "Title line rendered above the table")
	rootCmd.Flags().StringVarP(&opts.description, "description", "d", "", "Description line rendered below the title")
	rootCmd.Flags().IntVar(&opts.colspan, "colspan", -1, "Blank gutter width between columns")
	rootCmd.Flags().StringSliceVar(&opts.aligns, "align", nil, "Per-column alignment, col=left|right (repeatable)")
	rootCmd.Flags().StringSliceVar(&opts.formats, "format", nil, "Per-column printf pattern, col=pattern (repeatable)")
	rootCmd.Flags().StringSliceVar(&opts.colorizes, "colorize", nil, "Per-column color, col=color (repeatable)")
	rootCmd.Flags().StringSliceVar(&opts.styles, "style", nil, "Style role color, role=color (repeatable)")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable all color output")
	rootCmd.Flags().BoolVar(&opts.boxed, "box", false, "Draw a border around the table")
	rootCmd.Flags().StringVar(&opts.boxBorder, "box-border", "normal", "Box border glyphs: normal, rounded or double")
	rootCmd.Flags().StringVar(&opts.boxColor, "box-color", "", "Box border color")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default is $XDG_CONFIG_HOME/tabloid/config.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

func runRender(cmd *cobra.Command, args []string, opts *options) error {
	logger := logging.GetLogger("cmd.render")

	format, err := ingest.ParseFormat(opts.input)
	if err != nil {
		return err
	}

	reader := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, errors.ErrInputRead, "failed to open input file %s", args[0])
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	result, err := ingest.Read(reader, format)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("columns", len(result.Header)).
		Int("rows", len(result.Rows)).
		Msg("input ingested")

	tbl := table.New()
	tbl.SetStyles(table.DefaultStyles())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Apply(tbl); err != nil {
		return err
	}

	if len(result.Header) > 0 {
		tbl.SetHeader(result.Header)
	}
	tbl.SetData(result.Rows)

	if err := applyFlags(cmd, tbl, opts); err != nil {
		return err
	}

	var rendered string
	if opts.boxed {
		boxOpts, err := boxOptions(opts)
		if err != nil {
			return err
		}
		rendered = box.DrawRenderable(tbl, boxOpts)
	} else {
		rendered = tbl.Render()
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

func applyFlags(cmd *cobra.Command, tbl *table.Table, opts *options) error {
	if opts.title != "" {
		tbl.SetTitle(opts.title)
	}
	if opts.description != "" {
		tbl.SetDescription(opts.description)
	}
	if opts.colspan >= 0 {
		tbl.SetColspan(opts.colspan)
	}
	if opts.layout != "" {
		if err := tbl.SetLayout(table.Layout(opts.layout)); err != nil {
			return err
		}
	}

	for _, spec := range opts.styles {
		role, name, err := splitSpec(spec)
		if err != nil {
			return err
		}
		if err := (&config.Config{Styles: map[string]string{role: name}}).Apply(tbl); err != nil {
			return err
		}
	}

	for _, spec := range opts.aligns {
		ref, value, err := splitSpec(spec)
		if err != nil {
			return err
		}
		a := align.Alignment(value)
		if !align.Valid(a) {
			return errors.Newf(errors.ErrInvalidInput, "unknown alignment: %s", value)
		}
		if err := tbl.Align(a, columnRef(ref)); err != nil {
			return err
		}
	}

	for _, spec := range opts.formats {
		ref, pattern, err := splitSpec(spec)
		if err != nil {
			return err
		}
		tbl.Format(table.FormatWith(pattern), columnRef(ref))
	}

	for _, spec := range opts.colorizes {
		ref, name, err := splitSpec(spec)
		if err != nil {
			return err
		}
		c, ok := color.Lookup(name)
		if !ok {
			return errors.Newf(errors.ErrInvalidInput, "unknown color: %s", name)
		}
		tbl.Colorize(table.ColorizeWith(c), columnRef(ref))
	}

	if opts.noColor || !colorCapable(cmd) {
		tbl.DisableColors()
	}
	return nil
}

// colorCapable reports whether colored output makes sense: stdout must be
// a terminal and NO_COLOR must be unset. Non-stdout writers (tests,
// pipes set up by the caller) keep colors on so output stays testable.
func colorCapable(cmd *cobra.Command) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return true
}

func splitSpec(spec string) (string, string, error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", errors.Newf(errors.ErrInvalidInput, "expected key=value, got %q", spec)
	}
	return parts[0], parts[1], nil
}

// columnRef turns a flag column key into a column reference: numeric keys
// become indices, everything else is an alias.
func columnRef(key string) interface{} {
	if idx, err := strconv.Atoi(key); err == nil {
		return idx
	}
	return key
}

func boxOptions(opts *options) (box.Options, error) {
	var border lipgloss.Border
	switch opts.boxBorder {
	case "", "normal":
		border = lipgloss.NormalBorder()
	case "rounded":
		border = lipgloss.RoundedBorder()
	case "double":
		border = lipgloss.DoubleBorder()
	default:
		return box.Options{}, errors.Newf(errors.ErrInvalidInput, "unknown box border: %s", opts.boxBorder)
	}

	c, ok := color.Lookup(opts.boxColor)
	if !ok {
		return box.Options{}, errors.Newf(errors.ErrInvalidInput, "unknown color: %s", opts.boxColor)
	}
	return box.Options{Border: border, Color: c}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tabloid version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := rootCmd.GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := rootCmd.GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := rootCmd.GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
