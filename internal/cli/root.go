// Package cli provides the command-line interface for halftone.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/halftone/internal/colour"
	"github.com/jmylchreest/halftone/internal/config"
	"github.com/jmylchreest/halftone/internal/version"
)

// annotationSkipConfigFile marks commands that must run without reading
// the config file, such as the one that creates it.
const annotationSkipConfigFile = "halftone/skip-config-file"

// app carries state shared by every command once flags are parsed.
type app struct {
	// persistent flags
	configPath string
	verbose    bool
	quiet      bool
	primaries  string
	format     string
	preview    string

	logger hclog.Logger
	config config.Config
	conv   *colour.Converter
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "halftone",
		Short: "Perceptual colour conversion and halftone ramps",
		Long: `Halftone converts colours between hex, sRGB, linear RGB, CIE XYZ, Oklab and
Oklch, measures how far a colour lies outside the RGB gamut, and samples
halftone ramps between a light and a dark tone along a curvature-controlled
Oklch path.

Colours are written as #rrggbb or space(a b c), for example
oklch(0.7 0.12 140deg) or srgb(0.2, 0.4, 0.6).`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/halftone/config.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.primaries, "primaries", "", "RGB primaries (srgb, p3)")
	flags.StringVar(&a.format, "format", "", "output format (table, json, yaml)")
	flags.StringVar(&a.preview, "preview", "", "colour swatches (auto, always, never)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newInterpolateCmd(a),
		newGamutCmd(a),
		newGenerateCmd(a),
		newSpacesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the logger, loads configuration and the converter.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Warn
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "halftone",
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Color:  hclog.AutoColor,
	})

	b := config.NewBuilder().WithEnvConfig()
	if cmd.Annotations[annotationSkipConfigFile] != "" {
		a.logger.Debug("skipping config file", "command", cmd.Name())
	} else if a.configPath != "" {
		b.WithFile(a.configPath, true)
	} else if path, err := config.DefaultPath(); err == nil {
		b.WithFile(path, false)
	} else {
		a.logger.Debug("no default config path", "error", err)
	}
	cfg, err := b.Build()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("primaries") {
		cfg.Primaries = a.primaries
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg

	p, err := colour.PrimariesByName(cfg.Primaries)
	if err != nil {
		return err
	}
	a.conv, err = colour.NewConverter(
		colour.WithPrimaries(p),
		colour.WithLogger(a.logger.Named("colour")),
	)
	if err != nil {
		return fmt.Errorf("build converter: %w", err)
	}
	a.logger.Debug("configured", "primaries", cfg.Primaries, "format", cfg.Format, "preview", cfg.Preview)
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Format == config.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			return a.printer(cmd).print(version.GetInfo(), nil)
		},
	}
}
