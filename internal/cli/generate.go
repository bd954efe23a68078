package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/halftone/internal/colour"
	"github.com/jmylchreest/halftone/internal/config"
	"github.com/jmylchreest/halftone/internal/halftone"
	"github.com/jmylchreest/halftone/internal/image"
	httputil "github.com/jmylchreest/halftone/internal/util/http"
	"github.com/jmylchreest/halftone/internal/util/imagecache"
)

// rampFlags holds the ramp overrides. Only flags the user set replace the
// configured values.
type rampFlags struct {
	light    string
	dark     string
	k        float64
	count    int
	cos      bool
	exponent float64
}

// flagSet registers the ramp flags with configured defaults for help.
func (r *rampFlags) flagSet() *pflag.FlagSet {
	d := config.Default().Ramp
	fs := pflag.NewFlagSet("ramp", pflag.ContinueOnError)
	fs.StringVar(&r.light, "light", d.Light, "lit tone")
	fs.StringVar(&r.dark, "dark", d.Dark, `shadow tone, or "half" for the light tone at half lightness`)
	fs.Float64VarP(&r.k, "k", "k", d.K, "curvature in [-1, 1]")
	fs.IntVarP(&r.count, "count", "n", d.Count, "number of half tones between dark and light")
	fs.BoolVar(&r.cos, "cos", d.Cos, "cosine spacing of the samples")
	fs.Float64Var(&r.exponent, "exponent", d.Exponent, "reshape sample positions as t^exponent")
	return fs
}

// apply copies the flags the user changed onto ramp.
func (r *rampFlags) apply(flags *pflag.FlagSet, ramp *config.Ramp) {
	if flags.Changed("light") {
		ramp.Light = r.light
	}
	if flags.Changed("dark") {
		ramp.Dark = r.dark
	}
	if flags.Changed("k") {
		ramp.K = r.k
	}
	if flags.Changed("count") {
		ramp.Count = r.count
	}
	if flags.Changed("cos") {
		ramp.Cos = r.cos
	}
	if flags.Changed("exponent") {
		ramp.Exponent = r.exponent
	}
}

type generateResult struct {
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Settings halftone.Settings `json:"settings" yaml:"settings"`
	Tones    []toneRow         `json:"tones" yaml:"tones"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		ramp      rampFlags
		name      string
		fromImage string
		fraction  float64
		timeout   time.Duration
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a halftone set between a dark and a light tone",
		Long: `Generate a halftone set: tones sampled along the Oklch path from the dark
tone to the light tone, lightest first.

The light and dark tones come from the config file, HALFTONE_* variables,
flags, or the lightest and darkest pixels of an image.

Examples:
  halftone generate --light 'oklch(0.8 0.1 60deg)' --dark half
  halftone generate --light '#e0c090' --dark '#302040' -n 7 -k 0.5
  halftone generate --from-image wallpaper.jpg --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := a.config.Ramp
			ramp.apply(cmd.Flags(), &r)

			var seeded bool
			var light, dark colour.Vec3
			if fromImage != "" {
				var err error
				light, dark, err = a.seed(cmd.Context(), fromImage, fraction, timeout, !noCache)
				if err != nil {
					return err
				}
				seeded = true
				// seeded tones are already Oklch; express them so Settings
				// can resolve "half" against the seeded light tone
				r.Light = colour.NewValue(colour.Oklch, light).String()
				if !cmd.Flags().Changed("dark") {
					r.Dark = colour.NewValue(colour.Oklch, dark).String()
				}
			}

			s, err := r.Settings(a.conv)
			if err != nil {
				return err
			}
			set, err := halftone.Generate(s)
			if err != nil {
				return err
			}
			set.Rename(name)
			a.logger.Debug("generated set", "name", name, "tones", set.Len(), "seeded", seeded)

			rows, err := a.describeTones(set.Tones(), s.Intervals())
			if err != nil {
				return err
			}
			res := generateResult{Name: set.Name(), Settings: s, Tones: rows}

			p := a.printer(cmd)
			if p.format == config.FormatTable && res.Name != "" {
				fmt.Fprintf(p.w, "Set: %s\n\n", res.Name)
			}
			return p.print(res, func() *Table { return toneTable(p, rows) })
		},
	}

	cmd.Flags().AddFlagSet(ramp.flagSet())
	cmd.Flags().StringVar(&name, "name", "", "display name of the set")
	cmd.Flags().StringVar(&fromImage, "from-image", "",
		fmt.Sprintf("seed light and dark tones from an image file or URL (%s)", strings.Join(image.SupportedImageExtensions(), ", ")))
	cmd.Flags().Float64Var(&fraction, "seed-fraction", 0.1, "share of pixels averaged for each seed tone")
	cmd.Flags().DurationVar(&timeout, "timeout", httputil.DefaultTimeout, "image download timeout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "download images without the on-disk cache")
	return cmd
}

// seed loads an image and picks its light and dark tones.
func (a *app) seed(ctx context.Context, path string, fraction float64, timeout time.Duration, cached bool) (light, dark colour.Vec3, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := image.NewSmartLoader(httputil.FetchOptions{Timeout: timeout}, a.logger.Named("image"))
	if cached && image.IsURL(path) {
		cache, err := imagecache.New("", imagecache.WithLogger(a.logger.Named("cache")))
		if err != nil {
			a.logger.Warn("image cache unavailable", "error", err)
		} else {
			loader.WithCache(cache)
		}
	}
	img, err := loader.Load(ctx, path)
	if err != nil {
		return light, dark, err
	}
	light, dark, err = image.SeedTones(img, a.conv, fraction)
	if err != nil {
		return light, dark, fmt.Errorf("seed tones from %s: %w", path, err)
	}
	a.logger.Debug("seeded tones", "path", path, "light", light, "dark", dark)
	return light, dark, nil
}
