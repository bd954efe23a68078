package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/halftone/internal/colour"
)

type gamutResult struct {
	Input      colour.Value `json:"input" yaml:"input"`
	Oklab      colour.Vec3  `json:"oklab" yaml:"oklab,flow"`
	LinearRGB  colour.Vec3  `json:"linear_rgb" yaml:"linear_rgb,flow"`
	GamutError float64      `json:"gamut_error" yaml:"gamut_error"`
	InGamut    bool         `json:"in_gamut" yaml:"in_gamut"`
	Clamped    string       `json:"clamped" yaml:"clamped"`
}

func newGamutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gamut <colour>...",
		Short: "Measure how far colours lie outside the RGB gamut",
		Long: `Measure how far colours lie outside the RGB gamut.

The error is the Oklab distance between a colour and its round trip through
linear RGB with every channel clamped to [0, 1]. It is 0 for colours the
display can show.

Examples:
  halftone gamut 'oklch(0.7 0.3 140deg)'
  halftone gamut --primaries p3 'oklch(0.7 0.3 140deg)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]gamutResult, 0, len(args))
			for _, arg := range args {
				res, err := a.gamut(arg)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			p := a.printer(cmd)
			return p.print(results, func() *Table {
				t := NewTable(p.withPreview("Colour", "Linear RGB", "Error", "In gamut", "Clamped"))
				for _, r := range results {
					srgb, _ := colour.ParseHex(r.Clamped)
					t.AddRow(p.row(srgb,
						r.Input.String(),
						formatVec(r.LinearRGB),
						strconv.FormatFloat(r.GamutError, 'f', 6, 64),
						strconv.FormatBool(r.InGamut),
						r.Clamped,
					))
				}
				return t
			})
		},
	}
}

func (a *app) gamut(expr string) (gamutResult, error) {
	in, err := colour.Parse(expr)
	if err != nil {
		return gamutResult{}, err
	}
	lab, err := a.conv.Convert(in, colour.Oklab)
	if err != nil {
		return gamutResult{}, err
	}
	lin, err := a.conv.ConvertVec(lab.Vec, colour.Oklab, colour.LinearRGB)
	if err != nil {
		return gamutResult{}, err
	}
	e, err := a.conv.GamutError(lab.Vec)
	if err != nil {
		return gamutResult{}, err
	}
	hex, err := a.conv.Convert(lab, colour.StringRGB)
	if err != nil {
		return gamutResult{}, err
	}
	if e > 0 {
		a.logger.Info("colour outside gamut", "colour", in.String(), "error", e)
	}
	return gamutResult{
		Input:      in,
		Oklab:      lab.Vec,
		LinearRGB:  lin,
		GamutError: e,
		InGamut:    e == 0,
		Clamped:    hex.Hex,
	}, nil
}
