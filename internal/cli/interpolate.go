package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/halftone/internal/colour"
	"github.com/jmylchreest/halftone/internal/halftone"
)

func newInterpolateCmd(a *app) *cobra.Command {
	var (
		ts []float64
		k  float64
	)

	cmd := &cobra.Command{
		Use:   "interpolate <from> <to>",
		Short: "Blend two colours in Oklch",
		Long: `Blend two colours along a curvature-controlled Oklch path.

-t sets the positions along the path, from 0 (first colour) to 1 (second
colour). -k in [-1, 1] sets the curvature: 1 follows the minor hue arc,
-1 the major arc, and values in between cut through lower chroma.

Examples:
  halftone interpolate '#204080' '#f0d090' -t 0,0.25,0.5,0.75,1
  halftone interpolate 'oklch(0.4 0.1 30deg)' 'oklch(0.8 0.1 250deg)' -k -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(k) || k < -1 || k > 1 {
				return fmt.Errorf("-k %v outside [-1, 1]: %w", k, halftone.ErrInvalidSettings)
			}
			var ends [2]colour.Vec3
			for i, arg := range args {
				v, err := colour.Parse(arg)
				if err != nil {
					return err
				}
				lch, err := a.conv.Convert(v, colour.Oklch)
				if err != nil {
					return err
				}
				ends[i] = lch.Vec
			}
			for _, t := range ts {
				if math.IsNaN(t) {
					return fmt.Errorf("-t %v is not a position: %w", t, halftone.ErrInvalidSettings)
				}
				if t < 0 || t > 1 {
					a.logger.Warn("position outside [0, 1] extrapolates", "t", t)
				}
			}

			rows, err := a.describeTones(colour.Ramp(ends[0], ends[1], ts, k), ts)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			return p.print(rows, func() *Table { return toneTable(p, rows) })
		},
	}

	cmd.Flags().Float64SliceVarP(&ts, "t", "t", []float64{0.5}, "positions along the path")
	cmd.Flags().Float64VarP(&k, "k", "k", 0, "curvature in [-1, 1]")
	return cmd
}
