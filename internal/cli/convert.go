package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/halftone/internal/colour"
)

type convertResult struct {
	Input  colour.Value   `json:"input" yaml:"input"`
	Output []colour.Value `json:"output" yaml:"output"`
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		to  []string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour to other spaces",
		Long: `Convert a colour to one or more colour spaces.

Examples:
  halftone convert '#3366cc'
  halftone convert 'oklch(0.7 0.12 140deg)' --to hex,srgb
  halftone convert 'xyz(0.2 0.3 0.4)' --all --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := colour.Parse(args[0])
			if err != nil {
				return err
			}

			targets := colour.Spaces()
			if !all {
				targets = targets[:0:0]
				for _, name := range to {
					s, err := colour.ParseSpace(name)
					if err != nil {
						return err
					}
					targets = append(targets, s)
				}
			}

			res := convertResult{Input: in}
			for _, s := range targets {
				out, err := a.conv.Convert(in, s)
				if err != nil {
					return err
				}
				res.Output = append(res.Output, out)
			}
			a.logger.Debug("converted", "input", in.String(), "targets", len(targets))

			p := a.printer(cmd)
			return p.print(res, func() *Table {
				srgb, _ := a.conv.Convert(in, colour.SRGB)
				t := NewTable(p.withPreview("Space", "Value"))
				for _, out := range res.Output {
					t.AddRow(p.row(srgb.Vec, string(out.Space), out.String()))
				}
				return t
			})
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", []string{"oklch"}, fmt.Sprintf("target spaces (%s)", spaceKeywords()))
	cmd.Flags().BoolVar(&all, "all", false, "convert to every space")
	cmd.MarkFlagsMutuallyExclusive("to", "all")
	return cmd
}

func spaceKeywords() string {
	names := make([]string, 0, len(colour.Spaces()))
	for _, s := range colour.Spaces() {
		names = append(names, s.Keyword())
	}
	return strings.Join(names, ", ")
}
