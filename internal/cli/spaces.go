package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/halftone/internal/colour"
)

type routeRow struct {
	From  colour.Space   `json:"from" yaml:"from"`
	To    colour.Space   `json:"to" yaml:"to"`
	Hops  int            `json:"hops" yaml:"hops"`
	Route []colour.Space `json:"route" yaml:"route,flow"`
}

func newSpacesCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "List colour spaces and the conversion route between them",
		Long: `List every pair of colour spaces with the chain of direct conversions used
between them.

Examples:
  halftone spaces
  halftone spaces --from hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources := colour.Spaces()
			if from != "" {
				s, err := colour.ParseSpace(from)
				if err != nil {
					return err
				}
				sources = []colour.Space{s}
			}

			var rows []routeRow
			for _, src := range sources {
				for _, dst := range colour.Spaces() {
					route, err := a.conv.Route(src, dst)
					if err != nil {
						return err
					}
					rows = append(rows, routeRow{From: src, To: dst, Hops: len(route) - 1, Route: route})
				}
			}

			p := a.printer(cmd)
			return p.print(rows, func() *Table {
				t := NewTable([]string{"From", "To", "Hops", "Route"})
				t.SetColumnMaxWidth(3, 64)
				for _, r := range rows {
					names := make([]string, len(r.Route))
					for i, s := range r.Route {
						names[i] = string(s)
					}
					t.AddRow([]string{string(r.From), string(r.To), strconv.Itoa(r.Hops), strings.Join(names, " → ")})
				}
				return t
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "only list routes from this space")
	return cmd
}
