package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/unveil"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in reveal animations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := variantRows(unveil.DefaultVariants())
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Variant", "Hidden", "Visible", "Duration", "Delay", "Stagger"}, rows))
			return nil
		},
	}
}

func variantRows(set *unveil.VariantSet) [][]string {
	var rows [][]string
	for _, name := range set.Names() {
		v := set.MustGet(name)
		stagger := "-"
		if v.Staggers() {
			stagger = seconds(v.Stagger.Increment)
		}
		rows = append(rows, []string{
			name,
			describeVisual(v.Hidden),
			describeVisual(v.Visible),
			seconds(v.Transition.Duration),
			seconds(v.Transition.Delay),
			stagger,
		})
	}
	return rows
}

func describeVisual(vs unveil.VisualState) string {
	s := "opacity " + strconv.FormatFloat(vs.Opacity, 'g', -1, 64)
	if vs.Has(unveil.FieldOffsetY) {
		s += ", y " + strconv.FormatFloat(vs.OffsetY, 'g', -1, 64)
	}
	return s
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "s"
}
