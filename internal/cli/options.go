package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/errmsg"
)

// newOptionsCmd prints the options the carousel would start with and where
// each value comes from.
func newOptionsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the effective carousel options for a deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := prepare(cmd, f)
			if err != nil {
				return err
			}
			defer e.Close()

			var saved map[string]string
			if e.state != nil {
				if saved, err = e.state.GetOptions(e.deck.ID()); err != nil {
					return errmsg.Wrap(errmsg.OpStateRestore, err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "deck %s (%s cards)\n", e.deck.Name, humanize.Comma(int64(len(e.deck.Cards))))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, name := range carousel.OptionNames {
				v, _ := e.options.Get(name)
				source := "config"
				switch {
				case slices.Contains(e.pinned, name):
					source = "flag"
				case saved[name] != "":
					v, source = saved[name], "saved"
				}
				fmt.Fprintf(w, "%s\t%v\t%s\n", name, v, source)
			}
			return w.Flush()
		},
	}
}
