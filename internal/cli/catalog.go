package cli

import (
	"strconv"

	"github.com/atomicstack/tower-picker/internal/app"
	"github.com/atomicstack/tower-picker/internal/format/table"
	"github.com/spf13/cobra"
)

func catalogCmd(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the towers available to the picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			c, err := app.LoadCatalog(rt.cfg.App.CatalogPath)
			if err != nil {
				return err
			}
			// JSON output is accepted back by --catalog.
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{"categories": c.Categories()})
			}
			var rows [][]string
			for _, cat := range c.Categories() {
				for i, tower := range cat.Items {
					rows = append(rows, []string{cat.Name, strconv.Itoa(i + 1), tower, c.Asset(tower)})
				}
			}
			return writeLines(cmd.OutOrStdout(), table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text or json")
	return cmd
}
