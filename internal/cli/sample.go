package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tower-picker/internal/app"
	"github.com/atomicstack/tower-picker/internal/catalog"
	"github.com/atomicstack/tower-picker/internal/config"
	"github.com/atomicstack/tower-picker/internal/format/table"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type member struct {
	Tower    string `json:"tower"`
	Category string `json:"category"`
	Asset    string `json:"asset"`
}

func sampleCmd(rt *runtime) *cobra.Command {
	var (
		size       int
		categories []string
		towers     []string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print one random team and exit",
		Long: "Opens a throwaway session, applies the category and tower filters in\n" +
			"that order, then samples a team from the selected towers.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = rt.cfg.App.ResolvedTeamSize()
			}
			store, err := app.NewStore(rt.cfg.App)
			if err != nil {
				return err
			}
			sess := store.Open()
			defer store.Close(sess.ID)
			mgr := store.Manager()

			if cmd.Flags().Changed("category") {
				if err := mgr.SetCategories(sess, categories); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("tower") {
				if err := mgr.SetItems(sess, towers); err != nil {
					return err
				}
			}
			team, err := mgr.SampleTeam(sess, size)
			if err != nil {
				return err
			}
			return writeTeam(cmd.OutOrStdout(), format, describe(mgr.Catalog(), team))
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "team size (defaults to --team-size)")
	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "limit to a category; repeatable")
	cmd.Flags().StringArrayVarP(&towers, "tower", "t", nil, "limit to a tower within the categories; repeatable")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text or json")
	return cmd
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	}
	return fmt.Errorf("%w: unknown format %q (want %s or %s)", config.ErrInvalid, format, formatText, formatJSON)
}

func describe(c *catalog.Catalog, team []string) []member {
	out := make([]member, 0, len(team))
	for _, tower := range team {
		category, _ := c.CategoryOf(tower)
		out = append(out, member{Tower: tower, Category: category, Asset: c.Asset(tower)})
	}
	return out
}

func writeTeam(w io.Writer, format string, team []member) error {
	if format == formatJSON {
		return writeJSON(w, struct {
			Team []member `json:"team"`
		}{team})
	}
	rows := make([][]string, 0, len(team))
	for _, m := range team {
		rows = append(rows, []string{m.Tower, m.Category, m.Asset})
	}
	return writeLines(w, table.Format(rows, nil))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
