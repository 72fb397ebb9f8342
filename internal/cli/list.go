package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/charlaboard/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		Long:  "List cards, optionally restricted to one column and filtered by a free-text query and tags (all given tags must be present).",
		Run:   runList,
	}

	cmd.Flags().StringP("column", "c", "", "Column: ideas, dev, pause, or done")
	cmd.Flags().StringP("query", "q", "", "Free-text filter over title, content, and tags")
	cmd.Flags().StringArrayP("tag", "T", nil, "Require this tag (repeatable)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	colFlag, _ := cmd.Flags().GetString("column")
	query, _ := cmd.Flags().GetString("query")
	tags, _ := cmd.Flags().GetStringArray("tag")

	columns := model.Columns()
	if colFlag != "" {
		col := model.Column(colFlag)
		if !col.Known() {
			exitErr("list", fmt.Errorf("unknown column %q", colFlag))
		}
		columns = []model.Column{col}
	}

	log := cliLogger()
	defer log.Sync()

	b, _, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	if formatFlag == "json" {
		var out []model.Card
		for _, col := range columns {
			out = append(out, b.Visible(col, query, tags)...)
		}
		if out == nil {
			out = []model.Card{}
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, col := range columns {
		cards := b.Visible(col, query, tags)
		fmt.Printf("%s (%d)\n", col.Title(), len(cards))
		for _, c := range cards {
			line := fmt.Sprintf("  %d  %s", c.ID, c.Title)
			if len(c.Tags) > 0 {
				line += "  #" + strings.Join(c.Tags, " #")
			}
			fmt.Println(line)
		}
	}
}
