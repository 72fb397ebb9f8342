package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/classify"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a card's title or content",
		Long:  "Edit a card. Changing the content recomputes the summary and tags; the card stays in its column.",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("content", "c", "", "New content")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitErr("parse id", err)
	}

	if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
		exitErr("edit", fmt.Errorf("nothing to change, pass --title or --content"))
	}

	log := cliLogger()
	defer log.Sync()

	b, _, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	if _, ok := b.Get(id); !ok {
		exitErr("edit", fmt.Errorf("card %d not found", id))
	}

	var patch board.CardPatch
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		summary := classify.Summarize(content, classify.MaxSummaryChars)
		tags := classify.Classify(content).Tags
		patch.Content = &content
		patch.Summary = &summary
		patch.Tags = &tags
	}

	if err := b.Update(cmd.Context(), id, patch); err != nil {
		exitErr("update card", err)
	}

	card, _ := b.Get(id)
	if formatFlag == "json" {
		out, _ := json.MarshalIndent(card, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("updated %d [%s] %s\n", card.ID, card.Column, card.Title)
}
