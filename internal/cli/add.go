package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [content...]",
		Short: "Create a new card",
		Long:  "Create a new card from the given content. Tags and summary are derived automatically; with auto-classify the card lands in the suggested column instead of Ideas.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("title", "t", "", "Card title (default: derived from content)")
	cmd.Flags().Bool("auto", true, "Place the card in the classifier's suggested column")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	content := strings.Join(args, " ")
	title, _ := cmd.Flags().GetString("title")

	log := cliLogger()
	defer log.Sync()

	b, cfg, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	auto := cfg.Board.AutoClassify
	if cmd.Flags().Changed("auto") {
		auto, _ = cmd.Flags().GetBool("auto")
	}

	card, err := b.Create(cmd.Context(), title, content, auto)
	if err != nil {
		exitErr("create card", err)
	}

	if formatFlag == "json" {
		out, _ := json.MarshalIndent(card, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("created %d [%s] %s\n", card.ID, card.Column, card.Title)
	if len(card.Tags) > 0 {
		fmt.Printf("tags: %s\n", strings.Join(card.Tags, ", "))
	}
}
