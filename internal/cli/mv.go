package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nhle/charlaboard/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "mv <id> <column>",
		Short: "Move a card to another column",
		Args:  cobra.ExactArgs(2),
		Run:   runMv,
	}

	RootCmd.AddCommand(cmd)
}

func runMv(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitErr("parse id", err)
	}
	col := model.Column(args[1])
	if !col.Known() {
		exitErr("mv", fmt.Errorf("unknown column %q", args[1]))
	}

	log := cliLogger()
	defer log.Sync()

	b, _, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	if _, ok := b.Get(id); !ok {
		exitErr("mv", fmt.Errorf("card %d not found", id))
	}

	if err := b.MoveTo(cmd.Context(), id, col); err != nil {
		exitErr("move card", err)
	}
	fmt.Printf("moved %d to %s\n", id, col)
}
