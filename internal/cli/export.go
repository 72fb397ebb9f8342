package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/charlaboard/internal/gateway"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the board as JSON",
		Long:  fmt.Sprintf("Export all cards as a pretty-printed JSON array. Writes %s unless another file is given; use - for stdout.", gateway.DefaultExportFilename),
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	target := gateway.DefaultExportFilename
	if len(args) == 1 {
		target = args[0]
	}

	log := cliLogger()
	defer log.Sync()

	b, _, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	data, err := b.Export()
	if err != nil {
		exitErr("export", err)
	}

	if target == "-" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		exitErr("write export file", err)
	}
	fmt.Printf("exported %d cards to %s\n", len(b.Cards()), target)
}
