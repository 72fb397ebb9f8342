package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import cards from a JSON export",
		Long:  "Import cards from a JSON array (use - for stdin). Existing cards come first; imported cards are appended and yield on ID conflicts. Malformed entries are skipped and reported.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		exitErr("read import file", err)
	}

	log := cliLogger()
	defer log.Sync()

	b, _, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	report, err := b.Import(cmd.Context(), data)
	if err != nil {
		exitErr("import", err)
	}

	if formatFlag == "json" {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("imported %d cards (%d duplicates skipped)\n", report.Imported, report.Duplicates)
	for _, s := range report.Skipped {
		fmt.Printf("skipped entry %d: %s\n", s.Index, s.Reason)
	}
}
