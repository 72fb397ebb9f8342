package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/charlaboard/internal/app"
	"github.com/nhle/charlaboard/internal/logger"
)

func init() {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long:  "Open the full-screen terminal board with search, tag filters, and drag-style card moves.",
		Run:   runBoard,
	}

	RootCmd.AddCommand(cmd)
}

func runBoard(cmd *cobra.Command, args []string) {
	// Log lines would tear the rendered board, so the TUI runs silent.
	log := logger.Nop()

	b, cfg, cleanup, err := openBoard(cmd.Context(), log)
	if err != nil {
		exitErr("open board", err)
	}
	defer cleanup()

	m := app.New(b, cfg.Board.AutoClassify)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		exitErr("run board", err)
	}
}
