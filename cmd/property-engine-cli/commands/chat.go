package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/findy-ai/property-engine/cmd/property-engine-cli/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [mensaje...]",
	Short: "Answer a single chat message the way the API would",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	eng, _, err := buildEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	message := strings.Join(args, " ")

	spin := ui.NewSpinner("Pensando...")
	spin.Start()
	result := eng.Chat(ctx, message, "", nil)
	spin.Stop()

	ui.Message("%s", result.Response)
	ui.Verbose("fuente: %s, coincidencias: %d", result.Source, result.TotalMatches)
	return nil
}
