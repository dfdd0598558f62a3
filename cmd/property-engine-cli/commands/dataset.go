package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/findy-ai/property-engine/cmd/property-engine-cli/ui"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect the listings snapshot",
	RunE:  runDataset,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}

func runDataset(cmd *cobra.Command, args []string) error {
	eng, cfg, err := buildEngine()
	if err != nil {
		return err
	}

	stats := eng.Stats()

	ui.Section("Snapshot")
	ui.KeyValue("Archivo", cfg.Dataset.Path)
	ui.KeyValue("Propiedades", strconv.Itoa(stats.TotalProperties))
	ui.KeyValue("Barrios", strconv.Itoa(len(stats.Neighborhoods)))
	ui.KeyValue("Tipos", strconv.Itoa(len(stats.PropertyTypes)))

	if stats.TotalProperties == 0 {
		ui.Newline()
		ui.Warning("El snapshot está vacío o no se pudo leer")
	}
	return nil
}
