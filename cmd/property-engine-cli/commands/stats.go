package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/findy-ai/property-engine/cmd/property-engine-cli/ui"
)

var (
	statsPropertyType string
	statsNeighborhood string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show market statistics for the listings snapshot",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsPropertyType, "type", "t", "", "restrict to a property type")
	statsCmd.Flags().StringVarP(&statsNeighborhood, "neighborhood", "b", "", "restrict to a neighborhood")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, _, err := buildEngine()
	if err != nil {
		return err
	}

	stats := eng.StatsFiltered(statsPropertyType, statsNeighborhood)

	ui.Section("Mercado")
	ui.KeyValue("Propiedades", strconv.Itoa(stats.TotalProperties))
	ui.KeyValue("Rango de precios", stats.PriceRange())
	ui.KeyValue("Precio promedio", formatPrice(stats.PriceAvg))
	ui.KeyValue("Superficie promedio", fmt.Sprintf("%d m2", stats.AvgTotalArea))
	ui.Newline()

	if len(stats.ByNeighborhood) > 0 {
		rows := make([][]string, 0, len(stats.Neighborhoods))
		for _, n := range stats.Neighborhoods {
			rows = append(rows, []string{n, strconv.Itoa(stats.ByNeighborhood[n])})
		}
		ui.Table([]string{"Barrio", "Propiedades"}, rows)
		ui.Newline()
	}

	if len(stats.ByPropertyType) > 0 {
		rows := make([][]string, 0, len(stats.PropertyTypes))
		for _, t := range stats.PropertyTypes {
			rows = append(rows, []string{t, strconv.Itoa(stats.ByPropertyType[t])})
		}
		ui.Table([]string{"Tipo", "Propiedades"}, rows)
	}
	return nil
}
