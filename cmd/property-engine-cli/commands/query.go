package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/findy-ai/property-engine/cmd/property-engine-cli/ui"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query [consulta...]",
	Short: "Search listings with a natural language query",
	Long: `Search the listings snapshot with a natural language query in Spanish,
for example: property-engine query "departamentos de 2 dormitorios en Nueva Córdoba hasta 120 mil"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 10, "maximum listings to display")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	eng, _, err := buildEngine()
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")

	spin := ui.NewSpinner("Buscando propiedades...")
	spin.Start()
	criteria, results := eng.SearchQuery(question)
	spin.Stop()

	ui.Section("Búsqueda")
	ui.KeyValue("Consulta", question)
	ui.KeyValue("Filtros", criteria.String())
	ui.Newline()

	if len(results) == 0 {
		ui.Warning("No se encontraron propiedades con esos filtros")
		return nil
	}

	shown := results
	if queryLimit > 0 && len(shown) > queryLimit {
		shown = shown[:queryLimit]
	}

	rows := make([][]string, 0, len(shown))
	for _, p := range shown {
		rows = append(rows, []string{
			p.PropertyType,
			p.Neighborhood,
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.Bathrooms),
			fmt.Sprintf("%d m2", p.TotalArea),
			formatPrice(p.Price),
		})
	}
	ui.Table([]string{"Tipo", "Barrio", "Dorm", "Baños", "Superficie", "Precio"}, rows)
	ui.Newline()

	if len(results) > len(shown) {
		ui.Info("Mostrando %d de %d propiedades (ordenadas por precio)", len(shown), len(results))
	} else {
		ui.Success("%d propiedades encontradas", len(results))
	}
	return nil
}
