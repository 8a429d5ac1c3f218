package cmd

import (
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var sankeyLimit int

func init() {
	rootCmd.AddCommand(sankeyCmd)
	sankeyCmd.Flags().IntVar(&sankeyLimit, "limit", 15, "counterparties to include per side")
}

var sankeyCmd = &cobra.Command{
	Use:   "sankey <entity id>",
	Short: "Prints the money-flow graph of a stored entity as JSON.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		graph, err := service.OrganizationSankey(cmd.Context(), args[0], sankeyLimit)
		if err != nil {
			log.Fatal(err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(graph); err != nil {
			log.Fatal(err)
		}
	},
}
