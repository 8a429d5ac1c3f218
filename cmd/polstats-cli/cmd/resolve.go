package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Finds the stored entity whose name best matches the given text.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		match, err := service.ResolveOrganization(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\t(similarity %.3f)\n", match.EntityId, match.Name, match.Score)
	},
}
