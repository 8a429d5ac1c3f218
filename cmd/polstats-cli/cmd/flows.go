package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	flowsLimit     int
	flowsHomeState string
)

func init() {
	rootCmd.AddCommand(flowsCmd)
	flowsCmd.Flags().IntVar(&flowsLimit, "limit", 15, "how many counterparties to show per side")
	flowsCmd.Flags().StringVar(&flowsHomeState, "state", "UT", "home state for the in-state share")
}

var flowsCmd = &cobra.Command{
	Use:   "flows <entity id>",
	Short: "Prints the top contributors and recipients of a stored entity.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entityId := args[0]

		contributors, err := service.TopContributors(cmd.Context(), entityId, flowsLimit)
		if err != nil {
			log.Fatal(err)
		}
		recipients, err := service.TopRecipients(cmd.Context(), entityId, flowsLimit)
		if err != nil {
			log.Fatal(err)
		}
		share, err := service.InStateShare(cmd.Context(), entityId, flowsHomeState)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Contributor", "Total"})
		for _, f := range contributors {
			t.AppendRow(table.Row{f.Name, fmt.Sprintf("$%.2f", f.Total)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		t = table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Recipient", "Total"})
		for _, f := range recipients {
			t.AppendRow(table.Row{f.Name, fmt.Sprintf("$%.2f", f.Total)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		fmt.Printf("in-state (%s) contribution share: %.1f%%\n", flowsHomeState, share*100)
	},
}
