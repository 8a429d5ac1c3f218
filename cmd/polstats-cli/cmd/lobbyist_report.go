package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	lobbyistReportLobbyistId string
	lobbyistReportUpdate     bool
)

func init() {
	rootCmd.AddCommand(lobbyistReportCmd)
	lobbyistReportCmd.Flags().StringVar(&lobbyistReportLobbyistId, "lobbyist", "", "the lobbyist this report belongs to")
	lobbyistReportCmd.MarkFlagRequired("lobbyist")
	lobbyistReportCmd.Flags().BoolVar(&lobbyistReportUpdate, "update", false, "re-fetch even if the report is already stored")
}

var lobbyistReportCmd = &cobra.Command{
	Use:   "lobbyist-report <report id>",
	Short: "Fetches a lobbyist expenditure report, stores it, and prints its rows.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reportId := args[0]

		if !lobbyistReportUpdate {
			stored, err := service.HasReport(cmd.Context(), reportId)
			if err != nil {
				log.Fatal(err)
			}
			if stored {
				fmt.Printf("report %s is already stored, pass --update to re-fetch\n", reportId)
				return
			}
		}

		report, err := lobbyistSite.GetLobbyistReport(cmd.Context(), reportId)
		if err != nil {
			log.Fatal(err)
		}
		err = service.ImportLobbyistReport(cmd.Context(), reportId, lobbyistReportLobbyistId, report)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Recipient", "Location", "Purpose", "Amount"})
		for _, e := range report.Expenditures {
			t.AppendRow(table.Row{
				e.DateRaw, e.RecipientName, e.Location, e.Purpose,
				fmt.Sprintf("$%.2f", e.Amount),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		fmt.Printf(
			"%d expenditures ($%.2f)\n",
			report.Summary.TotalExpenditures,
			report.Summary.TotalExpenditureAmount,
		)
	},
}
