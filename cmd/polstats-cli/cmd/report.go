package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	reportEntityId string
	reportUpdate   bool
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportEntityId, "entity", "", "the entity this report belongs to")
	reportCmd.MarkFlagRequired("entity")
	reportCmd.Flags().BoolVar(&reportUpdate, "update", false, "re-fetch even if the report is already stored")
}

var reportCmd = &cobra.Command{
	Use:   "report <report id>",
	Short: "Fetches a campaign finance report, stores it, and prints a summary.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reportId := args[0]

		if !reportUpdate {
			stored, err := service.HasReport(cmd.Context(), reportId)
			if err != nil {
				log.Fatal(err)
			}
			if stored {
				fmt.Printf("report %s is already stored, pass --update to re-fetch\n", reportId)
				return
			}
		}

		report, err := disclosuresSite.GetReport(cmd.Context(), reportId)
		if err != nil {
			log.Fatal(err)
		}
		err = service.ImportReport(cmd.Context(), reportId, reportEntityId, report)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, key := range report.Info.Keys() {
			t.AppendRow(table.Row{key, report.Info.Get(key)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		if len(report.BalanceSummary) > 0 {
			t = table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Balance", "Amount"})
			for label, amount := range report.BalanceSummary {
				t.AppendRow(table.Row{label, fmt.Sprintf("$%.2f", amount)})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
		}

		fmt.Printf(
			"%d contributions ($%.2f), %d expenditures ($%.2f)\n",
			report.Summary.TotalContributions,
			report.Summary.TotalContributionAmount,
			report.Summary.TotalExpenditures,
			report.Summary.TotalExpenditureAmount,
		)
	},
}
