package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var lobbyistUpdate bool

func init() {
	rootCmd.AddCommand(lobbyistCmd)
	lobbyistCmd.Flags().BoolVar(&lobbyistUpdate, "update", false, "re-fetch even if the lobbyist is already stored")
}

var lobbyistCmd = &cobra.Command{
	Use:   "lobbyist <entity id>",
	Short: "Fetches a lobbyist registration, stores it, and prints its principals.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !lobbyistUpdate {
			stored, err := service.HasLobbyist(cmd.Context(), args[0])
			if err != nil {
				log.Fatal(err)
			}
			if stored {
				fmt.Printf("lobbyist %s is already stored, pass --update to re-fetch\n", args[0])
				return
			}
		}

		lobbyist, err := lobbyistSite.GetLobbyistEntity(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}
		err = service.ImportLobbyistEntity(cmd.Context(), lobbyist)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"Name", lobbyist.Name},
			{"Organization", lobbyist.OrganizationName},
			{"Phone", lobbyist.Phone},
			{"Registered", lobbyist.DateCreatedRaw},
			{"Purposes", lobbyist.LobbyingPurposes},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if len(lobbyist.Principals) == 0 {
			return
		}
		t = table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Principal", "Contact"})
		for _, p := range lobbyist.Principals {
			t.AppendRow(table.Row{p.Name, p.Contact})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
