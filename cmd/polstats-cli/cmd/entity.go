package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var entityUpdate bool

func init() {
	rootCmd.AddCommand(entityCmd)
	entityCmd.Flags().BoolVar(&entityUpdate, "update", false, "re-fetch even if the entity is already stored")
}

var entityCmd = &cobra.Command{
	Use:   "entity <entity id>",
	Short: "Fetches an entity registration, stores it, and prints its officers.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !entityUpdate {
			stored, err := service.HasEntity(cmd.Context(), args[0])
			if err != nil {
				log.Fatal(err)
			}
			if stored {
				fmt.Printf("entity %s is already stored, pass --update to re-fetch\n", args[0])
				return
			}
		}

		entity, err := disclosuresSite.GetEntity(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}
		err = service.ImportEntity(cmd.Context(), entity)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"Name", entity.Name},
			{"Also known as", entity.AlsoKnownAs},
			{"Type", entity.EntityType},
			{"Status", entity.Status},
			{"Created", entity.DateCreatedRaw},
			{"City", entity.City},
			{"State", entity.State},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if len(entity.Officers) == 0 {
			return
		}
		t = table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Officer", "Title", "Treasurer", "Phone", "Email"})
		for _, o := range entity.Officers {
			t.AppendRow(table.Row{o.Name, o.Title, o.IsTreasurer, o.Phone, o.Email})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
