package main

import (
	"os"

	"github.com/leaguedesk/airbase-client/internal/output"
	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/spf13/cobra"
)

// NewKindsCmd creates the kinds command.
func NewKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered model kinds and their backend tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := output.NewTable(os.Stdout, []string{"Kind", "Table"})
			for _, kind := range model.Kinds() {
				desc, err := kind.Descriptor()
				if err != nil {
					return err
				}
				table.AddRow([]string{kind.String(), desc.Table})
			}
			table.Render()
			return nil
		},
	}
}
