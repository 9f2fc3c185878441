package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lewinzki/hpack"
	"github.com/lewinzki/hpack/internal/cli/ui"
)

func (a *app) newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the draft-07 static header table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := hpack.GetStaticTable()

			table := ui.NewTable("INDEX", "NAME", "VALUE").
				WithTitle(fmt.Sprintf("Static table (%d entries)", st.Size()))
			for i := uint32(1); i <= uint32(st.Size()); i++ {
				field, _ := st.Get(i)
				table.AddRow(fmt.Sprintf("%d", i), field.Name, field.Value)
			}
			cmd.Print(table.Render())
			return nil
		},
	}
}
