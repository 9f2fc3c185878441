package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lewinzki/hpack"
	"github.com/lewinzki/hpack/internal/cli/ui"
	"github.com/lewinzki/hpack/internal/recovery"
)

func (a *app) newDecodeCmd() *cobra.Command {
	var dumpTable bool

	cmd := &cobra.Command{
		Use:   "decode <hex-block>...",
		Short: "Decode header blocks against one shared compression context",
		Long: `Decode one or more hex-encoded header blocks. All blocks are decoded
against the same context, in argument order, the way consecutive blocks of a
connection direction share state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder := hpack.NewDecoder(a.cfg.TableSize)
			rec := recovery.NewRecoverer(a.logger)

			for i, arg := range args {
				block, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
				if err != nil {
					return fmt.Errorf("block %d: invalid hex: %w", i, err)
				}

				var headers *hpack.HeaderSet
				var decodeErr error
				ok := rec.Guard("decode", func() {
					headers, decodeErr = decoder.Decode(block)
				})
				if !ok {
					return fmt.Errorf("block %d: decoder panic", i)
				}
				if decodeErr != nil {
					a.logger.Warn("block rejected",
						zap.Int("block", i),
						zap.Error(decodeErr),
					)
					return fmt.Errorf("block %d: %w", i, decodeErr)
				}

				table := ui.NewTable("NAME", "VALUE").
					WithTitle(fmt.Sprintf("Block %d (%d octets, %d fields)", i, len(block), headers.Len()))
				for _, field := range headers.Fields() {
					table.AddRow(field.Name, field.Value)
				}
				if table.Len() == 0 {
					cmd.Println(ui.Muted(fmt.Sprintf("block %d: no header fields", i)))
				} else {
					cmd.Print(table.Render())
				}

				if dumpTable {
					printDynamicTable(cmd, decoder.Context().DynamicTable())
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dumpTable, "dump-table", false, "print the dynamic table after each block")
	return cmd
}

func printDynamicTable(cmd *cobra.Command, dt *hpack.DynamicTable) {
	table := ui.NewTable("INDEX", "NAME", "VALUE", "SIZE").
		WithTitle(fmt.Sprintf("Dynamic table (%d/%d octets)", dt.CurrentSize(), dt.MaxSize()))
	for i := uint32(1); i <= dt.Len(); i++ {
		field, _ := dt.Get(i)
		table.AddRow(fmt.Sprintf("%d", i), field.Name, field.Value, fmt.Sprintf("%d", field.Size()))
	}
	if table.Len() == 0 {
		cmd.Println(ui.Muted("dynamic table: empty"))
		return
	}
	cmd.Print(table.Render())
}
