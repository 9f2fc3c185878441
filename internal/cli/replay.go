package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lewinzki/hpack/internal/corpus"
)

func (a *app) newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <corpus-file>",
		Short: "Replay a recorded corpus and verify every block still decodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			summary, err := corpus.Replay(f, a.logger)
			if err != nil {
				return err
			}

			cmd.Printf("%d records: %d matched, %d mismatched, %d failed\n",
				summary.Records, summary.Matched, summary.Mismatched, summary.Failed)
			if !summary.Ok() {
				return fmt.Errorf("corpus replay failed")
			}
			return nil
		},
	}
}
