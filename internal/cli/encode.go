package cli

import (
	"encoding/hex"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lewinzki/hpack"
	"github.com/lewinzki/hpack/internal/corpus"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "encode <headers.json>",
		Short: "Encode header sets from a JSON file into header blocks",
		Long: `Encode header sets into hex header blocks, one block per set, sharing one
compression context in file order. The input is a JSON array of header sets,
each an array of {"name": ..., "value": ...} objects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var sets [][]corpus.HeaderPair
			if err := json.Unmarshal(data, &sets); err != nil {
				return fmt.Errorf("parse header sets: %w", err)
			}

			encoder := hpack.NewEncoder(a.cfg.TableSize)
			encoder.UseHuffman(a.cfg.Huffman)
			encoder.SetEmptyThreshold(a.cfg.EmptyThreshold)

			var recorder *corpus.Recorder
			var corpusFile *os.File
			if corpusPath != "" {
				corpusFile, err = os.Create(corpusPath)
				if err != nil {
					return fmt.Errorf("create corpus: %w", err)
				}
				defer corpusFile.Close()
				recorder = corpus.NewRecorder(encoder, corpusFile)
			}

			for i, pairs := range sets {
				headers := &hpack.HeaderSet{}
				for _, pair := range pairs {
					headers.Add(pair.Name, pair.Value)
				}

				if recorder != nil {
					if err := recorder.Append(headers); err != nil {
						return fmt.Errorf("record block %d: %w", i, err)
					}
					continue
				}

				block := encoder.Encode(headers)
				cmd.Printf("%s\n", hex.EncodeToString(block))
			}

			if corpusFile != nil {
				cmd.Printf("recorded %d blocks to %s\n", len(sets), corpusPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "write blocks to a corpus file instead of stdout")
	return cmd
}
