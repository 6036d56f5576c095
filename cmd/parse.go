package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"server-relay/feature/servers/models"
	"server-relay/feature/servers/parser"

	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var parseLoose bool

type parseResult struct {
	MessageID   string                 `json:"messageId"`
	Informative bool                   `json:"informative"`
	Extracted   models.ExtractedRecord `json:"extracted"`
}

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Run the field extractor over saved messages",
	Long: `Reads a Discord message object, or an array of them, from a file or
stdin and prints what the extractor recovers from each one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		msgs, err := decodeMessages(data)
		if err != nil {
			return err
		}

		x := parser.NewExtractor(parser.Options{LooseContentIDs: parseLoose})
		out := make([]parseResult, 0, len(msgs))
		for _, msg := range msgs {
			rec := x.Extract(msg)
			out = append(out, parseResult{MessageID: msg.ID, Informative: rec.Informative(), Extracted: rec})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func decodeMessages(data []byte) ([]*discordgo.Message, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("no input")
	}

	if trimmed[0] == '[' {
		var msgs []*discordgo.Message
		if err := json.Unmarshal(trimmed, &msgs); err != nil {
			return nil, fmt.Errorf("failed to decode messages: %w", err)
		}
		kept := msgs[:0]
		for _, m := range msgs {
			if m != nil {
				kept = append(kept, m)
			}
		}
		return kept, nil
	}

	var msg discordgo.Message
	if err := json.Unmarshal(trimmed, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	return []*discordgo.Message{&msg}, nil
}

func init() {
	parseCmd.Flags().BoolVar(&parseLoose, "loose", false, "Accept any long content as a job id")
	RootCmd.AddCommand(parseCmd)
}
