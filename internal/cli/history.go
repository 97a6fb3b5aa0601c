package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EnragedAntelope/PromptExtract/client"
	"github.com/EnragedAntelope/PromptExtract/extract"
	"github.com/EnragedAntelope/PromptExtract/internal/export"
)

// HistoryOptions contains the options for the history command.
type HistoryOptions struct {
	Address string
	Port    int
	Out     string
	CSV     bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Extract prompts from a ComfyUI server's execution history",
		Long: `Fetch the execution history of a running ComfyUI server and recover
the final positive prompt of every generation it still holds. Results
are keyed by prompt ID instead of filename.

Examples:
  promptextract history
  promptextract history --address 10.0.0.5 --port 8188 --csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts)
		},
	}

	addServerFlags(cmd, &opts.Address, &opts.Port)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output path (default prompts.txt, or prompts.csv with --csv)")
	cmd.Flags().BoolVar(&opts.CSV, "csv", false, "write CSV with a prompt-id column")

	return cmd
}

func runHistory(opts *HistoryOptions) error {
	c := client.NewComfyClient(opts.Address, opts.Port)

	items, err := c.GetPromptHistory()
	if err != nil {
		return fmt.Errorf("fetching history from %s: %w", c.ServerBaseAddress(), err)
	}

	results := make([]export.Result, 0, len(items))
	for _, item := range items {
		prompt, reason := extract.FinalPositivePrompt(item.Graph)
		if reason != extract.ReasonNone {
			fmt.Printf("[skip] %s: %s\n", item.PromptID, reason)
			continue
		}
		results = append(results, export.Result{Filename: item.PromptID, Prompt: prompt})
	}

	outPath := opts.Out
	if outPath == "" {
		if opts.CSV {
			outPath = "prompts.csv"
		} else {
			outPath = "prompts.txt"
		}
	}

	if opts.CSV {
		err = export.WriteCSV(outPath, results)
	} else {
		err = export.Write(outPath, results)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d prompts -> %s\n", len(results), outPath)
	return nil
}
