package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/EnragedAntelope/PromptExtract/client"
	"github.com/EnragedAntelope/PromptExtract/extract"
	"github.com/EnragedAntelope/PromptExtract/internal/export"
)

// WatchOptions contains the options for the watch command.
type WatchOptions struct {
	Address string
	Port    int
	Out     string
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Extract prompts live as a ComfyUI server finishes generations",
		Long: `Connect to a running ComfyUI server's websocket and append the final
positive prompt of every generation to the output file as it completes.
Runs until interrupted; the connection is retried with backoff if it
drops.

Example:
  promptextract watch --address 10.0.0.5 -o live-prompts.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts)
		},
	}

	addServerFlags(cmd, &opts.Address, &opts.Port)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "prompts.txt", "output path, appended to")

	return cmd
}

func runWatch(opts *WatchOptions) error {
	c := client.NewComfyClient(opts.Address, opts.Port)

	f, err := os.OpenFile(opts.Out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	slog.Info("watching for finished generations",
		"server", c.ServerBaseAddress(), "client_id", c.ClientID(), "out", opts.Out)

	return c.WatchPrompts(func(item client.PromptHistoryItem) {
		prompt, reason := extract.FinalPositivePrompt(item.Graph)
		if reason != extract.ReasonNone {
			fmt.Printf("[skip] %s: %s\n", item.PromptID, reason)
			return
		}

		line := export.OneLine(prompt)
		if _, err := f.WriteString(line + "\n"); err != nil {
			slog.Error("writing prompt", "error", err)
			return
		}
		fmt.Println(line)
	})
}
