package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/EnragedAntelope/PromptExtract/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "promptextract",
		Short: "Recover the prompts that produced ComfyUI images",
		Long: `promptextract reads the workflow graph ComfyUI embeds in the metadata
of generated images and traces it backward from the saved image to the
text encoder that supplied the positive conditioning, recovering the
literal prompt text.

Prompts can be pulled from PNG files on disk, from a running server's
execution history, or live as generations finish.`,
		Version: Version,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(cli.NewScanCommand())
	rootCmd.AddCommand(cli.NewHistoryCommand())
	rootCmd.AddCommand(cli.NewWatchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
