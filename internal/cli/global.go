package cli

import "github.com/spf13/cobra"

// addServerFlags registers the ComfyUI server address flags shared by
// the commands that talk to a live backend.
func addServerFlags(cmd *cobra.Command, address *string, port *int) {
	cmd.Flags().StringVar(address, "address", "localhost", "ComfyUI server address")
	cmd.Flags().IntVar(port, "port", 8188, "ComfyUI server port")
}
