package cli

import (
	"time"

	"github.com/spf13/cobra"

	"jokebox/src/app/client"
)

// NewClientCommand creates the client command.
func NewClientCommand() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Browse random jokes from a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Run(cmd.Context(), client.NewAPIClient(url, timeout))
		},
	}
	cmd.Flags().StringVar(&url, "url", client.DefaultBaseURL, "base URL of the jokebox API")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "per-request timeout")
	return cmd
}
