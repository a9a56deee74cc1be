// Package cli wires configuration, storage and the HTTP server into the
// jokebox command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the jokebox command. Without a subcommand it
// serves the API.
func NewRootCommand() *cobra.Command {
	serve := &serveOptions{}

	cmd := &cobra.Command{
		Use:           "jokebox",
		Short:         "jokebox - a tiny joke API",
		Long:          "Serve, migrate and browse a small store of question/answer jokes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), serve)
		},
	}
	serve.bind(cmd)

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewResetCommand())
	cmd.AddCommand(NewClientCommand())

	return cmd
}
