package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations, seeding a newly created store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			store, _, err := openStore(cmd.Context(), cfg, log, false)
			if err != nil {
				return err
			}
			store.Close()
			log.Info("migrations applied")
			return nil
		},
	}
}

// NewResetCommand creates the reset command.
func NewResetCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every joke and restore the seed set",
		Long: `Roll the schema back to version 0, re-apply it and insert the seed set.
Every stored joke is lost and identifiers restart at 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes every joke; pass --yes to confirm")
			}
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			store, _, err := openStore(cmd.Context(), cfg, log, true)
			if err != nil {
				return err
			}
			store.Close()
			log.Info("store reset")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the destructive reset")
	return cmd
}
