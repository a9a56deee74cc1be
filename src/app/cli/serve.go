package cli

import (
	"context"

	"github.com/spf13/cobra"

	"jokebox/src/app/server"
)

type serveOptions struct {
	port  int
	reset bool
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.port, "port", "p", 0, "listen port (overrides APP_PORT/PORT)")
	cmd.Flags().BoolVar(&o.reset, "reset", false, "drop all jokes and re-seed before serving")
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.port != 0 {
		cfg.Server.Port = opts.port
	}
	if opts.reset {
		cfg.Database.ResetOnStart = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("starting application",
		"addr", cfg.Server.Addr(),
		"driver", cfg.Database.Driver,
		"log_level", cfg.Log.Level,
	)

	store, jokeRepo, err := openStore(ctx, cfg, log, cfg.Database.ResetOnStart)
	if err != nil {
		log.Error("storage initialization failed", "error", err)
		return err
	}
	defer store.Close()

	srv, err := server.New(cfg, log, jokeRepo)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
