package main

import (
	"fmt"
	"os"

	"vet-clinic/internal/config"
	"vet-clinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	EnvFiles []string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "vet-clinic",
		Short:         "API de la clínica veterinaria (citas + notificaciones)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringSliceVar(&opts.EnvFiles, "env-file", []string{".env"}, "archivos .env a cargar (si existen)")

	serve := newServeCmd(&opts)
	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd(&opts))

	// Sin subcomando levanta el server.
	cmd.RunE = serve.RunE
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func loadConfig(opts *rootOptions) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(opts.EnvFiles...)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}
