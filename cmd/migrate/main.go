package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tzbot/config"
	"tzbot/helper"
	"tzbot/shared/logger"
)


func actionCmd(action, short string, run func(*config.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger.InitLogger(cfg)

			logger.SetLogLevel(cfg)

			return run(cfg)
		},
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "migrate applies the embedded SQL migrations to the configured store.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		actionCmd(helper.ActionUp, "Apply every pending migration", helper.Up),
		actionCmd(helper.ActionDown, "Roll back the latest migration", helper.Down),
		actionCmd(helper.ActionStepUp, "Apply the next pending migration", helper.StepUp),
		actionCmd(helper.ActionDrop, "Roll back every migration", helper.Drop),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
