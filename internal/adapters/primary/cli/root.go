package cli

import (
	"os"

	"github.com/spf13/cobra"

	"pipe-sizing-service/internal/bootstrap"
	"pipe-sizing-service/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "pipesizer",
		Short:        "Pipe sizing helper: diameter from flow rate and permissible velocity",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "warn"
			if debug {
				level = "debug"
			}
			bootstrap.InitLogger(config.LoggerConfig{Level: level, Format: "text"})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(calcCmd())
	cmd.AddCommand(plotCmd())
	return cmd
}
