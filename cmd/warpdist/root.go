package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands of one invocation.
type cli struct {
	logLevel   string
	configPath string
	cfg        Config
}

// NewCLI builds the warpdist command tree.
func NewCLI() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "warpdist",
		Short:         "Dynamic Time Warping distances between numeric sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())

			c.cfg, err = loadConfig(c.configPath)
			if err != nil {
				return err
			}
			logrus.WithField("config", c.configPath).Debugf("using %+v", c.cfg)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with default metric, workers, seed and sample")

	rootCmd.AddCommand(
		newPairCmd(c),
		newMatrixCmd(c),
		newMetricsCmd(),
	)

	return rootCmd
}

// metricName returns the --metric flag if set, else the configured default.
func (c *cli) metricName(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("metric") {
		return flag
	}

	return c.cfg.Metric
}
