package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kincaid/internal/app"
	"github.com/heartmarshall/kincaid/internal/config"
	"github.com/heartmarshall/kincaid/pkg/readability"
)

// cli carries state shared by subcommands for one invocation.
type cli struct {
	cfgPath  string
	logCfg   config.LogConfig
	logger   *slog.Logger
	analyzer *readability.Analyzer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "kincaid",
		Short:         "kincaid: readability scores and syllable estimates",
		Long:          "Score text with the Flesch reading-ease formula and inspect the heuristic syllable estimator.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.logger = app.NewLoggerTo(cmd.ErrOrStderr(), c.logCfg)

			a, err := readability.New()
			if err != nil {
				return err
			}
			c.analyzer = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&c.logCfg.Level, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.logCfg.Format, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newAnalyzeCmd(c),
		newSyllablesCmd(c),
		newEvalCmd(c),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the config named by --config, else CONFIG_PATH.
func (c *cli) loadConfig() (*config.Config, error) {
	if c.cfgPath != "" {
		return config.LoadFrom(c.cfgPath)
	}
	return config.Load()
}
