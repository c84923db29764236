package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	configFile string
	*Config
}

func main() {
	if err := cliParser().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "sportclass",
		Short: "sportclass is a tool to classify athletes with regression trees",
		Long: `A tool to grow regression trees relating vision measures to race times,
prune them by cross-validation, test them and use them to place athletes in
sport classes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			config.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, cfg.Verbose)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return config.writeMetrics()
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "log progress to stderr")
	pf.StringVar(&(config.configFile), "config", "", "path to a YML configuration file (defaults to "+defaultConfigFile+" when present)")
	pf.String("metrics-file", "", "path to a file where build and cross-validation metrics are written in the Prometheus text format")
	pf.Int64("seed", 1, "seed for every random choice (splits, folds, simulations)")
	pf.String("table", "samples", "SQL table or MongoDB collection holding the samples")
	pf.String("redis-addr", "localhost:6379", "address of the Redis server trees are stored in")
	pf.String("redis-password", "", "password of the Redis server")
	pf.Int("redis-db", 0, "Redis database trees are stored in")
	pf.String("redis-prefix", "sportclass:trees", "prefix of the Redis keys trees are stored under")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		cvCmd(config),
		pruneCmd(config),
		fitCmd(config),
		testCmd(config),
		predictCmd(config),
		treeCmd(config),
		splitCmd(config),
		simulateCmd(config),
		convertCmd(config),
	)
	return rootCmd
}

// writeMetrics dumps the default registry to the metrics file if one is set.
func (rcc *rootCmdConfig) writeMetrics() error {
	if rcc.Config == nil || rcc.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(rcc.MetricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics to %s: %v", rcc.MetricsFile, err)
	}
	return nil
}
