// Package cmd wires the pool-search core into a command-line tool: a run
// subcommand for one-shot batch searches, a serve subcommand exposing the
// same search over HTTP, and a distances subcommand for building a travel
// time matrix from stop coordinates. Configuration loading follows the same
// viper-backed, mapstructure-tagged pattern used elsewhere in the reference
// stack, bound onto cobra persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kern",
	Short: "Search and assign shared-ride pools from open orders and available cabs",
	Long: `kern searches a pool of open passenger orders and available cabs for
feasible ride-sharing groups, honoring wait-time and detour constraints, and
greedily assigns the cheapest non-overlapping pools to the nearest capable
cab.`,
}

// Execute runs the root command; it is the only entry point main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./kern.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(distancesCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kern")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("KERN")
	viper.AutomaticEnv()
	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "kern: reading config: %v\n", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("solver.max_in_pool", 4)
	viper.SetDefault("solver.numb_threads", 9)
	viper.SetDefault("solver.max_thread_mem", 2_500_000)
	viper.SetDefault("solver.pool_size_thresholds", []int{150, 500, 1300})
	viper.SetDefault("solver.max_angle", 120)
	viper.SetDefault("solver.max_angle_dist", 1)
	viper.SetDefault("solver.stop_wait", 1)
	viper.SetDefault("solver.goal_func", "cost")
}
