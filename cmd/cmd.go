// Package cmd defines the command-line interface for rangemerge.
package cmd

import (
	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Diagnostic log level: trace or debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of mergeCmd to Viper
	mergeCmd.Flags().StringP("threshold", "t", "0", "Largest gap between ranges that still merges them")
	mergeCmd.Flags().StringP("ranges", "r", "", "Inline ranges, e.g. '[[1,3],[2,4]]'")
	mergeCmd.Flags().String("input-format", string(schema.JSONIn), "Input format: json or csv or parquet")
	mergeCmd.Flags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	mergeCmd.Flags().String("output-file", "", "Optional path to write output to")
	mergeCmd.Flags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (-1 = shortest exact form)")
	mergeCmd.Flags().String("color", contract.DefaultColor, "Enable colored labels in output (auto/yes/no/true/false/1/0)")
	if err := viper.BindPFlags(mergeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding merge flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address for the HTTP API to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
