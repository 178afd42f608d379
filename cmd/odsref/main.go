// Package main provides the CLI entry point for odsref.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/odsref-go/internal/logging"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "odsref",
		Short: "OpenDocument spreadsheet references, values and conditions",
		Long: `odsref parses and formats OpenDocument spreadsheet cell references,
typed attribute values and validation conditions, converts Excel workbooks
to OpenDocument cell values, and checks .ods files for malformed attributes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			logging.Init(cmd.ErrOrStderr(), level, format)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(
		newRefCmd(),
		newFormulaCmd(),
		newValueCmd(),
		newConditionCmd(),
		newExtractCmd(),
		newLintCmd(),
	)
	return rootCmd
}

func writeLine(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
