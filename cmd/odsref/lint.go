package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/odsref-go/pkg/odsref/ods"
	"github.com/ukaji3/odsref-go/pkg/odsref/output"
)

var lintJSON bool

func newLintCmd() *cobra.Command {
	lintCmd := &cobra.Command{
		Use:   "lint [file.ods|file.fods...]",
		Short: "Report malformed value, range and reference attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, path := range args {
				findings, err := ods.Lint(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				total += len(findings)

				if lintJSON {
					jsonData, err := output.FindingsToJSON(findings, pretty)
					if err != nil {
						return err
					}
					writeLine(cmd, "%s", jsonData)
					continue
				}
				for _, f := range findings {
					writeLine(cmd, "%s: %s", path, f)
				}
			}
			if total > 0 {
				return fmt.Errorf("%d invalid attribute(s)", total)
			}
			return nil
		},
	}
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "Print findings as JSON")
	lintCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return lintCmd
}
