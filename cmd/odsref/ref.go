package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/odsref-go/pkg/odsref/excel"
	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
)

var refKind string

func newRefCmd() *cobra.Command {
	refCmd := &cobra.Command{
		Use:   "ref",
		Short: "Parse and convert cell references",
	}

	parseCmd := &cobra.Command{
		Use:   "parse [reference...]",
		Short: "Parse references and print their canonical and formula forms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				out, err := parseRef(refKind, text)
				if err != nil {
					return err
				}
				writeLine(cmd, "%s", out)
			}
			return nil
		},
	}
	parseCmd.Flags().StringVar(&refKind, "kind", "any", "Reference kind: any, cell, range, cols, rows, list")

	a1Cmd := &cobra.Command{
		Use:   "a1 [reference...]",
		Short: "Convert Excel A1 references to OpenDocument form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				r, err := excel.ParseA1(text)
				if err != nil {
					return err
				}
				writeLine(cmd, "%s\t%s", r.String(), r.Formula())
			}
			return nil
		},
	}

	refCmd.AddCommand(parseCmd, a1Cmd)
	return refCmd
}

func parseRef(kind, text string) (string, error) {
	var r refs.Reference
	var err error
	switch kind {
	case "any":
		r, err = refs.ParseReference(text)
	case "cell":
		r, err = refs.ParseCellRef(text)
	case "range":
		r, err = refs.ParseCellRange(text)
	case "cols":
		r, err = refs.ParseColRange(text)
	case "rows":
		r, err = refs.ParseRowRange(text)
	case "list":
		list, err := refs.ParseCellRangeList(text)
		if err != nil {
			return "", err
		}
		return refs.CellRangeListString(list), nil
	default:
		return "", fmt.Errorf("invalid kind: %s (must be any, cell, range, cols, rows, or list)", kind)
	}
	if err != nil {
		return "", err
	}
	return r.String() + "\t" + r.Formula(), nil
}

func newFormulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula [excel-formula...]",
		Short: "Translate Excel formulas to OpenFormula",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				of, err := excel.TranslateFormula(text)
				if err != nil {
					return err
				}
				writeLine(cmd, "%s", of)
			}
			return nil
		},
	}
}
