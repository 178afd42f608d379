package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/odsref-go/pkg/odsref/condition"
	"github.com/ukaji3/odsref-go/pkg/odsref/value"
)

var valueKind string

func newValueCmd() *cobra.Command {
	valueCmd := &cobra.Command{
		Use:   "value [text...]",
		Short: "Parse typed attribute values and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := value.ParseKind(valueKind)
			if err != nil {
				return err
			}
			for _, text := range args {
				v, err := value.Parse(kind, text)
				if err != nil {
					return err
				}
				writeLine(cmd, "%s\t%s", kind.ODFType(), v)
			}
			return nil
		},
	}
	valueCmd.Flags().StringVar(&valueKind, "kind", "float", "Value kind, e.g. bool, int32, uint32, float, currency, date, time")
	return valueCmd
}

func newConditionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "condition [expression...]",
		Short: "Parse validation conditions and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				e, err := condition.Parse(text)
				if err != nil {
					return err
				}
				writeLine(cmd, "%s", e)
			}
			return nil
		},
	}
}
