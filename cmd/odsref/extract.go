package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/odsref-go/pkg/odsref"
	"github.com/ukaji3/odsref-go/pkg/odsref/models"
	"github.com/ukaji3/odsref-go/pkg/odsref/output"
)

var (
	outputPath    string
	pretty        bool
	mode          string
	sheetsDir     string
	printAreasDir string
	formulas      bool
)

func newExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Convert Excel cells to OpenDocument values",
		Long: `extract reads an Excel workbook and outputs JSON with each cell's
office:value-type and canonical value, table candidates and print areas as
OpenDocument range addresses, and optionally OpenFormula translations.`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}

	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().StringVar(&mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	extractCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	extractCmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	extractCmd.Flags().BoolVar(&formulas, "formulas", false, "Translate formulas (default: only in verbose mode)")
	return extractCmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	extractMode, err := odsref.ParseMode(mode)
	if err != nil {
		return err
	}
	opts := odsref.Options{Mode: extractMode}
	if cmd.Flags().Changed("formulas") {
		opts.IncludeFormulas = &formulas
	}

	wb, err := odsref.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" && printAreasDir == "" {
		writeLine(cmd, "%s", jsonData)
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if printAreasDir != "" {
		if err := writePrintAreaFiles(wb, printAreasDir); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		for i, area := range sheet.PrintAreas {
			view := models.NewPrintAreaView(wb.BookName, sheetName, sheet, area)
			jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", sheetName, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
