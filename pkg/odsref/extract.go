package odsref

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/internal/logging"
	"github.com/ukaji3/odsref-go/pkg/odsref/excel"
	"github.com/ukaji3/odsref-go/pkg/odsref/models"
)

// Extract converts an Excel file. Failures confined to one sheet are logged
// and leave that part of the sheet empty.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	bookName := filepath.Base(path)
	sheets := make(map[string]models.SheetData)
	logging.Debug("extracting workbook", "book", bookName, "mode", opts.Mode)

	for _, sheetName := range f.GetSheetList() {
		var sheet models.SheetData

		rows, err := excel.ExtractCells(f, sheetName, opts.ShouldIncludeFormulas())
		if err != nil {
			logging.Warn("skipping cells", "error", NewExtractionError(sheetName, "cells", err))
		}
		sheet.Rows = rows

		if opts.ShouldDetectTables() {
			tables, err := excel.DetectTables(f, sheetName, excel.DefaultTableParams())
			if err != nil {
				logging.Warn("skipping tables", "error", NewExtractionError(sheetName, "tables", err))
			}
			for _, t := range tables {
				sheet.TableCandidates = append(sheet.TableCandidates, t.String())
			}
		}

		sheets[sheetName] = sheet
	}

	if opts.ShouldIncludeCharts() {
		charts, err := excel.ExtractCharts(path)
		if err != nil {
			logging.Warn("skipping charts", "error", NewExtractionError("", "charts", err))
		}
		for sheetName, list := range charts {
			if sheet, ok := sheets[sheetName]; ok {
				sheet.Charts = list
				sheets[sheetName] = sheet
			}
		}
	}

	if opts.ShouldIncludePrintAreas() {
		printAreas, err := excel.ExtractPrintAreas(f)
		if err != nil {
			logging.Warn("skipping print areas", "error", NewExtractionError("", "print_areas", err))
		}
		for sheetName, areas := range printAreas {
			if sheet, ok := sheets[sheetName]; ok {
				sheet.PrintAreas = areas
				sheets[sheetName] = sheet
			}
		}
	}

	return &models.WorkbookData{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}
