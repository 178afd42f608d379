package excel

import (
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/internal/logging"
	"github.com/ukaji3/odsref-go/pkg/odsref/models"
	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
	"github.com/ukaji3/odsref-go/pkg/odsref/value"
)

// Value types without a scalar kind of their own.
const (
	typeString     = "string"
	typePercentage = "percentage"
)

// ExtractCells converts the non-empty cells of a sheet. Each cell carries its
// office:value-type and canonical value text. With includeFormulas, formula
// cells also carry the translated OpenFormula text.
func ExtractCells(f *excelize.File, sheetName string, includeFormulas bool) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	formats := make(map[int]numFormat)

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make(map[string]models.Cell)

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)

			cell, err := convertCell(f, sheetName, cellName, raw, date1904, formats)
			if err != nil {
				logging.Debug("keeping cell as text", "sheet", sheetName, "cell", cellName, "error", err)
				cell = models.Cell{Type: typeString, Value: raw}
			}

			if includeFormulas {
				if formula, err := f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
					if of, err := TranslateFormula(formula); err == nil {
						cell.Formula = of
					} else {
						logging.Warn("formula not translated", "sheet", sheetName, "cell", cellName, "error", err)
					}
				}
			}

			cells[refs.ColName(uint32(colIdx))] = cell
		}

		if len(cells) > 0 {
			result = append(result, models.CellRow{R: rowNum, C: cells})
		}
	}

	return result, nil
}

func convertCell(f *excelize.File, sheet, cell, raw string, date1904 bool, formats map[int]numFormat) (models.Cell, error) {
	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Cell{Type: value.KindBool.ODFType(), Value: value.FormatBool(raw == "1")}, nil
	case excelize.CellTypeDate:
		t, err := value.ParseDateTime(strings.TrimSuffix(raw, "Z"))
		if err != nil {
			return models.Cell{}, err
		}
		return models.Cell{Type: value.KindDateTime.ODFType(), Value: value.FormatDateTime(t)}, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
	default:
		return models.Cell{Type: typeString, Value: raw}, nil
	}

	n, err := value.ParseFloat64(raw)
	if err != nil {
		return models.Cell{}, err
	}

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return models.Cell{}, err
	}
	nf, ok := formats[styleID]
	if !ok {
		style, err := f.GetStyle(styleID)
		if err != nil {
			return models.Cell{}, err
		}
		nf = classifyStyle(style)
		formats[styleID] = nf
	}

	return numberCell(n, nf, date1904)
}

func numberCell(n float64, nf numFormat, date1904 bool) (models.Cell, error) {
	switch nf.class {
	case classDate:
		t, err := excelize.ExcelDateToTime(n, date1904)
		if err != nil {
			return models.Cell{}, err
		}
		return models.Cell{Type: value.KindDateTime.ODFType(), Value: value.NewDateTime(t).String()}, nil
	case classTime:
		ms := math.Round(n * 24 * float64(time.Hour/time.Millisecond))
		if math.Abs(ms) > float64(math.MaxInt64/int64(time.Millisecond)) {
			return models.Cell{}, value.ErrOutOfRange
		}
		d := time.Duration(ms) * time.Millisecond
		return models.Cell{Type: value.KindDuration.ODFType(), Value: value.FormatDuration(d)}, nil
	case classCurrency:
		c := models.Cell{Type: value.KindCurrency.ODFType(), Value: value.FormatFloat64(n)}
		if isCurrencyCode(nf.currency) {
			if code, err := value.ParseCurrency(nf.currency); err == nil {
				c.Currency = code.String()
			}
		}
		return c, nil
	case classPercent:
		return models.Cell{Type: typePercentage, Value: value.FormatFloat64(n)}, nil
	}
	return models.Cell{Type: value.KindFloat.ODFType(), Value: value.FormatFloat64(n)}, nil
}

// isCurrencyCode reports whether s looks like an ISO 4217 code rather than a
// symbol.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
