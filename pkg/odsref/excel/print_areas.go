package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/internal/logging"
	"github.com/ukaji3/odsref-go/pkg/odsref/models"
	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, r := range parsePrintAreaReference(dn.RefersTo, dn.Scope) {
			sheet := r.From.Sheet.Name
			result[sheet] = append(result[sheet], models.NewPrintArea(r))
		}
	}

	return result, nil
}

// parsePrintAreaReference reads a comma separated list of A1 ranges, such as
// 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$G$4. Ranges without a sheet are placed
// on scope. Parts that are not cell ranges are skipped.
func parsePrintAreaReference(ref, scope string) []refs.CellRange {
	var areas []refs.CellRange

	for _, part := range splitUnquoted(strings.TrimPrefix(ref, "="), ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		parsed, err := ParseA1(part)
		if err != nil {
			logging.Debug("skipping print area part", "ref", part, "error", err)
			continue
		}
		var area refs.CellRange
		switch r := parsed.(type) {
		case refs.CellRange:
			area = r
		case refs.CellRef:
			area = refs.CellRange{From: r, To: refs.CellRef{Col: r.Col, Row: r.Row}}
		default:
			logging.Debug("skipping print area part", "ref", part, "kind", "not a cell range")
			continue
		}
		if !area.From.Sheet.IsSet() {
			area.From.Sheet.Name = scope
		}
		areas = append(areas, area)
	}

	return areas
}

// splitUnquoted splits s at sep outside single quotes.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case sep:
			if !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
