package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet. Each candidate is the
// bounding range of a block of cells connected through non-empty neighbours,
// qualified with the sheet.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]refs.CellRange, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var tables []refs.CellRange
	seen := make(map[[2]int]bool)
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" || seen[[2]int{rowIdx, colIdx}] {
				continue
			}
			b := floodBlock(rows, rowIdx, colIdx, seen)

			total := (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
			if b.count < params.MinNonemptyCells {
				continue
			}
			if float64(b.count)/float64(total) < params.DensityMin {
				continue
			}

			r, err := refs.RemoteCellRange(sheetName, uint32(b.minRow), uint32(b.minCol), uint32(b.maxRow), uint32(b.maxCol))
			if err != nil {
				return nil, err
			}
			tables = append(tables, r)
		}
	}

	return tables, nil
}

type block struct {
	minRow, maxRow, minCol, maxCol int
	count                          int
}

// floodBlock collects the non-empty cells reachable from (row, col) through
// horizontal and vertical neighbours.
func floodBlock(rows [][]string, row, col int, seen map[[2]int]bool) block {
	b := block{minRow: row, maxRow: row, minCol: col, maxCol: col}
	stack := [][2]int{{row, col}}
	seen[[2]int{row, col}] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.count++
		b.minRow, b.maxRow = min(b.minRow, p[0]), max(b.maxRow, p[0])
		b.minCol, b.maxCol = min(b.minCol, p[1]), max(b.maxCol, p[1])

		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := [2]int{p[0] + d[0], p[1] + d[1]}
			if n[0] < 0 || n[0] >= len(rows) || n[1] < 0 || n[1] >= len(rows[n[0]]) {
				continue
			}
			if seen[n] || rows[n[0]][n[1]] == "" {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}

	return b
}
