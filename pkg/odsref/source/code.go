package source

import "strconv"

// Code classifies a parse failure.
type Code int

const (
	// CodeScan means the token scanner met text that starts no token.
	CodeScan Code = iota
	// CodeScanFailure is a failure of the scanning engine itself.
	CodeScanFailure
	// CodeUnexpected wraps a failure of a probed rule that must be surfaced.
	CodeUnexpected
	// CodeParseIncomplete means the text was recognized but not consumed completely.
	CodeParseIncomplete

	// Tokens and productions of the reference grammar.
	CodeAlpha
	CodeBracketsClose
	CodeCellRange
	CodeCellRef
	CodeColRange
	CodeColname
	CodeColon
	CodeDigit
	CodeDot
	CodeIri
	CodeReference
	CodeRowRange
	CodeRowname
	CodeSheetName
	CodeSingleQuoteEnd
	CodeSingleQuoteStart
	CodeString
	CodeCellRangeList

	// Primitive values.
	CodeBool
	CodeInteger
	CodeOverflow
	CodeFloat
	CodeCurrency
	CodeDateTime
	CodeDuration

	CodeCondition
)

var codeNames = [...]string{
	CodeScan:             "Scan",
	CodeScanFailure:      "ScanFailure",
	CodeUnexpected:       "Unexpected",
	CodeParseIncomplete:  "ParseIncomplete",
	CodeAlpha:            "Alpha",
	CodeBracketsClose:    "BracketsClose",
	CodeCellRange:        "CellRange",
	CodeCellRef:          "CellRef",
	CodeColRange:         "ColRange",
	CodeColname:          "Colname",
	CodeColon:            "Colon",
	CodeDigit:            "Digit",
	CodeDot:              "Dot",
	CodeIri:              "Iri",
	CodeReference:        "Reference",
	CodeRowRange:         "RowRange",
	CodeRowname:          "Rowname",
	CodeSheetName:        "SheetName",
	CodeSingleQuoteEnd:   "SingleQuoteEnd",
	CodeSingleQuoteStart: "SingleQuoteStart",
	CodeString:           "String",
	CodeCellRangeList:    "CellRangeList",
	CodeBool:             "Bool",
	CodeInteger:          "Integer",
	CodeOverflow:         "Overflow",
	CodeFloat:            "Float",
	CodeCurrency:         "Currency",
	CodeDateTime:         "DateTime",
	CodeDuration:         "Duration",
	CodeCondition:        "Condition",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// IsStructural reports whether the code already carries the most specific
// information available and must not be replaced by an enclosing rule.
func (c Code) IsStructural() bool {
	switch c {
	case CodeScan, CodeScanFailure, CodeUnexpected, CodeParseIncomplete:
		return true
	}
	return false
}
