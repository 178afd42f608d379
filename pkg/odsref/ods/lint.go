// Package ods checks the typed attributes of OpenDocument spreadsheets.
package ods

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ukaji3/odsref-go/internal/logging"
	"github.com/ukaji3/odsref-go/pkg/odsref/condition"
	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
	"github.com/ukaji3/odsref-go/pkg/odsref/value"
)

// ErrUnsupported is returned for files that are neither .ods nor .fods.
var ErrUnsupported = errors.New("unsupported file type")

const contentFile = "content.xml"

// Namespace URIs, matched alongside the conventional prefixes.
const (
	officeNS = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	tableNS  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
)

// Finding is an attribute whose value does not parse.
type Finding struct {
	Element   string `json:"element"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Err       error  `json:"-"`
	Message   string `json:"error"`
}

func (f Finding) String() string {
	return fmt.Sprintf("<%s %s=%q>: %v", f.Element, f.Attribute, f.Value, f.Err)
}

type check func(string) error

var officeChecks = map[string]check{
	"value":         discard(value.ParseFloat64),
	"date-value":    discard(value.ParseDateTime),
	"time-value":    discard(value.ParseDuration),
	"boolean-value": discard(value.ParseBool),
	"currency":      discard(value.ParseCurrency),
}

var tableChecks = map[string]check{
	"number-columns-repeated":       discard(value.ParseUint32),
	"number-rows-repeated":          discard(value.ParseUint32),
	"number-columns-spanned":        discard(value.ParseUint32),
	"number-rows-spanned":           discard(value.ParseUint32),
	"number-matrix-columns-spanned": discard(value.ParseUint32),
	"number-matrix-rows-spanned":    discard(value.ParseUint32),
	"cell-range-address":            discard(refs.ParseCellRangeList),
	"target-range-address":          discard(refs.ParseCellRangeList),
	"base-cell-address":             discard(refs.ParseCellRef),
	"formula":                       checkFormula,
	"condition":                     checkCondition,
}

func discard[T any](fn func(string) (T, error)) check {
	return func(s string) error {
		_, err := fn(s)
		return err
	}
}

// Lint reads the body of an .ods package or a flat .fods document and
// re-parses every value, range and reference attribute. Findings are
// returned in document order.
func Lint(path string) ([]Finding, error) {
	var r io.ReadCloser
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ods":
		r, err = openContent(path)
	case ".fods":
		r, err = os.Open(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return LintXML(r)
}

// LintXML checks a content.xml or flat document stream.
func LintXML(r io.Reader) ([]Finding, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	var findings []Finding
	walk(doc, func(n *xmlquery.Node) {
		for _, attr := range n.Attr {
			fn := lookup(attr.Name.Space, attr.Name.Local)
			if fn == nil {
				continue
			}
			if err := fn(attr.Value); err != nil {
				f := Finding{
					Element:   qualified(n.Prefix, n.Data),
					Attribute: qualified(attr.Name.Space, attr.Name.Local),
					Value:     attr.Value,
					Err:       err,
					Message:   err.Error(),
				}
				logging.Debug("invalid attribute", "element", f.Element, "attribute", f.Attribute, "error", err)
				findings = append(findings, f)
			}
		}
	})
	return findings, nil
}

func openContent(path string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}
	rc, err := zr.Open(contentFile)
	if err != nil {
		zr.Close()
		return nil, fmt.Errorf("opening %s: %w", contentFile, err)
	}
	return &packageFile{ReadCloser: rc, zr: zr}, nil
}

// packageFile closes the archive together with the member.
type packageFile struct {
	io.ReadCloser
	zr *zip.ReadCloser
}

func (p *packageFile) Close() error {
	err := p.ReadCloser.Close()
	if zerr := p.zr.Close(); err == nil {
		err = zerr
	}
	return err
}

func walk(n *xmlquery.Node, visit func(*xmlquery.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			visit(c)
			walk(c, visit)
		}
	}
}

// lookup picks the check for an attribute. space may hold either the prefix
// or the namespace URI.
func lookup(space, local string) check {
	switch space {
	case "office", officeNS:
		return officeChecks[local]
	case "table", tableNS:
		return tableChecks[local]
	}
	return nil
}

func qualified(prefix, local string) string {
	switch prefix {
	case "":
		return local
	case officeNS:
		prefix = "office"
	case tableNS:
		prefix = "table"
	}
	return prefix + ":" + local
}

// checkFormula parses every bracketed reference outside string literals.
func checkFormula(formula string) error {
	for _, ref := range formulaRefs(formula) {
		if _, err := refs.ParseReference(ref); err != nil {
			return err
		}
	}
	return nil
}

// formulaRefs returns the [...] segments of an OpenFormula text. Quoted sheet
// names inside a segment may contain brackets.
func formulaRefs(formula string) []string {
	var out []string
	inString := false
	for i := 0; i < len(formula); i++ {
		switch c := formula[i]; {
		case c == '"':
			inString = !inString
		case c == '[' && !inString:
			end := closingBracket(formula, i)
			if end < 0 {
				return append(out, formula[i:])
			}
			out = append(out, formula[i:end+1])
			i = end
		}
	}
	return out
}

func closingBracket(s string, start int) int {
	quoted := false
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case ']':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

// checkCondition parses validation conditions. Conditional-format conditions
// use a different grammar and are left alone.
func checkCondition(text string) error {
	if !strings.Contains(text, "cell-content") && !strings.Contains(text, "is-true-formula") {
		return nil
	}
	_, err := condition.Parse(text)
	return err
}
