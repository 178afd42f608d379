package excel

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ukaji3/odsref-go/internal/logging"
	"github.com/ukaji3/odsref-go/pkg/odsref/models"
)

// chartClasses maps DrawingML plot elements to chart:class values.
var chartClasses = map[string]string{
	"barChart":       "chart:bar",
	"bar3DChart":     "chart:bar",
	"lineChart":      "chart:line",
	"line3DChart":    "chart:line",
	"areaChart":      "chart:area",
	"area3DChart":    "chart:area",
	"pieChart":       "chart:circle",
	"pie3DChart":     "chart:circle",
	"ofPieChart":     "chart:circle",
	"doughnutChart":  "chart:ring",
	"scatterChart":   "chart:scatter",
	"bubbleChart":    "chart:bubble",
	"radarChart":     "chart:radar",
	"surfaceChart":   "chart:surface",
	"surface3DChart": "chart:surface",
	"stockChart":     "chart:stock",
}

const (
	workbookPart = "xl/workbook.xml"
	drawingRel   = "/drawing"
)

// relationship is one entry of a .rels part with its target resolved to a
// package path.
type relationship struct {
	id     string
	typ    string
	target string
}

// xlsxPackage gives access to the XML parts of an xlsx archive.
type xlsxPackage struct {
	files map[string]*zip.File
}

func (p xlsxPackage) parse(name string) (*xmlquery.Node, error) {
	zf, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("missing part %s", name)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return xmlquery.Parse(rc)
}

// rels reads the relationships of part in document order. A part without
// relationships has none.
func (p xlsxPackage) rels(part string) []relationship {
	dir, base := path.Split(part)
	doc, err := p.parse(dir + "_rels/" + base + ".rels")
	if err != nil {
		return nil
	}

	var out []relationship
	for _, n := range xmlquery.Find(doc, "//*[local-name()='Relationship']") {
		if attr(n, "TargetMode") == "External" {
			continue
		}
		target := attr(n, "Target")
		if strings.HasPrefix(target, "/") {
			target = strings.TrimPrefix(target, "/")
		} else {
			target = path.Join(dir, target)
		}
		out = append(out, relationship{id: attr(n, "Id"), typ: attr(n, "Type"), target: target})
	}
	return out
}

func relByID(rels []relationship, id string) (relationship, bool) {
	for _, r := range rels {
		if r.id == id {
			return r, true
		}
	}
	return relationship{}, false
}

// attr returns the value of the attribute with the given local name, in any
// namespace.
func attr(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func byName(name string) string {
	return "*[local-name()='" + name + "']"
}

// ExtractCharts reads the charts drawn on each sheet of an xlsx file. Series
// references are converted to range addresses; a reference that is not a
// plain A1 range is kept as written.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	p := xlsxPackage{files: make(map[string]*zip.File, len(zr.File))}
	for _, zf := range zr.File {
		p.files[zf.Name] = zf
	}

	wb, err := p.parse(workbookPart)
	if err != nil {
		return nil, err
	}
	wbRels := p.rels(workbookPart)

	result := make(map[string][]models.Chart)
	for _, s := range xmlquery.Find(wb, "//"+byName("sheet")) {
		sheetName := attr(s, "name")
		rel, ok := relByID(wbRels, attr(s, "id"))
		if !ok {
			continue
		}
		for _, r := range p.rels(rel.target) {
			if !strings.HasSuffix(r.typ, drawingRel) {
				continue
			}
			charts := p.drawingCharts(r.target)
			result[sheetName] = append(result[sheetName], charts...)
		}
	}

	return result, nil
}

// drawingCharts returns the charts placed by graphic frames in a drawing part.
func (p xlsxPackage) drawingCharts(drawingPath string) []models.Chart {
	drawing, err := p.parse(drawingPath)
	if err != nil {
		logging.Debug("skipping drawing", "part", drawingPath, "error", err)
		return nil
	}
	rels := p.rels(drawingPath)

	var charts []models.Chart
	for _, frame := range xmlquery.Find(drawing, "//"+byName("graphicFrame")) {
		ref := xmlquery.FindOne(frame, ".//"+byName("chart"))
		if ref == nil {
			continue
		}
		rel, ok := relByID(rels, attr(ref, "id"))
		if !ok {
			continue
		}
		doc, err := p.parse(rel.target)
		if err != nil {
			logging.Debug("skipping chart", "part", rel.target, "error", err)
			continue
		}

		name := ""
		if nv := xmlquery.FindOne(frame, ".//"+byName("cNvPr")); nv != nil {
			name = attr(nv, "name")
		}
		charts = append(charts, parseChart(doc, name))
	}
	return charts
}

func parseChart(doc *xmlquery.Node, name string) models.Chart {
	chart := models.Chart{Name: name, Series: []models.ChartSeries{}}

	if title := xmlquery.FindOne(doc, "//"+byName("chart")+"/"+byName("title")); title != nil {
		var sb strings.Builder
		for _, t := range xmlquery.Find(title, ".//"+byName("t")) {
			sb.WriteString(t.InnerText())
		}
		chart.Title = sb.String()
	}

	for _, plot := range xmlquery.Find(doc, "//"+byName("plotArea")+"/*") {
		class, ok := chartClasses[plot.Data]
		if !ok {
			continue
		}
		if chart.Class == "" {
			chart.Class = class
		}
		for _, ser := range xmlquery.Find(plot, "./"+byName("ser")) {
			chart.Series = append(chart.Series, parseSeries(ser))
		}
	}
	return chart
}

func parseSeries(ser *xmlquery.Node) models.ChartSeries {
	var s models.ChartSeries
	if tx := xmlquery.FindOne(ser, "./"+byName("tx")); tx != nil {
		s.NameRange = seriesRange(tx)
		if v := xmlquery.FindOne(tx, ".//"+byName("v")); v != nil {
			s.Name = strings.TrimSpace(v.InnerText())
		}
	}
	for _, axis := range []string{"cat", "xVal"} {
		if n := xmlquery.FindOne(ser, "./"+byName(axis)); n != nil {
			s.Categories = seriesRange(n)
		}
	}
	for _, axis := range []string{"val", "yVal"} {
		if n := xmlquery.FindOne(ser, "./"+byName(axis)); n != nil {
			s.Values = seriesRange(n)
		}
	}
	return s
}

// seriesRange converts the first formula below n to a range address.
func seriesRange(n *xmlquery.Node) string {
	f := xmlquery.FindOne(n, ".//"+byName("f"))
	if f == nil {
		return ""
	}
	text := strings.TrimSpace(f.InnerText())
	r, err := ParseA1(text)
	if err != nil {
		logging.Debug("keeping series reference", "ref", text, "error", err)
		return text
	}
	return r.String()
}
